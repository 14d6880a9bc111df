package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/pkg/food"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the cost of the reference chains",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := menu.Scenarios()

			if a.jsonOutput() {
				out := make([]priced, 0, len(scenarios))
				for _, sc := range scenarios {
					out = append(out, priced{
						Name:        sc.Name,
						Toppings:    sc.Toppings,
						Description: food.Describe(sc.Item),
						Cost:        sc.Item.Cost(),
					})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, sc := range scenarios {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", sc.Name, food.Describe(sc.Item), formatCost(sc.Item.Cost()))
			}
			return tw.Flush()
		},
	}
}
