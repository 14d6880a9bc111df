package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/pkg/food"
)

func (a *app) newCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [topping...]",
		Short: "Price a burger wrapped in the given toppings",
		Long: "Price a burger wrapped in the given toppings, innermost first.\n\n" +
			"Valid toppings: " + strings.Join(menu.Toppings, ", "),
		Example: "  fooditems cost\n  fooditems cost patty cheese\n  fooditems cost patty,patty",
		RunE: func(cmd *cobra.Command, args []string) error {
			toppings := toppingArgs(args)
			item, err := menu.Build(toppings)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), priced{
					Toppings:    toppings,
					Description: food.Describe(item),
					Cost:        item.Cost(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", food.Describe(item), formatCost(item.Cost()))
			return nil
		},
	}
}

// toppingArgs flattens arguments that may themselves be comma separated
// recipes. It never returns nil.
func toppingArgs(args []string) []string {
	toppings := []string{}
	for _, arg := range args {
		toppings = append(toppings, menu.ParseRecipe(arg)...)
	}
	return toppings
}
