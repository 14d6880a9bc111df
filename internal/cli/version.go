package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fooditems/pkg/food"
)

const modulePath = "github.com/mesh-intelligence/fooditems"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fooditems version",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fooditems v%s\nmodule: %s\n", food.Version, modulePath)
			return nil
		},
	}
}
