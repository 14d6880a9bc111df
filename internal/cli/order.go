package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

func (a *app) newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "order [topping...]",
		Short:   "Price a burger and record it in the order journal",
		Example: "  fooditems order patty cheese",
		RunE: func(cmd *cobra.Command, args []string) error {
			toppings := toppingArgs(args)
			item, err := menu.Build(toppings)
			if err != nil {
				return err
			}

			journal, err := a.attachJournal()
			if err != nil {
				return err
			}
			defer journal.Detach()

			order, err := journal.Record(item, toppings)
			if err != nil {
				return fmt.Errorf("record order: %w", err)
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), order)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", order.OrderID, order.Description, formatCost(order.Cost))
			return nil
		},
	}
}

func (a *app) newOrdersCmd() *cobra.Command {
	var recipe string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List recorded orders, oldest first",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := types.Filter{}
			if cmd.Flags().Changed("recipe") {
				filter[types.FilterRecipe] = menu.FormatRecipe(menu.ParseRecipe(recipe))
			}

			journal, err := a.attachJournal()
			if err != nil {
				return err
			}
			defer journal.Detach()

			orders, err := journal.List(filter)
			if err != nil {
				return fmt.Errorf("list orders: %w", err)
			}

			if a.jsonOutput() {
				if orders == nil {
					orders = []*types.Order{}
				}
				return writeJSON(cmd.OutOrStdout(), orders)
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders found")
				return nil
			}
			return writeOrdersTable(cmd.OutOrStdout(), orders)
		},
	}
	cmd.Flags().StringVar(&recipe, "recipe", "", `only orders with this recipe, e.g. "patty,cheese" ("" for a plain burger)`)
	return cmd
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Display one recorded order",
		Args:  userArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.attachJournal()
			if err != nil {
				return err
			}
			defer journal.Detach()

			order, err := journal.Get(args[0])
			if err != nil {
				return fmt.Errorf("order %q: %w", args[0], err)
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), order)
			}
			writeOrderDetail(cmd.OutOrStdout(), order)
			return nil
		},
	}
}
