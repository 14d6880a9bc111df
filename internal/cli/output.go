package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/fooditems/pkg/types"
)

// priced is the JSON shape of an evaluated chain.
type priced struct {
	Name        string   `json:"name,omitempty"`
	Toppings    []string `json:"toppings"`
	Description string   `json:"description"`
	Cost        float64  `json:"cost"`
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// formatCost renders a price with two decimals, e.g. $5.25.
func formatCost(c float64) string {
	return fmt.Sprintf("$%.2f", c)
}

func writeOrdersTable(w io.Writer, orders []*types.Order) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tDESCRIPTION\tCOST")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.OrderID, o.CreatedAt.Format(time.RFC3339), o.Description, formatCost(o.Cost))
	}
	return tw.Flush()
}

func writeOrderDetail(w io.Writer, o *types.Order) {
	recipe := o.Recipe
	if recipe == "" {
		recipe = "(plain)"
	}
	fmt.Fprintf(w, "ID:          %s\n", o.OrderID)
	fmt.Fprintf(w, "Description: %s\n", o.Description)
	fmt.Fprintf(w, "Recipe:      %s\n", recipe)
	fmt.Fprintf(w, "Fingerprint: %s\n", o.Fingerprint)
	fmt.Fprintf(w, "Cost:        %s\n", formatCost(o.Cost))
	fmt.Fprintf(w, "Created:     %s\n", o.CreatedAt.Format(time.RFC3339))
}
