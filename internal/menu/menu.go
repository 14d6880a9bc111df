// Package menu builds food chains from topping names typed on the command line
// and lists the reference chains printed by the demo command.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/fooditems/pkg/food"
)

// Topping names accepted by Build.
const (
	ToppingCheese = "cheese"
	ToppingPatty  = "patty"
)

// ErrUnknownTopping is returned for a topping name Build does not know.
var ErrUnknownTopping = errors.New("unknown topping")

// Toppings lists the accepted topping names for help and error output.
var Toppings = []string{ToppingCheese, ToppingPatty}

// Build wraps a burger with each topping in order, innermost first.
// Build([]string{"patty", "cheese"}) yields Cheese(Patty(Burger)).
func Build(toppings []string) (food.Item, error) {
	var item food.Item = food.NewBurger()
	for _, name := range toppings {
		var err error
		switch Normalize(name) {
		case ToppingCheese:
			item, err = food.NewCheese(item)
		case ToppingPatty:
			item, err = food.NewPatty(item)
		default:
			return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownTopping, name, strings.Join(Toppings, ", "))
		}
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Normalize lowercases and trims a topping name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseRecipe splits a comma separated recipe such as "patty,cheese".
// Empty segments are dropped.
func ParseRecipe(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := Normalize(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatRecipe is the inverse of ParseRecipe. The bare burger is "".
func FormatRecipe(toppings []string) string {
	norm := make([]string, 0, len(toppings))
	for _, t := range toppings {
		norm = append(norm, Normalize(t))
	}
	return strings.Join(norm, ",")
}
