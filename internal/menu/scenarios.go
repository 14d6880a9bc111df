package menu

import (
	"fmt"

	"github.com/mesh-intelligence/fooditems/pkg/food"
)

// Scenario is one reference chain with its expected cost.
type Scenario struct {
	Name     string
	Toppings []string // recipe that Build would use for the same chain
	Item     food.Item
	Want     float64
}

// Scenarios returns the reference chains. The double patty is built by
// wrapping the patty burger value itself, not a fresh burger.
func Scenarios() []Scenario {
	burger := food.NewBurger()
	cheese := mustWrap(food.NewCheese(burger))
	patty := mustWrap(food.NewPatty(burger))
	doublePatty := mustWrap(food.NewPatty(patty))
	cheesePatty := mustWrap(food.NewCheese(patty))

	return []Scenario{
		{Name: "burger", Toppings: []string{}, Item: burger, Want: 4},
		{Name: "cheese burger", Toppings: []string{ToppingCheese}, Item: cheese, Want: 4.25},
		{Name: "patty burger", Toppings: []string{ToppingPatty}, Item: patty, Want: 5},
		{Name: "double patty burger", Toppings: []string{ToppingPatty, ToppingPatty}, Item: doublePatty, Want: 6},
		{Name: "cheese patty burger", Toppings: []string{ToppingPatty, ToppingCheese}, Item: cheesePatty, Want: 5.25},
	}
}

// mustWrap panics if a wrapper constructor fails. Scenarios only wrap values
// built just above, so a failure is a programming error.
func mustWrap[W food.Item](w W, err error) W {
	if err != nil {
		panic(fmt.Sprintf("menu: building scenario: %v", err))
	}
	return w
}
