package food

import "fmt"

// wrapper is implemented by every surcharge wrapper.
type wrapper interface {
	Unwrap() Item
}

// Describe renders a chain outermost first, e.g. "Patty(Cheese(Burger))".
// Items outside this package are rendered by their Go type name.
func Describe(item Item) string {
	if IsNil(item) {
		return "<nil>"
	}
	switch v := item.(type) {
	case Burger, *Burger:
		return "Burger"
	case *Cheese:
		return "Cheese(" + Describe(v.item) + ")"
	case *Patty:
		return "Patty(" + Describe(v.item) + ")"
	default:
		if w, ok := item.(wrapper); ok {
			return fmt.Sprintf("%T(%s)", item, Describe(w.Unwrap()))
		}
		return fmt.Sprintf("%T", item)
	}
}

// Depth returns the number of wrappers between item and its base.
func Depth(item Item) int {
	n := 0
	for {
		w, ok := item.(wrapper)
		if !ok || IsNil(item) {
			return n
		}
		item = w.Unwrap()
		n++
	}
}
