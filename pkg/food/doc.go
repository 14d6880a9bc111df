// Package food defines the priced item capability and its variants: a base
// burger and the surcharge wrappers that decorate it.
//
// A chain is assembled by hand, innermost first:
//
//	b := food.NewBurger()
//	p, _ := food.NewPatty(b)
//	c, _ := food.NewCheese(p)
//	c.Cost() // 5.25
//
// Every value is immutable once constructed, so Cost may be called from any
// goroutine without locking.
package food
