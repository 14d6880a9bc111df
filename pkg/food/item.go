package food

import (
	"errors"
	"fmt"
)

// Prices in dollars.
const (
	BurgerPrice     = 4.0
	CheeseSurcharge = 0.25
	PattySurcharge  = 1.0
)

// ErrNilItem is returned when an item is required but nil was given.
var ErrNilItem = errors.New("item must not be nil")

// Item is anything with a price.
type Item interface {
	Cost() float64
}

// Burger is the base item. It terminates every chain.
type Burger struct{}

// NewBurger returns the base item.
func NewBurger() Burger {
	return Burger{}
}

// Cost returns the fixed burger price.
func (Burger) Cost() float64 {
	return BurgerPrice
}

// Cheese adds CheeseSurcharge on top of the item it wraps.
type Cheese struct {
	item Item
}

// NewCheese wraps item with cheese.
// Returns ErrNilItem if item is nil.
func NewCheese(item Item) (*Cheese, error) {
	if IsNil(item) {
		return nil, fmt.Errorf("cheese: %w", ErrNilItem)
	}
	return &Cheese{item: item}, nil
}

// Cost returns the wrapped cost plus the cheese surcharge.
func (c *Cheese) Cost() float64 {
	return c.item.Cost() + CheeseSurcharge
}

// Unwrap returns the wrapped item.
func (c *Cheese) Unwrap() Item {
	return c.item
}

// Patty adds PattySurcharge on top of the item it wraps.
type Patty struct {
	item Item
}

// NewPatty wraps item with an extra patty.
// Returns ErrNilItem if item is nil.
func NewPatty(item Item) (*Patty, error) {
	if IsNil(item) {
		return nil, fmt.Errorf("patty: %w", ErrNilItem)
	}
	return &Patty{item: item}, nil
}

// Cost returns the wrapped cost plus the patty surcharge.
func (p *Patty) Cost() float64 {
	return p.item.Cost() + PattySurcharge
}

// Unwrap returns the wrapped item.
func (p *Patty) Unwrap() Item {
	return p.item
}

// IsNil reports whether item is nil or a typed nil pointer to one of the
// items in this package. Calling Cost on such an item would panic.
func IsNil(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Burger:
		return v == nil
	case *Cheese:
		return v == nil
	case *Patty:
		return v == nil
	}
	return false
}
