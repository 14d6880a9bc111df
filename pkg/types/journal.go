package types

import (
	"errors"

	"github.com/mesh-intelligence/fooditems/pkg/food"
)

// Journal records evaluated chains. Attach must succeed before any other
// call; Detach releases resources and is idempotent.
type Journal interface {
	Attach(config Config) error
	Detach() error

	// Record evaluates item and stores it with the recipe that built it.
	Record(item food.Item, toppings []string) (*Order, error)
	// Get returns the order with the given ID.
	Get(id string) (*Order, error)
	// List returns orders matching filter, oldest first.
	List(filter Filter) ([]*Order, error)
}

// Filter narrows List. Recognized keys are FilterRecipe and FilterFingerprint;
// an empty filter matches every order.
type Filter map[string]string

// Filter keys.
const (
	FilterRecipe      = "recipe"
	FilterFingerprint = "fingerprint"
)

// Journal errors.
var (
	ErrAlreadyAttached = errors.New("journal already attached")
	ErrJournalDetached = errors.New("journal is detached")
	ErrNotFound        = errors.New("order not found")
	ErrInvalidID       = errors.New("invalid order id")
	ErrInvalidFilter   = errors.New("invalid filter key")
)
