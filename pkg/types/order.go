package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Order is one evaluated chain recorded in the journal.
type Order struct {
	OrderID     string    `json:"order_id"`    // UUID v7, generated on Record.
	Recipe      string    `json:"recipe"`      // Comma separated toppings, innermost first.
	Description string    `json:"description"` // Rendered chain, e.g. Cheese(Burger).
	Fingerprint string    `json:"fingerprint"` // Short hash of Recipe.
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeFingerprint returns a short hex fingerprint of a normalized recipe.
// Orders with the same toppings in the same order share a fingerprint.
func RecipeFingerprint(recipe string) string {
	sum := sha256.Sum256([]byte(recipe))
	return hex.EncodeToString(sum[:6])
}
