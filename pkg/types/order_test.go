package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeFingerprint(t *testing.T) {
	a := RecipeFingerprint("patty,cheese")

	assert.Len(t, a, 12)
	assert.Equal(t, a, RecipeFingerprint("patty,cheese"))
	assert.NotEqual(t, a, RecipeFingerprint("cheese,patty"))
	assert.NotEqual(t, a, RecipeFingerprint(""))
}
