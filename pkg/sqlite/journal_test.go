package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fooditems/pkg/food"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

func TestNewJournal(t *testing.T) {
	j := NewJournal()
	require.NoError(t, j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer j.Detach()

	patty, err := food.NewPatty(food.NewBurger())
	require.NoError(t, err)
	double, err := food.NewPatty(patty)
	require.NoError(t, err)

	order, err := j.Record(double, []string{"patty", "patty"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, order.Cost)
	assert.Equal(t, "Patty(Patty(Burger))", order.Description)

	got, err := j.Get(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.Recipe, got.Recipe)
}
