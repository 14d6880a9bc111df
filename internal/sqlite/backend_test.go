package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/pkg/food"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

func attachedBackend(t *testing.T, dataDir string) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { b.Detach() })
	return b
}

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func record(t *testing.T, b *Backend, toppings ...string) *types.Order {
	t.Helper()
	item, err := menu.Build(toppings)
	require.NoError(t, err)
	order, err := b.Record(item, toppings)
	require.NoError(t, err)
	return order
}

func TestBackend_Attach(t *testing.T) {
	dir := t.TempDir()
	b := attachedBackend(t, dir)

	assert.FileExists(t, filepath.Join(dir, dbFileName))
	assert.FileExists(t, filepath.Join(dir, ordersJSONL))

	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestBackend_AttachCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "orders")
	attachedBackend(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBackend_AttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{DataDir: t.TempDir()}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()}), types.ErrBackendUnknown)
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "Detach is idempotent")

	_, err := b.Record(food.NewBurger(), nil)
	assert.ErrorIs(t, err, types.ErrJournalDetached)
	_, err = b.Get("anything")
	assert.ErrorIs(t, err, types.ErrJournalDetached)
	_, err = b.List(nil)
	assert.ErrorIs(t, err, types.ErrJournalDetached)
}

func TestBackend_Record(t *testing.T) {
	b := attachedBackend(t, t.TempDir())
	b.now = fixedClock()

	order := record(t, b, "patty", "cheese")

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, "patty,cheese", order.Recipe)
	assert.Equal(t, "Cheese(Patty(Burger))", order.Description)
	assert.Equal(t, types.RecipeFingerprint("patty,cheese"), order.Fingerprint)
	assert.Equal(t, 5.25, order.Cost)
	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 1, 0, time.UTC), order.CreatedAt)
}

func TestBackend_RecordNilItem(t *testing.T) {
	b := attachedBackend(t, t.TempDir())

	var cheese *food.Cheese
	var patty *food.Patty
	var burger *food.Burger

	tests := []struct {
		name string
		item food.Item
	}{
		{name: "nil interface", item: nil},
		{name: "typed nil cheese", item: cheese},
		{name: "typed nil patty", item: patty},
		{name: "typed nil burger", item: burger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := b.Record(tt.item, nil)
			assert.ErrorIs(t, err, food.ErrNilItem)
			assert.Nil(t, order)
		})
	}

	orders, err := b.List(nil)
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected items are not recorded")
}

func TestBackend_Get(t *testing.T) {
	b := attachedBackend(t, t.TempDir())
	want := record(t, b, "patty")

	got, err := b.Get(want.OrderID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = b.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = b.Get("0198a1b2-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestBackend_List(t *testing.T) {
	b := attachedBackend(t, t.TempDir())
	b.now = fixedClock()

	first := record(t, b)
	second := record(t, b, "patty", "patty")
	third := record(t, b, "patty")
	fourth := record(t, b, "patty", "patty")

	tests := []struct {
		name   string
		filter types.Filter
		want   []*types.Order
	}{
		{name: "all", filter: nil, want: []*types.Order{first, second, third, fourth}},
		{name: "by recipe", filter: types.Filter{types.FilterRecipe: "patty,patty"}, want: []*types.Order{second, fourth}},
		{name: "bare burger", filter: types.Filter{types.FilterRecipe: ""}, want: []*types.Order{first}},
		{name: "by fingerprint", filter: types.Filter{types.FilterFingerprint: third.Fingerprint}, want: []*types.Order{third}},
		{
			name: "recipe and fingerprint",
			filter: types.Filter{
				types.FilterRecipe:      "patty",
				types.FilterFingerprint: second.Fingerprint,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackend_ListInvalidFilter(t *testing.T) {
	b := attachedBackend(t, t.TempDir())
	_, err := b.List(types.Filter{"cost": "4"})
	assert.ErrorIs(t, err, types.ErrInvalidFilter)
}

func TestBackend_RecordPersistsJSONL(t *testing.T) {
	dir := t.TempDir()
	b := attachedBackend(t, dir)
	order := record(t, b, "cheese")

	records, err := readJSONL(filepath.Join(dir, ordersJSONL))
	require.NoError(t, err)
	require.Len(t, records, 1)

	var rec orderRecord
	require.NoError(t, json.Unmarshal(records[0], &rec))
	assert.Equal(t, order.OrderID, rec.OrderID)
	assert.Equal(t, "cheese", rec.Recipe)
	assert.Equal(t, 4.25, rec.Cost)
}

func TestBackend_ReattachReloadsOrders(t *testing.T) {
	dir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	b.now = fixedClock()
	first := record(t, b, "patty")
	second := record(t, b, "patty", "cheese")
	require.NoError(t, b.Detach())

	reopened := attachedBackend(t, dir)
	got, err := reopened.List(nil)
	require.NoError(t, err)
	assert.Equal(t, []*types.Order{first, second}, got)
}
