package food

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCheese(t *testing.T, item Item) *Cheese {
	t.Helper()
	c, err := NewCheese(item)
	require.NoError(t, err)
	return c
}

func mustPatty(t *testing.T, item Item) *Patty {
	t.Helper()
	p, err := NewPatty(item)
	require.NoError(t, err)
	return p
}

func TestBurgerCost(t *testing.T) {
	assert.Equal(t, 4.0, NewBurger().Cost())
	assert.Equal(t, BurgerPrice, Burger{}.Cost())
}

func TestScenarios(t *testing.T) {
	burger := NewBurger()
	patty := mustPatty(t, burger)

	tests := []struct {
		name string
		item Item
		want float64
	}{
		{name: "burger", item: burger, want: 4},
		{name: "cheese burger", item: mustCheese(t, burger), want: 4.25},
		{name: "patty burger", item: patty, want: 5},
		{name: "double patty burger", item: mustPatty(t, patty), want: 6},
		{name: "cheese over patty burger", item: mustCheese(t, patty), want: 5.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Cost())
		})
	}
}

func TestWrapperAddsSurcharge(t *testing.T) {
	bases := []Item{
		NewBurger(),
		mustPatty(t, NewBurger()),
		mustCheese(t, mustPatty(t, NewBurger())),
	}

	for _, base := range bases {
		t.Run(Describe(base), func(t *testing.T) {
			assert.Equal(t, base.Cost()+CheeseSurcharge, mustCheese(t, base).Cost())
			assert.Equal(t, base.Cost()+PattySurcharge, mustPatty(t, base).Cost())
		})
	}
}

func TestWrapOrderDoesNotChangeCost(t *testing.T) {
	b := NewBurger()
	cheeseFirst := mustPatty(t, mustCheese(t, b))
	pattyFirst := mustCheese(t, mustPatty(t, b))

	assert.Equal(t, cheeseFirst.Cost(), pattyFirst.Cost())
	assert.Equal(t, 5.25, pattyFirst.Cost())
}

func TestWrapperRejectsNil(t *testing.T) {
	t.Run("cheese nil interface", func(t *testing.T) {
		c, err := NewCheese(nil)
		assert.ErrorIs(t, err, ErrNilItem)
		assert.Nil(t, c)
	})

	t.Run("patty nil interface", func(t *testing.T) {
		p, err := NewPatty(nil)
		assert.ErrorIs(t, err, ErrNilItem)
		assert.Nil(t, p)
	})

	t.Run("typed nil burger", func(t *testing.T) {
		var b *Burger
		assert.True(t, IsNil(b))
		_, err := NewPatty(b)
		assert.ErrorIs(t, err, ErrNilItem)
	})

	t.Run("typed nil wrapper", func(t *testing.T) {
		var inner *Patty
		_, err := NewCheese(inner)
		assert.ErrorIs(t, err, ErrNilItem)
	})
}

func TestUnwrapReturnsWrappedItem(t *testing.T) {
	b := NewBurger()
	p := mustPatty(t, b)
	c := mustCheese(t, p)

	assert.Same(t, p, c.Unwrap())
	assert.Equal(t, Item(b), p.Unwrap())
}

func TestCostIsSafeForConcurrentUse(t *testing.T) {
	item := mustCheese(t, mustPatty(t, mustPatty(t, NewBurger())))

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = item.Cost()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, 6.25, got)
	}
}
