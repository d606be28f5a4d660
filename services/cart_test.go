package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price float64) CartProduct {
	return CartProduct{
		ID:        id,
		Title:     "Test " + id,
		UnitPrice: price,
		Image:     "/images/" + id + ".jpg",
		InStock:   true,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Run("adds a new line", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 2)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("merges quantity for an existing line", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 2)
		cart.AddItem(testProduct("a", 10), 3)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("missing product id is a no-op", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(CartProduct{Title: "ghost"}, 1)

		assert.Zero(t, cart.LineCount())
	})

	t.Run("quantity below one is coerced to one", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 0)
		cart.AddItem(testProduct("b", 10), -5)

		for _, item := range cart.Items() {
			assert.Equal(t, 1, item.Quantity)
		}
	})

	t.Run("preserves insertion order across merges", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 1)
		cart.AddItem(testProduct("b", 20), 1)
		cart.AddItem(testProduct("c", 30), 1)
		cart.AddItem(testProduct("a", 10), 1)

		items := cart.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
		assert.Equal(t, "c", items[2].ID)
	})

	t.Run("fills defaults for blank title, image and negative price", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(CartProduct{ID: "x", UnitPrice: -4}, 1)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Product", items[0].Title)
		assert.Equal(t, "/placeholder.svg", items[0].Image)
		assert.Equal(t, 0.0, items[0].UnitPrice)
	})
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("a", 10), 1)
	cart.AddItem(testProduct("b", 20), 1)

	cart.RemoveItem("a")
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// Removing an absent id does nothing.
	cart.RemoveItem("missing")
	assert.Equal(t, 1, cart.LineCount())
}

func TestCartChangeQuantity(t *testing.T) {
	t.Run("positive delta increments", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 1)
		cart.ChangeQuantity("a", 2)

		assert.Equal(t, 3, cart.TotalItems())
	})

	t.Run("negative delta decrements", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 3)
		cart.ChangeQuantity("a", -1)

		assert.Equal(t, 2, cart.TotalItems())
	})

	t.Run("delta driving quantity to zero removes the line", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 2)
		cart.ChangeQuantity("a", -2)

		assert.Zero(t, cart.LineCount())
	})

	t.Run("delta overshooting below zero removes the line", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 1)
		cart.ChangeQuantity("a", -10)

		assert.Zero(t, cart.LineCount())
	})

	t.Run("absent id is ignored", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct("a", 10), 1)
		cart.ChangeQuantity("missing", 5)

		assert.Equal(t, 1, cart.TotalItems())
	})
}

func TestCartDerivedValues(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("a", 10.50), 2)
	cart.AddItem(testProduct("b", 5.25), 3)

	assert.InDelta(t, 36.75, cart.Subtotal(), 1e-9)
	assert.Equal(t, 5, cart.TotalItems())
	assert.Equal(t, 2, cart.LineCount())

	cart.Clear()
	assert.Zero(t, cart.Subtotal())
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.LineCount())
}

func TestCartStore(t *testing.T) {
	store := NewCartStore()

	a := store.Cart("user-a")
	b := store.Cart("user-b")
	a.AddItem(testProduct("x", 10), 1)

	assert.Equal(t, 1, a.LineCount())
	assert.Zero(t, b.LineCount())

	// Same session id returns the same cart.
	assert.Same(t, a, store.Cart("user-a"))

	store.Drop("user-a")
	assert.Zero(t, store.Cart("user-a").LineCount())
}
