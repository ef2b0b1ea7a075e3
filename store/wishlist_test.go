package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/HA2345567/buttonhaus/models"
)

func wishProduct(id string) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Test Product " + id,
		Price: decimal.RequireFromString("9.99"),
	}
}

func TestWishlistSetSemantics(t *testing.T) {
	s := NewWishlistStore()

	assert.True(t, s.Add("u1", wishProduct("p1")))
	assert.False(t, s.Add("u1", wishProduct("p1")), "duplicate add is a no-op")
	assert.Equal(t, 1, s.TotalItems("u1"))

	assert.True(t, s.Contains("u1", "p1"))
	assert.False(t, s.Contains("u1", "p2"))
	assert.False(t, s.Contains("u2", "p1"), "wishlists are per user")
}

func TestWishlistToggle(t *testing.T) {
	s := NewWishlistStore()

	assert.True(t, s.Toggle("u1", wishProduct("p1")), "first toggle adds")
	assert.True(t, s.Contains("u1", "p1"))

	assert.False(t, s.Toggle("u1", wishProduct("p1")), "second toggle removes")
	assert.False(t, s.Contains("u1", "p1"))
}

func TestWishlistRemoveAndClear(t *testing.T) {
	s := NewWishlistStore()
	s.Add("u1", wishProduct("p1"))
	s.Add("u1", wishProduct("p2"))

	assert.False(t, s.Remove("u1", "missing"))
	assert.True(t, s.Remove("u1", "p1"))
	assert.Equal(t, 1, s.TotalItems("u1"))

	s.Clear("u1")
	assert.Empty(t, s.Items("u1"))
}

func TestWishlistNotifiesOnMutation(t *testing.T) {
	s := NewWishlistStore()
	calls := 0
	s.OnChange(func() { calls++ })

	s.Add("u1", wishProduct("p1"))
	s.Add("u1", wishProduct("p1")) // no-op, no notify
	s.Remove("u1", "p1")
	assert.Equal(t, 2, calls)
}
