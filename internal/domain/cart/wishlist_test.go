package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Wishlist Tests
// ============================================

func TestWishlist_AddIsIdempotent(t *testing.T) {
	once := NewWishlist()
	require.NoError(t, once.Add("A"))

	twice := NewWishlist()
	require.NoError(t, twice.Add("A"))
	require.NoError(t, twice.Add("A"))

	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.Entries()[0].ProductID, twice.Entries()[0].ProductID)
}

func TestWishlist_RemoveIsIdempotent(t *testing.T) {
	w := NewWishlist()
	require.NoError(t, w.Add("A"))

	w.Remove("A")
	w.Remove("A")
	w.Remove("never-added")

	assert.False(t, w.Contains("A"))
	assert.Equal(t, 0, w.Len())
}

func TestWishlist_EmptyProductRejected(t *testing.T) {
	w := NewWishlist()

	assert.ErrorIs(t, w.Add(""), ErrInvalidProduct)
	assert.Equal(t, 0, w.Len())
}

func TestWishlist_KeepsInsertionOrder(t *testing.T) {
	w := NewWishlist()
	require.NoError(t, w.Add("B"))
	require.NoError(t, w.Add("A"))

	entries := w.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].ProductID)
	assert.Equal(t, "A", entries[1].ProductID)
}

func TestWishlist_Value(t *testing.T) {
	catalog := stubCatalog{
		"1": mustProduct(t, "1", 2850),
		"3": mustProduct(t, "3", 3200),
	}
	w := NewWishlist()
	require.NoError(t, w.Add("1"))
	require.NoError(t, w.Add("3"))
	require.NoError(t, w.Add("ghost"))

	assertDecimal(t, "6050", w.Value(catalog))
}

// ============================================
// Move To Cart Tests
// ============================================

func TestMoveToCart(t *testing.T) {
	w := NewWishlist()
	c := New()
	require.NoError(t, w.Add("A"))
	require.NoError(t, c.Add("A", 2))

	err := MoveToCart(w, c, "A")

	require.NoError(t, err)
	assert.False(t, w.Contains("A"))
	assert.Equal(t, 3, c.Quantity("A"))
}

func TestMoveToCart_RejectedLeavesWishlist(t *testing.T) {
	w := NewWishlist()
	c := New()

	err := MoveToCart(w, c, "")

	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Empty(t, c.Lines())
}
