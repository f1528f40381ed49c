package readmodel

import (
	"testing"

	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.LoadSeed()
	require.NoError(t, err)
	return store
}

func TestNewProduct(t *testing.T) {
	p, ok := seed(t).Product("1")
	require.True(t, ok)

	rm := NewProduct(p)

	assert.Equal(t, "Floor Tiles", rm.CategoryName)
	assert.True(t, rm.OnSale)
	assert.Equal(t, int64(11), rm.DiscountPercent)
	assert.True(t, rm.Badges.Bestseller)
}

func TestNewCart(t *testing.T) {
	store := seed(t)
	c := cart.New()
	require.NoError(t, c.Add("6", 2)) // 890
	require.NoError(t, c.Add("3", 1)) // 3200

	rm := NewCart("s-1", c, store, cart.DefaultPricing())

	require.Len(t, rm.Items, 2)
	assert.Equal(t, "Classic Ceramic White", rm.Items[0].Name)
	assert.Equal(t, "1780", rm.Items[0].LineTotal.String())
	assert.Equal(t, "4980", rm.Summary.Subtotal.String())
	assert.Equal(t, "500", rm.Summary.Shipping.String())
	assert.Equal(t, "796.8", rm.Summary.Tax.String())
	assert.Equal(t, "6276.8", rm.Summary.Total.String())
	assert.Equal(t, "20", rm.Summary.AmountToFreeShipping.String())
	assert.Equal(t, 3, rm.Summary.ItemCount)
}

func TestNewCart_SkipsUnknownProducts(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add("gone", 1))

	rm := NewCart("s-1", c, seed(t), cart.DefaultPricing())

	assert.Empty(t, rm.Items)
	assert.True(t, rm.Summary.Subtotal.IsZero())
}

func TestNewWishlist(t *testing.T) {
	store := seed(t)
	w := cart.NewWishlist()
	require.NoError(t, w.Add("7"))
	require.NoError(t, w.Add("6"))

	rm := NewWishlist("s-1", w, store)

	assert.Equal(t, 2, rm.Count)
	assert.Equal(t, "7", rm.Items[0].Product.ID)
	assert.Equal(t, "45890", rm.TotalValue.String())
}

func TestNewBooking(t *testing.T) {
	rm := NewBooking(booking.NewFlow())

	assert.Equal(t, booking.StepContactInfo, rm.Step)
	assert.Len(t, rm.Options.TimeSlots, 5)
	assert.Len(t, rm.Options.BudgetRanges, 4)
	assert.Len(t, rm.Options.ServiceTypes, 5)
}

func TestNewContact(t *testing.T) {
	c := booking.NewContactForm()
	require.NoError(t, c.SetField("name", "A"))

	rm := NewContact(c)

	assert.Equal(t, "A", rm.Fields.Name)
	assert.False(t, rm.CanSubmit)
	assert.False(t, rm.Sent)
}
