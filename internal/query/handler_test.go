package query

import (
	"testing"

	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/elegant-tiles/storefront/internal/metrics"
	"github.com/elegant-tiles/storefront/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *session.Registry, *metrics.Metrics) {
	t.Helper()
	store, err := catalog.LoadSeed()
	require.NoError(t, err)
	projects, err := catalog.LoadProjects()
	require.NoError(t, err)

	sessions := session.NewRegistry()
	m := metrics.New(prometheus.NewRegistry(), sessions.Len)
	return NewHandler(store, projects, sessions, cart.DefaultPricing(), m), sessions, m
}

// ============================================
// Product Tests
// ============================================

func TestHandler_ListProducts(t *testing.T) {
	handler, _, m := newTestHandler(t)

	products := handler.ListProducts(catalog.Options{Category: product.CategoryLighting, Sort: catalog.SortPriceLow})

	require.Len(t, products, 2)
	assert.Equal(t, "Brushed Brass Pendant", products[0].Name)
	assert.Equal(t, "Lighting", products[0].CategoryName)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogQueries))
}

func TestHandler_GetProduct(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	p, ok := handler.GetProduct("7")
	require.True(t, ok)
	assert.Equal(t, int64(13), p.DiscountPercent)

	_, ok = handler.GetProduct("missing")
	assert.False(t, ok)
}

func TestHandler_SimilarProducts(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	similar, err := handler.SimilarProducts("3", 0)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "15", similar[0].ID)

	_, err = handler.SimilarProducts("missing", 0)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestHandler_ListCategories(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	cats := handler.ListCategories()

	assert.Equal(t, product.CategoryAll, cats[0].ID)
	assert.Equal(t, 16, cats[0].Count)
}

func TestHandler_SearchProjects(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	assert.Len(t, handler.SearchProjects("hospitality", ""), 1)
}

// ============================================
// Session View Tests
// ============================================

func TestHandler_GetCart(t *testing.T) {
	handler, sessions, _ := newTestHandler(t)
	id := sessions.Create()
	require.NoError(t, sessions.Do(id, func(s *session.Session) error {
		return s.Cart.Add("9", 2) // 4200
	}))

	rm, err := handler.GetCart(id)

	require.NoError(t, err)
	assert.Equal(t, id, rm.SessionID)
	require.Len(t, rm.Items, 1)
	assert.Equal(t, "8400", rm.Summary.Subtotal.String())
	assert.True(t, rm.Summary.Shipping.IsZero())
	assert.Equal(t, "1344", rm.Summary.Tax.String())
	assert.Equal(t, "9744", rm.Summary.Total.String())
	assert.True(t, rm.Summary.FreeShipping)
}

func TestHandler_GetCart_EmptySession(t *testing.T) {
	handler, sessions, _ := newTestHandler(t)

	rm, err := handler.GetCart(sessions.Create())

	require.NoError(t, err)
	assert.Empty(t, rm.Items)
	assert.True(t, rm.Summary.Subtotal.IsZero())
	assert.Equal(t, "500", rm.Summary.Shipping.String())
	assert.Equal(t, "500", rm.Summary.Total.String())
}

func TestHandler_GetCart_UnknownSession(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	_, err := handler.GetCart("nope")

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestHandler_GetWishlist(t *testing.T) {
	handler, sessions, _ := newTestHandler(t)
	id := sessions.Create()
	require.NoError(t, sessions.Do(id, func(s *session.Session) error {
		return s.Wishlist.Add("11")
	}))

	rm, err := handler.GetWishlist(id)

	require.NoError(t, err)
	assert.Equal(t, 1, rm.Count)
	assert.Equal(t, "68000", rm.TotalValue.String())
}

func TestHandler_GetBookingAndContact(t *testing.T) {
	handler, sessions, _ := newTestHandler(t)
	id := sessions.Create()

	b, err := handler.GetBooking(id)
	require.NoError(t, err)
	assert.Equal(t, booking.StepContactInfo, b.Step)
	assert.Equal(t, booking.ServiceResidential, b.Form.ServiceType)

	c, err := handler.GetContact(id)
	require.NoError(t, err)
	assert.False(t, c.CanSubmit)
}
