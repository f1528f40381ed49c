package query

import (
	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/elegant-tiles/storefront/internal/metrics"
	"github.com/elegant-tiles/storefront/internal/readmodel"
	"github.com/elegant-tiles/storefront/internal/session"
)

type Handler struct {
	catalog  *catalog.Store
	projects *catalog.ProjectStore
	sessions *session.Registry
	pricing  cart.Pricing
	metrics  *metrics.Metrics
}

func NewHandler(
	store *catalog.Store,
	projects *catalog.ProjectStore,
	sessions *session.Registry,
	pricing cart.Pricing,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		catalog:  store,
		projects: projects,
		sessions: sessions,
		pricing:  pricing,
		metrics:  m,
	}
}

// Products
func (h *Handler) ListProducts(opts catalog.Options) []ProductReadModel {
	h.metrics.CatalogQueries.Inc()
	return readmodel.NewProducts(catalog.Query(h.catalog.All(), opts))
}

func (h *Handler) GetProduct(id string) (ProductReadModel, bool) {
	p, ok := h.catalog.Product(id)
	if !ok {
		return ProductReadModel{}, false
	}
	return readmodel.NewProduct(p), true
}

func (h *Handler) SimilarProducts(id string, limit int) ([]ProductReadModel, error) {
	similar, err := h.catalog.Similar(id, limit)
	if err != nil {
		return nil, err
	}
	return readmodel.NewProducts(similar), nil
}

func (h *Handler) ListCategories() []catalog.CategoryCount {
	return h.catalog.Categories()
}

// Portfolio
func (h *Handler) SearchProjects(category, text string) []catalog.Project {
	return h.projects.Search(category, text)
}

// Cart
func (h *Handler) GetCart(sessionID string) (CartReadModel, error) {
	var rm CartReadModel
	err := h.sessions.Do(sessionID, func(s *session.Session) error {
		rm = readmodel.NewCart(s.ID, s.Cart, h.catalog, h.pricing)
		return nil
	})
	return rm, err
}

// Wishlist
func (h *Handler) GetWishlist(sessionID string) (WishlistReadModel, error) {
	var rm WishlistReadModel
	err := h.sessions.Do(sessionID, func(s *session.Session) error {
		rm = readmodel.NewWishlist(s.ID, s.Wishlist, h.catalog)
		return nil
	})
	return rm, err
}

// Forms
func (h *Handler) GetBooking(sessionID string) (BookingReadModel, error) {
	var rm BookingReadModel
	err := h.sessions.Do(sessionID, func(s *session.Session) error {
		rm = readmodel.NewBooking(s.Booking)
		return nil
	})
	return rm, err
}

func (h *Handler) GetContact(sessionID string) (ContactReadModel, error) {
	var rm ContactReadModel
	err := h.sessions.Do(sessionID, func(s *session.Session) error {
		rm = readmodel.NewContact(s.Contact)
		return nil
	})
	return rm, err
}
