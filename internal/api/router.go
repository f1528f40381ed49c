package api

import (
	"net/http"
	"time"

	"github.com/elegant-tiles/storefront/internal/api/middleware"
	"github.com/elegant-tiles/storefront/internal/metrics"
	"github.com/elegant-tiles/storefront/internal/session"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Handlers *Handlers
	Sessions *session.Registry
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}
	h := cfg.Handlers

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(logger.Named("http")))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Instrument(cfg.Metrics))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", h.Healthz)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog (public, no session)
		r.Get("/products", h.GetProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/products/{id}/similar", h.GetSimilarProducts)
		r.Get("/categories", h.GetCategories)
		r.Get("/portfolio", h.GetPortfolio)

		// Session scoped
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Sessions))
			r.Use(middleware.RequireSession)

			r.Get("/cart", h.GetCart)
			r.Delete("/cart", h.ClearCart)
			r.Post("/cart/items", h.AddToCart)
			r.Put("/cart/items/{id}", h.UpdateCartItem)
			r.Delete("/cart/items/{id}", h.RemoveFromCart)

			r.Get("/wishlist", h.GetWishlist)
			r.Post("/wishlist/items", h.AddToWishlist)
			r.Delete("/wishlist/items/{id}", h.RemoveFromWishlist)
			r.Post("/wishlist/items/{id}/move-to-cart", h.MoveToCart)

			r.Get("/booking", h.GetBooking)
			r.Patch("/booking", h.UpdateBooking)
			r.Post("/booking/next", h.ContinueBooking)
			r.Post("/booking/back", h.BackBooking)
			r.Post("/booking/submit", h.SubmitBooking)
			r.Post("/booking/reset", h.ResetBooking)

			r.Get("/contact", h.GetContact)
			r.Post("/contact", h.SubmitContact)
		})
	})

	return r
}
