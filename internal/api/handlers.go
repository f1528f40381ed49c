package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/elegant-tiles/storefront/internal/api/middleware"
	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/command"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/elegant-tiles/storefront/internal/query"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type Handlers struct {
	cmdHandler   *command.Handler
	queryHandler *query.Handler
	logger       *zap.Logger
}

func NewHandlers(cmdHandler *command.Handler, queryHandler *query.Handler) *Handlers {
	return &Handlers{
		cmdHandler:   cmdHandler,
		queryHandler: queryHandler,
		logger:       zap.L().Named("api"),
	}
}

// Catalog Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := catalog.Options{
		Category:    product.Category(q.Get("category")),
		Search:      q.Get("q"),
		Sort:        catalog.ParseSortKey(q.Get("sort")),
		PriceBand:   catalog.ParsePriceBand(q.Get("price")),
		InStockOnly: cast.ToBool(q.Get("in_stock")),
	}
	respondJSON(w, http.StatusOK, h.queryHandler.ListProducts(opts))
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.queryHandler.GetProduct(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, product.ErrProductNotFound, http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handlers) GetSimilarProducts(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	products, err := h.queryHandler.SimilarProducts(chi.URLParam(r, "id"), limit)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queryHandler.ListCategories())
}

func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respondJSON(w, http.StatusOK, h.queryHandler.SearchProjects(q.Get("category"), q.Get("q")))
}

// Cart Handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, r)
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var cmd command.AddToCart
	if !decode(w, r, &cmd) {
		return
	}
	cmd.SessionID = middleware.GetSessionID(r.Context())

	if err := h.cmdHandler.AddToCart(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondCart(w, r)
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateCartQuantity
	if !decode(w, r, &cmd) {
		return
	}
	cmd.SessionID = middleware.GetSessionID(r.Context())
	cmd.ProductID = chi.URLParam(r, "id")

	if err := h.cmdHandler.UpdateCartQuantity(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondCart(w, r)
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.RemoveFromCart{
		SessionID: middleware.GetSessionID(r.Context()),
		ProductID: chi.URLParam(r, "id"),
	}
	if err := h.cmdHandler.RemoveFromCart(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondCart(w, r)
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.ClearCart{SessionID: middleware.GetSessionID(r.Context())}
	if err := h.cmdHandler.ClearCart(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondCart(w, r)
}

func (h *Handlers) respondCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.queryHandler.GetCart(middleware.GetSessionID(r.Context()))
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Wishlist Handlers

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	h.respondWishlist(w, r)
}

func (h *Handlers) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var cmd command.AddToWishlist
	if !decode(w, r, &cmd) {
		return
	}
	cmd.SessionID = middleware.GetSessionID(r.Context())

	if err := h.cmdHandler.AddToWishlist(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondWishlist(w, r)
}

func (h *Handlers) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	cmd := command.RemoveFromWishlist{
		SessionID: middleware.GetSessionID(r.Context()),
		ProductID: chi.URLParam(r, "id"),
	}
	if err := h.cmdHandler.RemoveFromWishlist(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondWishlist(w, r)
}

func (h *Handlers) MoveToCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.MoveToCart{
		SessionID: middleware.GetSessionID(r.Context()),
		ProductID: chi.URLParam(r, "id"),
	}
	if err := h.cmdHandler.MoveToCart(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondWishlist(w, r)
}

func (h *Handlers) respondWishlist(w http.ResponseWriter, r *http.Request) {
	wl, err := h.queryHandler.GetWishlist(middleware.GetSessionID(r.Context()))
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, wl)
}

// Booking Handlers
//
// Refused step changes are not errors: the response is the unchanged form
// with its gate flags, and the client decides what to show.

func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	h.respondBooking(w, r)
}

func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if !decode(w, r, &fields) {
		return
	}
	cmd := command.UpdateBooking{SessionID: middleware.GetSessionID(r.Context()), Fields: fields}
	if err := h.cmdHandler.UpdateBooking(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondBooking(w, r)
}

func (h *Handlers) ContinueBooking(w http.ResponseWriter, r *http.Request) {
	cmd := command.BookingStep{SessionID: middleware.GetSessionID(r.Context())}
	if _, err := h.cmdHandler.ContinueBooking(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondBooking(w, r)
}

func (h *Handlers) BackBooking(w http.ResponseWriter, r *http.Request) {
	cmd := command.BookingStep{SessionID: middleware.GetSessionID(r.Context())}
	if _, err := h.cmdHandler.BackBooking(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondBooking(w, r)
}

func (h *Handlers) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	cmd := command.BookingStep{SessionID: middleware.GetSessionID(r.Context())}
	if _, err := h.cmdHandler.SubmitBooking(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusBadGateway)
		return
	}
	h.respondBooking(w, r)
}

func (h *Handlers) ResetBooking(w http.ResponseWriter, r *http.Request) {
	cmd := command.BookingStep{SessionID: middleware.GetSessionID(r.Context())}
	if err := h.cmdHandler.ResetBooking(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	h.respondBooking(w, r)
}

func (h *Handlers) respondBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.queryHandler.GetBooking(middleware.GetSessionID(r.Context()))
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// Contact Handlers

func (h *Handlers) GetContact(w http.ResponseWriter, r *http.Request) {
	h.respondContact(w, r)
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if !decode(w, r, &fields) {
		return
	}
	cmd := command.SubmitContact{SessionID: middleware.GetSessionID(r.Context()), Fields: fields}
	if _, err := h.cmdHandler.SubmitContact(r.Context(), cmd); err != nil {
		respondError(w, err, http.StatusBadGateway)
		return
	}
	h.respondContact(w, r)
}

func (h *Handlers) respondContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.queryHandler.GetContact(middleware.GetSessionID(r.Context()))
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Health

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	respondError(w, errBadJSON, http.StatusBadRequest)
	return false
}
