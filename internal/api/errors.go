package api

import (
	"errors"
	"net/http"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/elegant-tiles/storefront/internal/session"
)

var errBadJSON = errors.New("request body must be valid JSON")

// statusFor maps domain errors to HTTP status codes. Anything it does not
// recognize gets fallback.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidProduct),
		errors.Is(err, booking.ErrUnknownField),
		errors.Is(err, errBadJSON):
		return http.StatusBadRequest
	case errors.Is(err, product.ErrOutOfStock),
		errors.Is(err, booking.ErrAlreadySubmitted):
		return http.StatusConflict
	}
	return fallback
}

func respondError(w http.ResponseWriter, err error, fallback int) {
	status := statusFor(err, fallback)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	respondJSON(w, status, map[string]string{"error": message})
}
