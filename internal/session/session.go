// Package session keeps per-visitor storefront state in memory.
package session

import (
	"time"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
)

// Session is everything one visitor has touched: a cart, a wishlist and the
// two forms. It lives only as long as the process.
type Session struct {
	ID        string
	Cart      *cart.Cart
	Wishlist  *cart.Wishlist
	Booking   *booking.Flow
	Contact   *booking.ContactForm
	CreatedAt time.Time
	LastSeen  time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		Wishlist:  cart.NewWishlist(),
		Booking:   booking.NewFlow(),
		Contact:   booking.NewContactForm(),
		CreatedAt: now,
		LastSeen:  now,
	}
}
