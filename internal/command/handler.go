package command

import (
	"context"

	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/elegant-tiles/storefront/internal/metrics"
	"github.com/elegant-tiles/storefront/internal/session"
	"go.uber.org/zap"
)

type Handler struct {
	catalog   *catalog.Store
	sessions  *session.Registry
	submitter booking.Submitter
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewHandler(
	store *catalog.Store,
	sessions *session.Registry,
	submitter booking.Submitter,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		catalog:   store,
		sessions:  sessions,
		submitter: submitter,
		metrics:   m,
		logger:    zap.L().Named("command"),
	}
}

// AddToCart adds an item to the cart. An omitted quantity means one.
func (h *Handler) AddToCart(ctx context.Context, cmd AddToCart) error {
	if _, err := h.purchasable(cmd.ProductID); err != nil {
		return h.count("add_to_cart", err)
	}
	qty := 1
	if cmd.Quantity != nil {
		qty = *cmd.Quantity
	}
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		return s.Cart.Add(cmd.ProductID, qty)
	})
	return h.count("add_to_cart", err)
}

// UpdateCartQuantity sets the quantity of an existing line
func (h *Handler) UpdateCartQuantity(ctx context.Context, cmd UpdateCartQuantity) error {
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		return s.Cart.UpdateQuantity(cmd.ProductID, cmd.Quantity)
	})
	return h.count("update_quantity", err)
}

// RemoveFromCart removes an item from cart
func (h *Handler) RemoveFromCart(ctx context.Context, cmd RemoveFromCart) error {
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		s.Cart.Remove(cmd.ProductID)
		return nil
	})
	return h.count("remove_from_cart", err)
}

// ClearCart clears all items from cart
func (h *Handler) ClearCart(ctx context.Context, cmd ClearCart) error {
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		s.Cart.Clear()
		return nil
	})
	return h.count("clear_cart", err)
}

// AddToWishlist saves a product. Out of stock products can be saved.
func (h *Handler) AddToWishlist(ctx context.Context, cmd AddToWishlist) error {
	if _, ok := h.catalog.Product(cmd.ProductID); !ok {
		return h.count("add_to_wishlist", product.ErrProductNotFound)
	}
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		return s.Wishlist.Add(cmd.ProductID)
	})
	return h.count("add_to_wishlist", err)
}

func (h *Handler) RemoveFromWishlist(ctx context.Context, cmd RemoveFromWishlist) error {
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		s.Wishlist.Remove(cmd.ProductID)
		return nil
	})
	return h.count("remove_from_wishlist", err)
}

// MoveToCart moves one unit of a saved product into the cart
func (h *Handler) MoveToCart(ctx context.Context, cmd MoveToCart) error {
	if _, err := h.purchasable(cmd.ProductID); err != nil {
		return h.count("move_to_cart", err)
	}
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		if !s.Wishlist.Contains(cmd.ProductID) {
			return cart.ErrLineNotFound
		}
		return cart.MoveToCart(s.Wishlist, s.Cart, cmd.ProductID)
	})
	return h.count("move_to_cart", err)
}

// UpdateBooking applies field edits to the booking form
func (h *Handler) UpdateBooking(ctx context.Context, cmd UpdateBooking) error {
	return h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		return s.Booking.Update(cmd.Fields)
	})
}

// ContinueBooking advances to project details. It reports whether the step
// changed.
func (h *Handler) ContinueBooking(ctx context.Context, cmd BookingStep) (bool, error) {
	var moved bool
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		moved = s.Booking.Next()
		return nil
	})
	return moved, err
}

// BackBooking returns to contact info. It reports whether the step changed.
func (h *Handler) BackBooking(ctx context.Context, cmd BookingStep) (bool, error) {
	var moved bool
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		moved = s.Booking.Back()
		return nil
	})
	return moved, err
}

// SubmitBooking hands the completed form to the submitter. It reports false
// with no error when the form is not ready.
func (h *Handler) SubmitBooking(ctx context.Context, cmd BookingStep) (bool, error) {
	var submitted bool
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		var err error
		submitted, err = s.Booking.Submit(ctx, h.submitter)
		return err
	})

	switch {
	case err != nil:
		h.logger.Error("booking submission failed", zap.String("session", cmd.SessionID), zap.Error(err))
		h.metrics.Submissions.WithLabelValues("booking", "failed").Inc()
	case submitted:
		h.metrics.Submissions.WithLabelValues("booking", "submitted").Inc()
	default:
		h.metrics.Submissions.WithLabelValues("booking", "refused").Inc()
	}
	return submitted, err
}

// ResetBooking starts the booking form over
func (h *Handler) ResetBooking(ctx context.Context, cmd BookingStep) error {
	return h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		s.Booking.StartOver()
		return nil
	})
}

// SubmitContact applies the fields and sends the contact form in one go
func (h *Handler) SubmitContact(ctx context.Context, cmd SubmitContact) (bool, error) {
	var sent bool
	err := h.sessions.Do(cmd.SessionID, func(s *session.Session) error {
		if err := s.Contact.Update(cmd.Fields); err != nil {
			return err
		}
		var err error
		_, sent, err = s.Contact.Submit(ctx, h.submitter)
		return err
	})

	switch {
	case err != nil:
		h.logger.Warn("contact submission failed", zap.String("session", cmd.SessionID), zap.Error(err))
		h.metrics.Submissions.WithLabelValues("contact", "failed").Inc()
	case sent:
		h.metrics.Submissions.WithLabelValues("contact", "submitted").Inc()
	default:
		h.metrics.Submissions.WithLabelValues("contact", "refused").Inc()
	}
	return sent, err
}

// purchasable looks the product up and checks it can go in a cart.
func (h *Handler) purchasable(id string) (product.Product, error) {
	p, ok := h.catalog.Product(id)
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	if !p.InStock {
		return product.Product{}, product.ErrOutOfStock
	}
	return p, nil
}

func (h *Handler) count(action string, err error) error {
	h.metrics.CartMutations.WithLabelValues(action, metrics.Result(err)).Inc()
	return err
}
