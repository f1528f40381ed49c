package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/event"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Mailer is the subset of email.Service the handler needs.
type Mailer interface {
	SendBookingConfirmation(req booking.Request) error
	SendBookingNotice(req booking.Request) error
	SendContactNotice(msg booking.ContactMessage) error
}

// Handler turns submission events into emails
type Handler struct {
	mailer Mailer
	pool   *ants.Pool
	logger *zap.Logger
}

// NewHandler creates a handler that sends up to workers emails at once.
func NewHandler(mailer Mailer, workers int) (*Handler, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Handler{
		mailer: mailer,
		pool:   pool,
		logger: zap.L().Named("notifier"),
	}, nil
}

// HandleEvent processes one message from Kafka. Unknown event types are
// ignored.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	e, err := event.Decode(value)
	if err != nil {
		h.logger.Error("failed to decode event", zap.ByteString("key", key), zap.Error(err))
		return err
	}

	switch e.Type {
	case event.BookingRequested:
		return h.handleBookingRequested(e)
	case event.ContactMessageReceived:
		return h.handleContactMessage(e)
	}
	return nil
}

func (h *Handler) handleBookingRequested(e event.Event) error {
	var req booking.Request
	if err := e.Unmarshal(&req); err != nil {
		return err
	}
	log := h.logger.With(zap.String("reference", req.Reference))
	log.Info("processing booking request", zap.String("email", req.Email))

	// The customer copy and the studio copy go out in parallel; both are
	// attempted even if one fails.
	err := h.sendAll(
		func() error { return h.mailer.SendBookingConfirmation(req) },
		func() error { return h.mailer.SendBookingNotice(req) },
	)
	if err != nil {
		log.Error("failed to send booking emails", zap.Error(err))
		return err
	}
	log.Info("booking emails sent")
	return nil
}

func (h *Handler) handleContactMessage(e event.Event) error {
	var msg booking.ContactMessage
	if err := e.Unmarshal(&msg); err != nil {
		return err
	}
	log := h.logger.With(zap.String("reference", msg.Reference))

	if err := h.mailer.SendContactNotice(msg); err != nil {
		log.Error("failed to forward contact message", zap.Error(err))
		return err
	}
	log.Info("contact message forwarded", zap.String("subject", msg.Subject))
	return nil
}

func (h *Handler) sendAll(sends ...func() error) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, send := range sends {
		send := send
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if err := send(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}
		if err := h.pool.Submit(task); err != nil {
			wg.Done()
			errs = append(errs, err)
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Close releases the worker pool.
func (h *Handler) Close() {
	h.pool.Release()
}
