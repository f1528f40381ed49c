package kafka

import (
	"context"
	"fmt"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/event"
)

// Publisher is the write side of a topic. *Producer satisfies it.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Submitter publishes finished booking and contact forms as events for the
// notifier.
type Submitter struct {
	publisher Publisher
}

func NewSubmitter(publisher Publisher) *Submitter {
	return &Submitter{publisher: publisher}
}

func (s *Submitter) SubmitBooking(ctx context.Context, req booking.Request) error {
	return s.publish(ctx, event.BookingRequested, req.Reference, req)
}

func (s *Submitter) SubmitContact(ctx context.Context, msg booking.ContactMessage) error {
	return s.publish(ctx, event.ContactMessageReceived, msg.Email, msg)
}

func (s *Submitter) publish(ctx context.Context, eventType, key string, data any) error {
	e, err := event.New(eventType, key, data)
	if err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, key, e); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}
