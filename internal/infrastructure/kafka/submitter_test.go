package kafka_test

import (
	"context"
	"errors"
	"testing"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/event"
	"github.com/elegant-tiles/storefront/internal/infrastructure/kafka"
	"github.com/elegant-tiles/storefront/internal/infrastructure/kafka/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ booking.Submitter = (*kafka.Submitter)(nil)

func TestSubmitter_SubmitBooking(t *testing.T) {
	pub := mocks.NewMockPublisher()
	s := kafka.NewSubmitter(pub)
	req := booking.Request{Reference: "ref-9"}
	req.Name = "Kamau"
	req.Email = "kamau@example.com"

	err := s.SubmitBooking(context.Background(), req)

	require.NoError(t, err)
	calls := pub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ref-9", calls[0].Key)

	e, ok := calls[0].Event.(event.Event)
	require.True(t, ok)
	assert.Equal(t, event.BookingRequested, e.Type)

	var got booking.Request
	require.NoError(t, e.Unmarshal(&got))
	assert.Equal(t, "Kamau", got.Name)
	assert.Equal(t, "ref-9", got.Reference)
}

func TestSubmitter_SubmitContact(t *testing.T) {
	pub := mocks.NewMockPublisher()
	s := kafka.NewSubmitter(pub)
	msg := booking.ContactMessage{Reference: "m-1"}
	msg.Email = "njeri@example.com"
	msg.Subject = "Quote"

	require.NoError(t, s.SubmitContact(context.Background(), msg))

	calls := pub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "njeri@example.com", calls[0].Key)
	assert.Equal(t, event.ContactMessageReceived, calls[0].Event.(event.Event).Type)
}

func TestSubmitter_PublishFailure(t *testing.T) {
	pub := mocks.NewMockPublisher()
	pub.PublishErr = errors.New("leader not available")
	s := kafka.NewSubmitter(pub)

	err := s.SubmitBooking(context.Background(), booking.Request{Reference: "r"})

	assert.ErrorIs(t, err, pub.PublishErr)
	assert.Contains(t, err.Error(), event.BookingRequested)
}
