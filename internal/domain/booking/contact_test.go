package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactForm() *ContactForm {
	c := NewContactForm()
	c.now = func() time.Time { return fixedNow }
	c.newID = func() string { return "msg-1" }
	return c
}

func fillMessage(t *testing.T, c *ContactForm) {
	t.Helper()
	require.NoError(t, c.Update(map[string]string{
		"name":    "Achieng",
		"email":   "achieng@example.co.ke",
		"subject": "Showroom hours",
		"message": "Are you open on Sunday?",
	}))
}

func TestContactForm_PhoneIsOptional(t *testing.T) {
	c := newTestContactForm()
	fillMessage(t, c)

	assert.True(t, c.CanSubmit())
}

func TestContactForm_RequiredFields(t *testing.T) {
	for _, field := range []string{"name", "email", "subject", "message"} {
		t.Run(field, func(t *testing.T) {
			c := newTestContactForm()
			fillMessage(t, c)
			require.NoError(t, c.SetField(field, ""))

			assert.False(t, c.CanSubmit())
			_, ok, err := c.Submit(context.Background(), &recordingSubmitter{})
			assert.False(t, ok)
			assert.NoError(t, err)
		})
	}
}

func TestContactForm_Submit(t *testing.T) {
	c := newTestContactForm()
	fillMessage(t, c)
	s := &recordingSubmitter{}

	msg, ok, err := c.Submit(context.Background(), s)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "msg-1", msg.Reference)
	assert.Equal(t, fixedNow, msg.ReceivedAt)
	assert.Equal(t, "Showroom hours", msg.Subject)
	assert.Equal(t, []ContactMessage{msg}, s.Contacts)
	assert.Equal(t, ContactFields{}, c.Fields())
	assert.True(t, c.Sent())

	require.NoError(t, c.SetField("name", "x"))
	assert.False(t, c.Sent())
}

func TestContactForm_SubmitFailureKeepsFields(t *testing.T) {
	c := newTestContactForm()
	fillMessage(t, c)
	before := c.Fields()

	_, ok, err := c.Submit(context.Background(), &recordingSubmitter{Err: errors.New("smtp down")})

	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, before, c.Fields())
	assert.False(t, c.Sent())
}

func TestContactForm_UnknownField(t *testing.T) {
	c := newTestContactForm()

	assert.ErrorIs(t, c.SetField("company", "x"), ErrUnknownField)
}
