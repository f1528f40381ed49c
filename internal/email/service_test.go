package email

import (
	"errors"
	"testing"
	"time"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	messages []*gomail.Message
	err      error
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, m...)
	return nil
}

func sampleRequest() booking.Request {
	req := booking.Request{
		Reference:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		SubmittedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	req.Name = "Wanjiru <Kamau>"
	req.Email = "wanjiru@example.com"
	req.Phone = "+254 700 000 000"
	req.ServiceType = booking.ServiceWorship
	req.PropertyType = "Church hall"
	req.Budget = "KES 1,000,000+"
	req.PreferredDate = "2026-04-02"
	req.PreferredTime = "9:00 AM - 11:00 AM"
	req.ProjectDetails = "Acoustic panels and new flooring"
	return req
}

// ============================================
// Service Tests
// ============================================

func TestService_SendBookingConfirmation(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender, "studio@elegant.test", "inbox@elegant.test")

	err := svc.SendBookingConfirmation(sampleRequest())

	require.NoError(t, err)
	require.Len(t, sender.messages, 1)
	m := sender.messages[0]
	assert.Equal(t, []string{"wanjiru@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"studio@elegant.test"}, m.GetHeader("From"))
	assert.Equal(t, []string{"Your design consultation request (ref 0f8fad5b)"}, m.GetHeader("Subject"))
}

func TestService_SendBookingNotice(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender, "studio@elegant.test", "inbox@elegant.test")

	require.NoError(t, svc.SendBookingNotice(sampleRequest()))

	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"inbox@elegant.test"}, sender.messages[0].GetHeader("To"))
}

func TestService_SendContactNotice(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender, "studio@elegant.test", "inbox@elegant.test")
	msg := booking.ContactMessage{Reference: "m-1"}
	msg.Name = "Achieng"
	msg.Email = "achieng@example.co.ke"
	msg.Subject = "Showroom hours"
	msg.Message = "Open on Sunday?"

	require.NoError(t, svc.SendContactNotice(msg))

	require.Len(t, sender.messages, 1)
	m := sender.messages[0]
	assert.Equal(t, []string{"inbox@elegant.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"achieng@example.co.ke"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Contact form: Showroom hours"}, m.GetHeader("Subject"))
}

func TestService_SendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("connection refused")}
	svc := NewServiceWithSender(sender, "a@b.co", "c@d.co")

	err := svc.SendBookingConfirmation(sampleRequest())

	assert.EqualError(t, err, "connection refused")
}

// ============================================
// Template Tests
// ============================================

func TestBuildBookingConfirmationBody(t *testing.T) {
	out := BuildBookingConfirmationBody(sampleRequest())

	assert.Contains(t, out, "Wanjiru &lt;Kamau&gt;")
	assert.NotContains(t, out, "<Kamau>")
	assert.Contains(t, out, "Places of Worship")
	assert.Contains(t, out, "KES 1,000,000+")
	assert.Contains(t, out, "2026-04-02")
}

func TestBuildBookingNoticeBody(t *testing.T) {
	out := BuildBookingNoticeBody(sampleRequest())

	assert.Contains(t, out, "Acoustic panels and new flooring")
	assert.Contains(t, out, "14 Mar 2026 09:30 UTC")
}

func TestBuildContactNoticeBody_OmitsEmptyPhone(t *testing.T) {
	msg := booking.ContactMessage{}
	msg.Name = "A"
	msg.Subject = "S"

	out := BuildContactNoticeBody(msg)

	assert.NotContains(t, out, ">Phone<")
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "Residential Design", ServiceName(booking.ServiceResidential))
	assert.Equal(t, "boats", ServiceName("boats"))
}

func TestShortRef(t *testing.T) {
	assert.Equal(t, "abc", shortRef("abc"))
	assert.Equal(t, "12345678", shortRef("123456789"))
}
