package email

import (
	"fmt"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Service composes and sends storefront emails
type Service struct {
	sender Sender
	from   string
	studio string
}

// NewService creates a Service that talks to an SMTP server. studio is the
// inbox that receives internal notices.
func NewService(host string, port int, username, password, from, studio string) *Service {
	return NewServiceWithSender(gomail.NewDialer(host, port, username, password), from, studio)
}

func NewServiceWithSender(sender Sender, from, studio string) *Service {
	return &Service{sender: sender, from: from, studio: studio}
}

// SendBookingConfirmation thanks the customer and repeats what they asked for.
func (s *Service) SendBookingConfirmation(req booking.Request) error {
	subject := fmt.Sprintf("Your design consultation request (ref %s)", shortRef(req.Reference))
	return s.send(req.Email, subject, BuildBookingConfirmationBody(req))
}

// SendBookingNotice tells the studio a consultation was requested.
func (s *Service) SendBookingNotice(req booking.Request) error {
	subject := fmt.Sprintf("New consultation: %s, %s", req.Name, req.PreferredDate)
	return s.send(s.studio, subject, BuildBookingNoticeBody(req))
}

// SendContactNotice forwards a contact message to the studio with reply-to
// set to the sender.
func (s *Service) SendContactNotice(msg booking.ContactMessage) error {
	m := s.compose(s.studio, "Contact form: "+msg.Subject, BuildContactNoticeBody(msg))
	m.SetHeader("Reply-To", msg.Email)
	return s.sender.DialAndSend(m)
}

func (s *Service) send(to, subject, body string) error {
	return s.sender.DialAndSend(s.compose(to, subject, body))
}

func (s *Service) compose(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
