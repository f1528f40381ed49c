package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactFields is the single-step contact form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *ContactFields) set(name, value string) error {
	switch name {
	case "name":
		c.Name = value
	case "email":
		c.Email = value
	case "phone":
		c.Phone = value
	case "subject":
		c.Subject = value
	case "message":
		c.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// ContactMessage is a completed contact form handed to the Submitter.
type ContactMessage struct {
	ContactFields
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContactForm is the contact page form. Phone is optional.
type ContactForm struct {
	fields ContactFields
	sent   bool

	now   func() time.Time
	newID func() string
}

func NewContactForm() *ContactForm {
	return &ContactForm{now: time.Now, newID: uuid.NewString}
}

func (c *ContactForm) Fields() ContactFields { return c.fields }

// Sent reports whether the last submit succeeded and nothing was typed since.
func (c *ContactForm) Sent() bool { return c.sent }

func (c *ContactForm) SetField(name, value string) error {
	if err := c.fields.set(name, value); err != nil {
		return err
	}
	c.sent = false
	return nil
}

// Update applies several fields. Nothing is applied if any name is unknown.
func (c *ContactForm) Update(fields map[string]string) error {
	next := c.fields
	for name, value := range fields {
		if err := next.set(name, value); err != nil {
			return err
		}
	}
	c.fields = next
	c.sent = false
	return nil
}

func (c *ContactForm) CanSubmit() bool {
	return filled(c.fields.Name) &&
		ValidEmail(c.fields.Email) &&
		filled(c.fields.Subject) &&
		filled(c.fields.Message)
}

// Submit hands the message to s and clears the form on success. A refused
// submit returns false with a nil error; a failed one keeps the fields.
func (c *ContactForm) Submit(ctx context.Context, s Submitter) (ContactMessage, bool, error) {
	if !c.CanSubmit() {
		return ContactMessage{}, false, nil
	}
	msg := ContactMessage{
		ContactFields: c.fields,
		Reference:     c.newID(),
		ReceivedAt:    c.now().UTC(),
	}
	if err := s.SubmitContact(ctx, msg); err != nil {
		return ContactMessage{}, false, err
	}
	c.fields = ContactFields{}
	c.sent = true
	return msg, true, nil
}
