// Package booking holds the consultation booking and contact forms and the
// collaborator they hand finished requests to.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// Step is the position of a booking flow.
type Step int

const (
	StepContactInfo Step = iota + 1
	StepProjectDetails
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepContactInfo:
		return "contact_info"
	case StepProjectDetails:
		return "project_details"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Form is the booking form as the shopper fills it in.
type Form struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	ServiceType    ServiceType `json:"service_type"`
	PropertyType   string      `json:"property_type"`
	Budget         string      `json:"budget"`
	PreferredDate  string      `json:"preferred_date"`
	PreferredTime  string      `json:"preferred_time"`
	ProjectDetails string      `json:"project_details"`
}

func emptyForm() Form {
	return Form{ServiceType: DefaultServiceType}
}

// set assigns one field by its JSON name.
func (f *Form) set(name, value string) error {
	switch name {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "service_type":
		st := ServiceType(value)
		if !st.Valid() {
			st = DefaultServiceType
		}
		f.ServiceType = st
	case "property_type":
		f.PropertyType = value
	case "budget":
		f.Budget = value
	case "preferred_date":
		f.PreferredDate = value
	case "preferred_time":
		f.PreferredTime = value
	case "project_details":
		f.ProjectDetails = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (f Form) contactComplete() bool {
	return filled(f.Name) && filled(f.Phone) && ValidEmail(f.Email)
}

func (f Form) detailsComplete() bool {
	return filled(f.PropertyType) &&
		filled(f.ProjectDetails) &&
		validBudget(f.Budget) &&
		validTimeSlot(f.PreferredTime) &&
		validDate(f.PreferredDate)
}

// Request is a completed booking handed to the Submitter.
type Request struct {
	Form
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter receives finished forms. Implementations deliver them to the
// studio; the flow only cares whether delivery succeeded.
type Submitter interface {
	SubmitBooking(ctx context.Context, req Request) error
	SubmitContact(ctx context.Context, msg ContactMessage) error
}

// Flow is the two-step consultation booking form. Refused transitions return
// false and leave the flow untouched. A Flow is not safe for concurrent use.
type Flow struct {
	step Step
	form Form
	last *Request

	now   func() time.Time
	newID func() string
}

func NewFlow() *Flow {
	return &Flow{
		step:  StepContactInfo,
		form:  emptyForm(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (f *Flow) Step() Step { return f.step }
func (f *Flow) Form() Form { return f.form }

// SetField updates one field by its JSON name. An unrecognized service type
// falls back to the default.
func (f *Flow) SetField(name, value string) error {
	if f.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	return f.form.set(name, value)
}

// Update applies several fields. Nothing is applied if any name is unknown.
func (f *Flow) Update(fields map[string]string) error {
	if f.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	next := f.form
	for name, value := range fields {
		if err := next.set(name, value); err != nil {
			return err
		}
	}
	f.form = next
	return nil
}

// CanContinue reports whether the contact step is complete.
func (f *Flow) CanContinue() bool {
	return f.step == StepContactInfo && f.form.contactComplete()
}

// Next moves from contact info to project details.
func (f *Flow) Next() bool {
	if !f.CanContinue() {
		return false
	}
	f.step = StepProjectDetails
	return true
}

// Back returns to contact info, keeping every value.
func (f *Flow) Back() bool {
	if f.step != StepProjectDetails {
		return false
	}
	f.step = StepContactInfo
	return true
}

// CanSubmit reports whether the project details step is complete.
func (f *Flow) CanSubmit() bool {
	return f.step == StepProjectDetails &&
		f.form.contactComplete() &&
		f.form.detailsComplete()
}

// Submit hands the request to s. It returns false with a nil error when the
// form is not ready. If s fails the flow is unchanged and Submit may be
// retried. On success the fields are cleared and the flow is Submitted.
func (f *Flow) Submit(ctx context.Context, s Submitter) (bool, error) {
	if !f.CanSubmit() {
		return false, nil
	}

	req := Request{
		Form:        f.form,
		Reference:   f.newID(),
		SubmittedAt: f.now().UTC(),
	}
	if err := s.SubmitBooking(ctx, req); err != nil {
		return false, err
	}

	f.last = &req
	f.form = emptyForm()
	f.step = StepSubmitted
	return true, nil
}

// StartOver discards everything and returns to an empty contact step. It
// also serves as cancel from any step.
func (f *Flow) StartOver() {
	f.step = StepContactInfo
	f.form = emptyForm()
	f.last = nil
}

// LastRequest returns the request accepted by the most recent Submit.
func (f *Flow) LastRequest() (Request, bool) {
	if f.last == nil {
		return Request{}, false
	}
	return *f.last, true
}

// Snapshot is a read-only view of a flow for rendering.
type Snapshot struct {
	Step        Step   `json:"step"`
	Form        Form   `json:"form"`
	CanContinue bool   `json:"can_continue"`
	CanSubmit   bool   `json:"can_submit"`
	Reference   string `json:"reference,omitempty"`
}

func (f *Flow) Snapshot() Snapshot {
	s := Snapshot{
		Step:        f.step,
		Form:        f.form,
		CanContinue: f.CanContinue(),
		CanSubmit:   f.CanSubmit(),
	}
	if f.last != nil {
		s.Reference = f.last.Reference
	}
	return s
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
