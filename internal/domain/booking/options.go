package booking

import (
	"regexp"
	"slices"
	"time"
)

// ServiceType is the kind of space a consultation is about.
type ServiceType string

const (
	ServiceResidential ServiceType = "residential"
	ServiceCommercial  ServiceType = "commercial"
	ServiceWorship     ServiceType = "worship"
	ServiceOutdoor     ServiceType = "outdoor"
	ServiceRenovation  ServiceType = "renovation"
)

// DefaultServiceType is preselected on a fresh form.
const DefaultServiceType = ServiceResidential

// DateLayout is the wire format of PreferredDate.
const DateLayout = "2006-01-02"

var serviceTypes = []ServiceType{
	ServiceResidential,
	ServiceCommercial,
	ServiceWorship,
	ServiceOutdoor,
	ServiceRenovation,
}

var timeSlots = []string{
	"9:00 AM - 11:00 AM",
	"11:00 AM - 1:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
	"5:00 PM - 7:00 PM",
}

var budgetRanges = []string{
	"KES 150,000 - 300,000",
	"KES 300,000 - 500,000",
	"KES 500,000 - 1,000,000",
	"KES 1,000,000+",
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ServiceTypes() []ServiceType { return slices.Clone(serviceTypes) }
func TimeSlots() []string         { return slices.Clone(timeSlots) }
func BudgetRanges() []string      { return slices.Clone(budgetRanges) }

func (s ServiceType) Valid() bool {
	return slices.Contains(serviceTypes, s)
}

// ValidEmail is a shape check only: something@something.tld with no spaces.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validTimeSlot(s string) bool { return slices.Contains(timeSlots, s) }
func validBudget(s string) bool   { return slices.Contains(budgetRanges, s) }

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
