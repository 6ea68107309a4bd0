package scheduling

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrInvalidRecurrence = apperror.New(http.StatusBadRequest, "recurrence must be one of weekly, biweekly, monthly")
	ErrInvalidWeekdays   = apperror.New(http.StatusBadRequest, "recurrence weekdays must be between 0 (Sunday) and 6 (Saturday)")
	ErrNoDates           = apperror.New(http.StatusBadRequest, "recurrence produced no dates in the given range")
	ErrServiceNotFound   = apperror.New(http.StatusNotFound, "service not found")
	ErrServiceInactive   = apperror.New(http.StatusBadRequest, "service is not active")
	ErrProviderNotFound  = apperror.New(http.StatusNotFound, "provider not found")
	ErrProviderInactive  = apperror.New(http.StatusBadRequest, "provider is not active")
	ErrCustomerNotFound  = apperror.New(http.StatusNotFound, "customer not found")
)

// Slot reason strings surfaced to clients. Kept as constants so tests and
// handlers agree on the exact wording.
const (
	ReasonBooked   = "Already booked"
	ReasonPastTime = "Past time"
)

// Slot is one candidate start time on a provider's day. Slots are derived on
// every request and never stored.
type Slot struct {
	StartMinute int
	Available   bool
	Reason      string // empty when available
}

// Alternative is an open slot offered in place of a slot that could not be
// booked.
type Alternative struct {
	ProviderID   string
	ProviderName string
	Date         time.Time
	StartMinute  int
}

type Recurrence string

const (
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

// ValidRecurrence reports whether r is a known recurrence cadence.
func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return true
	}
	return false
}

// DateOutcome is the result of attempting one date of a recurring batch.
// Exactly one of BookingID and Err is set.
type DateOutcome struct {
	Date      time.Time
	BookingID string
	Err       string
}

// RecurringResult carries the per-date outcomes of a recurring batch. A batch
// with at least one created booking counts as successful even when other
// dates failed; callers get the full per-date detail either way.
type RecurringResult struct {
	Outcomes []DateOutcome
}

// BookingIDs returns the ids of the bookings the batch created, in date order.
func (r *RecurringResult) BookingIDs() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.BookingID != "" {
			ids = append(ids, o.BookingID)
		}
	}
	return ids
}

// Errors returns the failure messages of the dates that could not be booked,
// in date order.
func (r *RecurringResult) Errors() []string {
	var errs []string
	for _, o := range r.Outcomes {
		if o.Err != "" {
			errs = append(errs, o.Err)
		}
	}
	return errs
}

// Succeeded reports whether at least one booking was created.
func (r *RecurringResult) Succeeded() bool {
	for _, o := range r.Outcomes {
		if o.BookingID != "" {
			return true
		}
	}
	return false
}
