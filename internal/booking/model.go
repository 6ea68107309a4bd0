package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrStartTimePast       = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition   = apperror.New(http.StatusConflict, "booking status transition not allowed")
	ErrServiceNotFound     = apperror.New(http.StatusNotFound, "service not found")
	ErrServiceInactive     = apperror.New(http.StatusBadRequest, "service is not active")
	ErrProviderNotFound    = apperror.New(http.StatusNotFound, "provider not found")
	ErrProviderInactive    = apperror.New(http.StatusBadRequest, "provider is not active")
	ErrCustomerNotFound    = apperror.New(http.StatusNotFound, "customer not found")
	ErrAlreadyPaid         = apperror.New(http.StatusConflict, "booking is already paid")
	ErrConflictCheckFailed = apperror.New(http.StatusServiceUnavailable, "could not verify availability, please retry")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// ActiveStatuses are the statuses that occupy a provider's time. Only these
// participate in conflict detection; completed and cancelled bookings do not
// block a slot.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusInProgress}

// Bookings are never deleted, only transitioned. A customer cancel and a
// refund both land on cancelled.
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID               string
	ProviderID       string
	ProviderName     string
	ServiceID        string
	ServiceName      string
	CustomerID       string
	CustomerName     string
	Date             time.Time // calendar date at midnight UTC
	StartMinute      int
	DurationMinutes  int
	Status           Status
	PaymentStatus    PaymentStatus
	AmountCents      int64
	PaymentReference string
	ProviderNotes    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CustomerID string
	ProviderID string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

// ConflictResult is the outcome of a conflict check. CheckFailed marks the
// fail-closed case: the booking store could not be read, so the slot is
// reported as conflicting with no conflict details. Callers must not treat a
// failed check as a free slot.
type ConflictResult struct {
	HasConflict bool
	CheckFailed bool
	Conflicts   []*Booking
}

// ConflictChecker decides whether a requested interval collides with any
// active booking of the provider on the given date.
type ConflictChecker interface {
	Check(ctx context.Context, providerID string, date time.Time, startMinute, durationMinutes int) ConflictResult
}
