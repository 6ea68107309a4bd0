package refund

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrBookingNotFound    = apperror.New(http.StatusNotFound, "Booking not found")
	ErrNoPaymentReference = apperror.New(http.StatusBadRequest, "No payment reference found")
	ErrNotPaid            = apperror.New(http.StatusConflict, "booking has not been paid")
	ErrBookingCompleted   = apperror.New(http.StatusConflict, "completed bookings cannot be refunded")
	ErrBookingCancelled   = apperror.New(http.StatusConflict, "booking is already cancelled")
	ErrServicePassed      = apperror.New(http.StatusConflict, "service time has already passed")
)

// Refund is the record of one executed refund. Written once after the
// processor confirms the money movement; never updated.
type Refund struct {
	ID          string
	BookingID   string
	AmountCents int64
	Percentage  int
	Reason      string
	ExternalRef string
	Status      string
	ProcessedAt time.Time
}

// Eligibility is the outcome of a refund eligibility check. When Eligible is
// false, Reason explains which rule blocked the refund.
type Eligibility struct {
	Eligible    bool
	Reason      string
	AmountCents int64
	Percentage  int
}
