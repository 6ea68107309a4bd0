package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/pkg/logger"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

type detector struct {
	bookings booking.Repository
}

// NewDetector returns a conflict checker backed by the booking store. It
// compares the requested interval against every active booking of the
// provider on the requested date.
func NewDetector(bookings booking.Repository) booking.ConflictChecker {
	return &detector{bookings: bookings}
}

// Check fails closed: when the booking store cannot be read, the slot is
// reported as conflicting rather than free. A data outage must never let a
// double-booking through.
func (d *detector) Check(ctx context.Context, providerID string, date time.Time, startMinute, durationMinutes int) booking.ConflictResult {
	existing, err := d.bookings.ListForProviderDate(ctx, providerID, timeutil.DateOf(date), booking.ActiveStatuses)
	if err != nil {
		logger.Get().Error("conflict check fetch failed, assuming conflict",
			zap.String("provider_id", providerID),
			zap.Time("date", date),
			zap.Error(err),
		)
		return booking.ConflictResult{HasConflict: true, CheckFailed: true}
	}

	var conflicts []*booking.Booking
	for _, b := range existing {
		if timeutil.Overlaps(startMinute, durationMinutes, b.StartMinute, b.DurationMinutes) {
			conflicts = append(conflicts, b)
		}
	}

	return booking.ConflictResult{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}
