package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

// SlotGenerator enumerates the candidate start times of a provider's day and
// marks each one bookable or not. It reads bookings and availability fresh on
// every call; caching either would let a stale read cause a double-booking.
type SlotGenerator struct {
	bookings     booking.Repository
	windows      availability.Repository
	clk          clock.Clock
	defaultHours availability.Hours
	granularity  int // minutes between candidate starts
}

func NewSlotGenerator(
	bookings booking.Repository,
	windows availability.Repository,
	clk clock.Clock,
	defaultHours availability.Hours,
	granularity int,
) *SlotGenerator {
	return &SlotGenerator{
		bookings:     bookings,
		windows:      windows,
		clk:          clk,
		defaultHours: defaultHours,
		granularity:  granularity,
	}
}

// Generate returns the slots of one provider-day for a service of the given
// duration. A provider with no windows configured for the weekday gets the
// default hours, so an unconfigured calendar still shows bookable time
// instead of nothing.
//
// When a slot is both booked and in the past, the booked reason wins.
func (g *SlotGenerator) Generate(ctx context.Context, providerID string, date time.Time, durationMinutes int) ([]Slot, error) {
	date = timeutil.DateOf(date)
	weekday := int(date.Weekday())

	windows, err := g.windows.ListActiveForWeekday(ctx, providerID, weekday)
	if err != nil {
		return nil, fmt.Errorf("fetch availability windows failed: %w", err)
	}

	hours := make([]availability.Hours, 0, len(windows))
	for _, w := range windows {
		hours = append(hours, availability.Hours{StartMinute: w.StartMinute, EndMinute: w.EndMinute})
	}
	if len(hours) == 0 {
		hours = append(hours, g.defaultHours)
	}

	existing, err := g.bookings.ListForProviderDate(ctx, providerID, date, booking.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings failed: %w", err)
	}

	now := g.clk.Now()

	var slots []Slot
	for _, h := range hours {
		// A window shorter than the service yields no slots.
		for start := h.StartMinute; start+durationMinutes <= h.EndMinute; start += g.granularity {
			slot := Slot{StartMinute: start}
			switch {
			case overlapsAny(start, durationMinutes, existing):
				slot.Reason = ReasonBooked
			case !timeutil.At(date, start).After(now):
				slot.Reason = ReasonPastTime
			default:
				slot.Available = true
			}
			slots = append(slots, slot)
		}
	}

	return slots, nil
}

func overlapsAny(start, duration int, existing []*booking.Booking) bool {
	for _, b := range existing {
		if timeutil.Overlaps(start, duration, b.StartMinute, b.DurationMinutes) {
			return true
		}
	}
	return false
}
