package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/pkg/logger"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

// CreateRecurring expands the recurrence and books each date independently.
// A conflicting or failed date records an error for that date and the batch
// moves on; one bad date in a twelve-week plan must not discard the other
// eleven. Dates are processed ascending, so a later date's conflict check
// sees the bookings this same batch already inserted.
func (s *service) CreateRecurring(ctx context.Context, req RecurringRequest) (*RecurringResult, error) {
	if !ValidRecurrence(req.Recurrence) {
		return nil, ErrInvalidRecurrence
	}
	for _, w := range req.Weekdays {
		if w < 0 || w > 6 {
			return nil, ErrInvalidWeekdays
		}
	}

	prov, err := s.provService.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, ErrProviderNotFound
	}
	if !prov.Active {
		return nil, ErrProviderInactive
	}

	offering, err := s.catService.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	if !offering.Active {
		return nil, ErrServiceInactive
	}

	if _, err := s.custService.GetByID(ctx, req.CustomerID); err != nil {
		return nil, ErrCustomerNotFound
	}

	dates := ExpandRecurrence(req.StartDate, req.EndDate, req.Recurrence, req.Weekdays)
	if len(dates) == 0 {
		return nil, ErrNoDates
	}

	now := s.clk.Now()
	result := &RecurringResult{Outcomes: make([]DateOutcome, 0, len(dates))}

	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome := DateOutcome{Date: date}
		at := fmt.Sprintf("%s at %s", date.Format(timeutil.DateLayout), timeutil.FromMinutes(req.StartMinute))

		if !timeutil.At(date, req.StartMinute).After(now) {
			outcome.Err = at + ": time has already passed"
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		res := s.checker.Check(ctx, req.ProviderID, date, req.StartMinute, offering.DurationMinutes)
		switch {
		case res.CheckFailed:
			outcome.Err = at + ": could not verify availability"
		case res.HasConflict:
			outcome.Err = at + ": time slot already booked"
		default:
			b := &booking.Booking{
				ProviderID:      req.ProviderID,
				ServiceID:       req.ServiceID,
				CustomerID:      req.CustomerID,
				Date:            date,
				StartMinute:     req.StartMinute,
				DurationMinutes: offering.DurationMinutes,
				Status:          booking.StatusPending,
				PaymentStatus:   booking.PaymentPending,
				AmountCents:     offering.PriceCents,
				ProviderNotes:   req.Notes,
			}
			if err := s.bookings.CreateIfFree(ctx, b); err != nil {
				if errors.Is(err, booking.ErrTimeConflict) {
					outcome.Err = at + ": time slot already booked"
				} else {
					logger.Get().Error("recurring booking insert failed",
						zap.String("provider_id", req.ProviderID),
						zap.Time("date", date),
						zap.Error(err),
					)
					outcome.Err = at + ": booking could not be created"
				}
			} else {
				outcome.BookingID = b.ID
			}
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}
