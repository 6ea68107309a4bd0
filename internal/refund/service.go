package refund

import (
	"context"

	"go.uber.org/zap"

	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/payment"
	"github.com/skedra/marketplace-backend/internal/pkg/logger"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

type ProcessRequest struct {
	BookingID string
	Reason    string

	// AmountCents overrides the tier-computed amount when set.
	AmountCents *int64

	// AdminOverride skips eligibility checks and refunds the full amount.
	AdminOverride bool
}

type Service interface {
	// CheckEligibility evaluates whether the booking can be refunded right
	// now and at what amount, without executing anything.
	CheckEligibility(ctx context.Context, bookingID string) (*Eligibility, error)

	// Process executes a refund through the payment gateway and records the
	// outcome.
	Process(ctx context.Context, req ProcessRequest) (*Refund, error)

	ListByBooking(ctx context.Context, bookingID string) ([]*Refund, error)
}

type service struct {
	repo     Repository
	bookings booking.Repository
	gateway  payment.Gateway
	clk      clock.Clock
}

func NewService(repo Repository, bookings booking.Repository, gateway payment.Gateway, clk clock.Clock) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		gateway:  gateway,
		clk:      clk,
	}
}

func (s *service) CheckEligibility(ctx context.Context, bookingID string) (*Eligibility, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	elig, _ := s.eligibility(b)
	return elig, nil
}

// eligibility evaluates the refund rules for a booking. When the booking is
// blocked it returns the blocking rule as an error alongside an ineligible
// result carrying the same reason.
func (s *service) eligibility(b *booking.Booking) (*Eligibility, error) {
	var blocked error
	switch {
	case b.PaymentStatus != booking.PaymentPaid:
		blocked = ErrNotPaid
	case b.Status == booking.StatusCompleted:
		blocked = ErrBookingCompleted
	case b.Status == booking.StatusCancelled:
		blocked = ErrBookingCancelled
	case s.hoursUntil(b) < 0:
		blocked = ErrServicePassed
	}
	if blocked != nil {
		return &Eligibility{Reason: blocked.Error()}, blocked
	}

	pct := TierPercentage(s.hoursUntil(b))
	return &Eligibility{
		Eligible:    true,
		Percentage:  pct,
		AmountCents: Amount(b.AmountCents, pct),
	}, nil
}

func (s *service) hoursUntil(b *booking.Booking) float64 {
	startsAt := timeutil.At(b.Date, b.StartMinute)
	return startsAt.Sub(s.clk.Now()).Hours()
}

func (s *service) Process(ctx context.Context, req ProcessRequest) (*Refund, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if b.PaymentReference == "" {
		return nil, ErrNoPaymentReference
	}

	pct := 100
	if !req.AdminOverride {
		elig, blocked := s.eligibility(b)
		if blocked != nil {
			return nil, blocked
		}
		pct = elig.Percentage
	}

	amount := Amount(b.AmountCents, pct)
	if req.AmountCents != nil {
		amount = *req.AmountCents
	}

	// The gateway call is the point of no return. Failure here leaves the
	// booking untouched; success makes the refund authoritative even if the
	// follow-up writes fail.
	res, err := s.gateway.ExecuteRefund(ctx, b.PaymentReference, amount, req.Reason)
	if err != nil {
		return nil, err
	}

	ref := &Refund{
		BookingID:   b.ID,
		AmountCents: amount,
		Percentage:  pct,
		Reason:      req.Reason,
		ExternalRef: res.RefundID,
		Status:      res.Status,
		ProcessedAt: s.clk.Now(),
	}

	if err := s.bookings.MarkRefunded(ctx, b.ID); err != nil {
		logger.Get().Error("refund executed but booking update failed, needs reconciliation",
			zap.String("booking_id", b.ID),
			zap.String("external_ref", res.RefundID),
			zap.Error(err),
		)
	}
	if err := s.repo.Create(ctx, ref); err != nil {
		logger.Get().Error("refund executed but refund record write failed, needs reconciliation",
			zap.String("booking_id", b.ID),
			zap.String("external_ref", res.RefundID),
			zap.Error(err),
		)
	}

	return ref, nil
}

func (s *service) ListByBooking(ctx context.Context, bookingID string) ([]*Refund, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, ErrBookingNotFound
	}
	return s.repo.ListByBooking(ctx, bookingID)
}
