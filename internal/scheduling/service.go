package scheduling

import (
	"context"
	"time"

	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/customer"
	"github.com/skedra/marketplace-backend/internal/provider"
)

type AlternativesRequest struct {
	ServiceID   string
	ProviderID  string // provider of the originally requested slot
	Date        time.Time
	StartMinute int
	Max         int
}

type RecurringRequest struct {
	CustomerID  string
	ProviderID  string
	ServiceID   string
	StartDate   time.Time
	EndDate     time.Time
	Recurrence  Recurrence
	Weekdays    []int
	StartMinute int
	Notes       string
}

type Service interface {
	// AvailableSlots returns the provider's slot grid for one date, sized for
	// the given service.
	AvailableSlots(ctx context.Context, providerID string, date time.Time, serviceID string) ([]Slot, error)

	// FindAlternatives searches the next week for open slots when the
	// requested one is taken.
	FindAlternatives(ctx context.Context, req AlternativesRequest) ([]Alternative, error)

	// CreateRecurring books every date the recurrence expands to, collecting
	// per-date outcomes instead of aborting on the first conflict.
	CreateRecurring(ctx context.Context, req RecurringRequest) (*RecurringResult, error)
}

type service struct {
	generator   *SlotGenerator
	checker     booking.ConflictChecker
	bookings    booking.Repository
	catService  catalog.Service
	provService provider.Service
	custService customer.Service
	clk         clock.Clock
}

func NewService(
	generator *SlotGenerator,
	checker booking.ConflictChecker,
	bookings booking.Repository,
	catService catalog.Service,
	provService provider.Service,
	custService customer.Service,
	clk clock.Clock,
) Service {
	return &service{
		generator:   generator,
		checker:     checker,
		bookings:    bookings,
		catService:  catService,
		provService: provService,
		custService: custService,
		clk:         clk,
	}
}

func (s *service) AvailableSlots(ctx context.Context, providerID string, date time.Time, serviceID string) ([]Slot, error) {
	prov, err := s.provService.GetByID(ctx, providerID)
	if err != nil {
		return nil, ErrProviderNotFound
	}
	if !prov.Active {
		return nil, ErrProviderInactive
	}

	offering, err := s.catService.GetByID(ctx, serviceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	if !offering.Active {
		return nil, ErrServiceInactive
	}

	return s.generator.Generate(ctx, providerID, date, offering.DurationMinutes)
}
