package booking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/customer"
	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	"github.com/skedra/marketplace-backend/internal/provider"
)

type CreateRequest struct {
	CustomerID  string
	ProviderID  string
	ServiceID   string
	Date        time.Time
	StartMinute int
	Notes       string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	MarkPaid(ctx context.Context, id string, paymentReference string) (*Booking, error)
}

type service struct {
	repo        Repository
	catService  catalog.Service
	provService provider.Service
	custService customer.Service
	checker     ConflictChecker
	clk         clock.Clock
}

func NewService(
	repo Repository,
	catService catalog.Service,
	provService provider.Service,
	custService customer.Service,
	checker ConflictChecker,
	clk clock.Clock,
) Service {
	return &service{
		repo:        repo,
		catService:  catService,
		provService: provService,
		custService: custService,
		checker:     checker,
		clk:         clk,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
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

	// Strict check: the slot must lie in the future.
	startsAt := timeutil.At(req.Date, req.StartMinute)
	if !startsAt.After(s.clk.Now()) {
		return nil, ErrStartTimePast
	}

	res := s.checker.Check(ctx, req.ProviderID, req.Date, req.StartMinute, offering.DurationMinutes)
	if res.CheckFailed {
		return nil, ErrConflictCheckFailed
	}
	if res.HasConflict {
		return nil, conflictError(res.Conflicts)
	}

	b := &Booking{
		ProviderID:      req.ProviderID,
		ServiceID:       req.ServiceID,
		CustomerID:      req.CustomerID,
		Date:            timeutil.DateOf(req.Date),
		StartMinute:     req.StartMinute,
		DurationMinutes: offering.DurationMinutes,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		AmountCents:     offering.PriceCents,
		ProviderNotes:   req.Notes,
	}

	// The repository re-checks under its lock, so a racing request that
	// slipped past the check above still cannot double-book.
	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	b.ProviderName = prov.Name
	b.ServiceName = offering.Name
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.Status = status
	return b, nil
}

func (s *service) MarkPaid(ctx context.Context, id string, paymentReference string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if err := s.repo.MarkPaid(ctx, id, paymentReference); err != nil {
		return nil, err
	}

	b.PaymentStatus = PaymentPaid
	b.PaymentReference = paymentReference
	return b, nil
}

// conflictError names the blocking booking so callers can explain the
// rejection instead of surfacing a bare 409.
func conflictError(conflicts []*Booking) error {
	if len(conflicts) == 0 {
		return ErrTimeConflict
	}
	c := conflicts[0]
	return apperror.New(http.StatusConflict, fmt.Sprintf(
		"time slot conflicts with an existing booking from %s to %s",
		timeutil.FromMinutes(c.StartMinute),
		timeutil.FromMinutes(c.StartMinute+c.DurationMinutes),
	))
}
