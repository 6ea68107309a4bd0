package availability

import (
	"context"

	"github.com/skedra/marketplace-backend/internal/provider"
)

type CreateRequest struct {
	ProviderID  string
	Weekday     int
	StartMinute int
	EndMinute   int
}

type UpdateRequest struct {
	Weekday     *int
	StartMinute *int
	EndMinute   *int
	Active      *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Window, error)
	GetByID(ctx context.Context, id string) (*Window, error)
	ListByProvider(ctx context.Context, providerID string) ([]*Window, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Window, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	provService provider.Service
}

func NewService(repo Repository, provService provider.Service) Service {
	return &service{
		repo:        repo,
		provService: provService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Window, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	// Zero-length and inverted windows are user input mistakes, not faults.
	if req.StartMinute >= req.EndMinute {
		return nil, ErrInvalidWindow
	}

	if _, err := s.provService.GetByID(ctx, req.ProviderID); err != nil {
		return nil, ErrInvalidProvider
	}

	w := &Window{
		ProviderID:  req.ProviderID,
		Weekday:     req.Weekday,
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
		Active:      true,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Window, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByProvider(ctx context.Context, providerID string) ([]*Window, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Window, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Weekday != nil {
		if *req.Weekday < 0 || *req.Weekday > 6 {
			return nil, ErrInvalidWeekday
		}
		w.Weekday = *req.Weekday
	}
	if req.StartMinute != nil {
		w.StartMinute = *req.StartMinute
	}
	if req.EndMinute != nil {
		w.EndMinute = *req.EndMinute
	}
	if w.StartMinute >= w.EndMinute {
		return nil, ErrInvalidWindow
	}
	if req.Active != nil {
		w.Active = *req.Active
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
