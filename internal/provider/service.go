package provider

import (
	"context"
	"strings"

	"github.com/skedra/marketplace-backend/internal/catalog"
)

type CreateRequest struct {
	Name string
	Bio  string
}

type UpdateRequest struct {
	Name   *string
	Bio    *string
	Active *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error)
	ListActiveByService(ctx context.Context, serviceID string) ([]*Provider, error)
	AddService(ctx context.Context, providerID, serviceID string) error
	RemoveService(ctx context.Context, providerID, serviceID string) error
}

type service struct {
	repo       Repository
	catService catalog.Service
}

func NewService(repo Repository, catService catalog.Service) Service {
	return &service{
		repo:       repo,
		catService: catService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Provider, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	p := &Provider{
		Name:   req.Name,
		Bio:    req.Bio,
		Active: true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		p.Name = *req.Name
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListActiveByService(ctx context.Context, serviceID string) ([]*Provider, error) {
	return s.repo.ListActiveByService(ctx, serviceID)
}

func (s *service) AddService(ctx context.Context, providerID, serviceID string) error {
	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return err
	}
	// Validation: service must exist in the catalogue
	if _, err := s.catService.GetByID(ctx, serviceID); err != nil {
		return ErrInvalidService
	}
	return s.repo.AddService(ctx, providerID, serviceID)
}

func (s *service) RemoveService(ctx context.Context, providerID, serviceID string) error {
	return s.repo.RemoveService(ctx, providerID, serviceID)
}
