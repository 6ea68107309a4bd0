package customer

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Email       string
	DisplayName string
	Phone       string
}

type UpdateRequest struct {
	DisplayName *string
	Phone       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Customer, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrEmptyName
	}

	cu := &Customer{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
	}

	if err := s.repo.Create(ctx, cu); err != nil {
		return nil, err
	}
	return cu, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error) {
	cu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, ErrEmptyName
		}
		cu.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		cu.Phone = *req.Phone
	}

	if err := s.repo.Update(ctx, cu); err != nil {
		return nil, err
	}
	return cu, nil
}
