package booking

import (
	"context"

	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/customer"
	"github.com/skedra/marketplace-backend/internal/provider"
)

type fakeCatalogService struct {
	offerings map[string]*catalog.Offering
}

func (s *fakeCatalogService) Create(ctx context.Context, req catalog.CreateRequest) (*catalog.Offering, error) {
	return nil, catalog.ErrNotFound
}

func (s *fakeCatalogService) GetByID(ctx context.Context, id string) (*catalog.Offering, error) {
	if o, ok := s.offerings[id]; ok {
		return o, nil
	}
	return nil, catalog.ErrNotFound
}

func (s *fakeCatalogService) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Offering, int, error) {
	return nil, 0, nil
}

func (s *fakeCatalogService) Update(ctx context.Context, id string, req catalog.UpdateRequest) (*catalog.Offering, error) {
	return nil, catalog.ErrNotFound
}

type fakeProviderService struct {
	providers []*provider.Provider
}

func (s *fakeProviderService) Create(ctx context.Context, req provider.CreateRequest) (*provider.Provider, error) {
	return nil, provider.ErrNotFound
}

func (s *fakeProviderService) GetByID(ctx context.Context, id string) (*provider.Provider, error) {
	for _, p := range s.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, provider.ErrNotFound
}

func (s *fakeProviderService) List(ctx context.Context, filter provider.Filter) ([]*provider.Provider, int, error) {
	return s.providers, len(s.providers), nil
}

func (s *fakeProviderService) Update(ctx context.Context, id string, req provider.UpdateRequest) (*provider.Provider, error) {
	return nil, provider.ErrNotFound
}

func (s *fakeProviderService) ListActiveByService(ctx context.Context, serviceID string) ([]*provider.Provider, error) {
	var out []*provider.Provider
	for _, p := range s.providers {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProviderService) AddService(ctx context.Context, providerID, serviceID string) error {
	return nil
}

func (s *fakeProviderService) RemoveService(ctx context.Context, providerID, serviceID string) error {
	return nil
}

type fakeCustomerService struct {
	customers map[string]*customer.Customer
}

func (s *fakeCustomerService) Create(ctx context.Context, req customer.CreateRequest) (*customer.Customer, error) {
	return nil, customer.ErrNotFound
}

func (s *fakeCustomerService) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return nil, customer.ErrNotFound
}

func (s *fakeCustomerService) Update(ctx context.Context, id string, req customer.UpdateRequest) (*customer.Customer, error) {
	return nil, customer.ErrNotFound
}
