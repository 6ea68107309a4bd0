package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/customer"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	"github.com/skedra/marketplace-backend/internal/provider"
)

// fakeBookingRepo is an in-memory booking store. CreateIfFree runs its
// overlap check and insert under one mutex, mirroring the per-provider-day
// lock of the real store.
type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []*booking.Booking
	nextID    int
	listErr   error
	createErr error
}

func (r *fakeBookingRepo) CreateIfFree(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.bookings {
		if existing.ProviderID != b.ProviderID || !existing.Date.Equal(b.Date) {
			continue
		}
		if !isActive(existing.Status) {
			continue
		}
		if timeutil.Overlaps(b.StartMinute, b.DurationMinutes, existing.StartMinute, existing.DurationMinutes) {
			return booking.ErrTimeConflict
		}
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	copied := *b
	r.bookings = append(r.bookings, &copied)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, booking.ErrNotFound
}

func (r *fakeBookingRepo) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*booking.Booking(nil), r.bookings...), len(r.bookings), nil
}

func (r *fakeBookingRepo) ListForProviderDate(ctx context.Context, providerID string, date time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	wanted := make(map[booking.Status]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date.Equal(date) && wanted[b.Status] {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return booking.ErrNotFound
}

func (r *fakeBookingRepo) MarkPaid(ctx context.Context, id string, paymentReference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.PaymentStatus = booking.PaymentPaid
			b.PaymentReference = paymentReference
			return nil
		}
	}
	return booking.ErrNotFound
}

func (r *fakeBookingRepo) MarkRefunded(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = booking.StatusCancelled
			b.PaymentStatus = booking.PaymentRefunded
			return nil
		}
	}
	return booking.ErrNotFound
}

func isActive(s booking.Status) bool {
	for _, active := range booking.ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

type fakeAvailabilityRepo struct {
	windows []*availability.Window
	listErr error
}

func (r *fakeAvailabilityRepo) Create(ctx context.Context, w *availability.Window) error {
	r.windows = append(r.windows, w)
	return nil
}

func (r *fakeAvailabilityRepo) GetByID(ctx context.Context, id string) (*availability.Window, error) {
	for _, w := range r.windows {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, availability.ErrNotFound
}

func (r *fakeAvailabilityRepo) ListByProvider(ctx context.Context, providerID string) ([]*availability.Window, error) {
	var out []*availability.Window
	for _, w := range r.windows {
		if w.ProviderID == providerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) ListActiveForWeekday(ctx context.Context, providerID string, weekday int) ([]*availability.Window, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*availability.Window
	for _, w := range r.windows {
		if w.ProviderID == providerID && w.Weekday == weekday && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) Update(ctx context.Context, w *availability.Window) error {
	return nil
}

func (r *fakeAvailabilityRepo) Delete(ctx context.Context, id string) error {
	return nil
}

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
