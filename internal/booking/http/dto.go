package http

import (
	"time"

	"github.com/skedra/marketplace-backend/internal/booking"
	custHttp "github.com/skedra/marketplace-backend/internal/customer/http"
	"github.com/skedra/marketplace-backend/internal/pkg/request"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	provHttp "github.com/skedra/marketplace-backend/internal/provider/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	ProviderID string `form:"provider_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

type ServiceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID               string               `json:"id"`
	Provider         provHttp.ProviderTag `json:"provider"`
	Service          ServiceTag           `json:"service"`
	Customer         custHttp.CustomerTag `json:"customer"`
	Date             string               `json:"date"`
	StartTime        string               `json:"start_time"`
	DurationMinutes  int                  `json:"duration_minutes"`
	Status           string               `json:"status"`
	PaymentStatus    string               `json:"payment_status"`
	AmountCents      int64                `json:"amount_cents"`
	PaymentReference string               `json:"payment_reference,omitempty"`
	ProviderNotes    string               `json:"provider_notes,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		Provider:         provHttp.ProviderTag{ID: b.ProviderID, Name: b.ProviderName},
		Service:          ServiceTag{ID: b.ServiceID, Name: b.ServiceName},
		Customer:         custHttp.CustomerTag{ID: b.CustomerID, Name: b.CustomerName},
		Date:             b.Date.Format(timeutil.DateLayout),
		StartTime:        timeutil.FromMinutes(b.StartMinute),
		DurationMinutes:  b.DurationMinutes,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		AmountCents:      b.AmountCents,
		PaymentReference: b.PaymentReference,
		ProviderNotes:    b.ProviderNotes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	ProviderID string `json:"provider_id" binding:"required,uuid"`
	ServiceID  string `json:"service_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" binding:"required,datetime=15:04"`
	Notes      string `json:"notes"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed in_progress completed cancelled"`
}

type MarkPaidBody struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
}
