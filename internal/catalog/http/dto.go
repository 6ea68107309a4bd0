package http

import (
	"time"

	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/pkg/request"
)

type ListRequest struct {
	request.ListParams
	Active bool `form:"active"`
}

type OfferingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewOfferingResponse(o *catalog.Offering) OfferingResponse {
	return OfferingResponse{
		ID:              o.ID,
		Name:            o.Name,
		Description:     o.Description,
		DurationMinutes: o.DurationMinutes,
		PriceCents:      o.PriceCents,
		Active:          o.Active,
		CreatedAt:       o.CreatedAt,
	}
}

type CreateBody struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
}

type UpdateBody struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1"`
	PriceCents      *int64  `json:"price_cents" binding:"omitempty,min=0"`
	Active          *bool   `json:"active"`
}
