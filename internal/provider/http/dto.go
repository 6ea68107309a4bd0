package http

import (
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/request"
	"github.com/skedra/marketplace-backend/internal/provider"
)

type ListRequest struct {
	request.ListParams
	ServiceID string `form:"service_id" binding:"omitempty,uuid"`
	Active    bool   `form:"active"`
}

// ProviderTag is the compact provider representation embedded in other responses.
type ProviderTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProviderResponse(p *provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Bio:       p.Bio,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

type CreateBody struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

type UpdateBody struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Active *bool   `json:"active"`
}

type AddServiceBody struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
}
