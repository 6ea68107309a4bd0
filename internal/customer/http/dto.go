package http

import (
	"time"

	"github.com/skedra/marketplace-backend/internal/customer"
)

// CustomerTag is the compact customer representation embedded in other responses.
type CustomerTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CustomerResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCustomerResponse(cu *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          cu.ID,
		Email:       cu.Email,
		DisplayName: cu.DisplayName,
		Phone:       cu.Phone,
		CreatedAt:   cu.CreatedAt,
		UpdatedAt:   cu.UpdatedAt,
	}
}

type CreateBody struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name" binding:"required"`
	Phone       string `json:"phone"`
}

type UpdateBody struct {
	DisplayName *string `json:"display_name"`
	Phone       *string `json:"phone"`
}
