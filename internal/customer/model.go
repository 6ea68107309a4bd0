package customer

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrNotFound   = apperror.New(http.StatusNotFound, "customer not found")
	ErrEmailTaken = apperror.New(http.StatusConflict, "email already registered")
	ErrEmptyName  = apperror.New(http.StatusBadRequest, "display name cannot be empty")
)

// Customer is the booking party. Authentication lives outside this service;
// customers are referenced by id only.
type Customer struct {
	ID          string
	Email       string
	DisplayName string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
