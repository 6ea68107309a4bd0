package provider

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "provider not found")
	ErrEmptyName      = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidService = apperror.New(http.StatusBadRequest, "invalid service_id")
	ErrAlreadyOffered = apperror.New(http.StatusConflict, "provider already offers this service")
)

// Provider is a bookable person or business on the marketplace.
type Provider struct {
	ID        string
	Name      string
	Bio       string
	Active    bool
	CreatedAt time.Time
}

// Filter defines parameters for listing providers.
type Filter struct {
	ServiceID  string
	ActiveOnly bool
	Page       int
	PageSize   int
}
