package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skedra/marketplace-backend/internal/availability"
	availHttp "github.com/skedra/marketplace-backend/internal/availability/http"
	"github.com/skedra/marketplace-backend/internal/booking"
	bookingHttp "github.com/skedra/marketplace-backend/internal/booking/http"
	"github.com/skedra/marketplace-backend/internal/catalog"
	catalogHttp "github.com/skedra/marketplace-backend/internal/catalog/http"
	"github.com/skedra/marketplace-backend/internal/customer"
	custHttp "github.com/skedra/marketplace-backend/internal/customer/http"
	"github.com/skedra/marketplace-backend/internal/provider"
	provHttp "github.com/skedra/marketplace-backend/internal/provider/http"
	"github.com/skedra/marketplace-backend/internal/refund"
	refundHttp "github.com/skedra/marketplace-backend/internal/refund/http"
	"github.com/skedra/marketplace-backend/internal/scheduling"
	schedHttp "github.com/skedra/marketplace-backend/internal/scheduling/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	CatalogService      catalog.Service
	ProviderService     provider.Service
	CustomerService     customer.Service
	AvailabilityService availability.Service
	BookingService      booking.Service
	SchedulingService   scheduling.Service
	RefundService       refund.Service
}

// NewRouter assembles middleware and registers each module's routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger logs request information; Recovery turns panics into 500s.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	provHandler := provHttp.NewHandler(cfg.ProviderService)
	custHandler := custHttp.NewHandler(cfg.CustomerService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	schedHandler := schedHttp.NewHandler(cfg.SchedulingService)
	refundHandler := refundHttp.NewHandler(cfg.RefundService)

	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		provHttp.RegisterRoutes(v1, provHandler)
		custHttp.RegisterRoutes(v1, custHandler)
		availHttp.RegisterRoutes(v1, availHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		schedHttp.RegisterRoutes(v1, schedHandler)
		refundHttp.RegisterRoutes(v1, refundHandler)
	}

	return r
}
