package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skedra/marketplace-backend/internal/api"
	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/booking"
	"github.com/skedra/marketplace-backend/internal/catalog"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/customer"
	"github.com/skedra/marketplace-backend/internal/payment"
	"github.com/skedra/marketplace-backend/internal/provider"
	"github.com/skedra/marketplace-backend/internal/refund"
	"github.com/skedra/marketplace-backend/internal/scheduling"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool

	// DefaultHours is the availability fallback for providers with no
	// windows configured on a weekday.
	DefaultHours availability.Hours

	// SlotGranularity is the spacing of generated slots, in minutes.
	SlotGranularity int

	Gateway payment.Gateway
	Clock   clock.Clock
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo)

	// Provider module
	provRepo := provider.NewPgxRepository(cfg.DBPool)
	provService := provider.NewService(provRepo, catalogService)

	// Customer module
	custRepo := customer.NewPgxRepository(cfg.DBPool)
	custService := customer.NewService(custRepo)

	// Availability module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo, provService)

	// Booking module, with the conflict checker wired in front of writes
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	checker := scheduling.NewDetector(bookingRepo)
	bookingService := booking.NewService(bookingRepo, catalogService, provService, custService, checker, clk)

	// Scheduling module
	generator := scheduling.NewSlotGenerator(bookingRepo, availRepo, clk, cfg.DefaultHours, cfg.SlotGranularity)
	schedService := scheduling.NewService(generator, checker, bookingRepo, catalogService, provService, custService, clk)

	// Refund module
	refundRepo := refund.NewPgxRepository(cfg.DBPool)
	refundService := refund.NewService(refundRepo, bookingRepo, cfg.Gateway, clk)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		CatalogService:      catalogService,
		ProviderService:     provService,
		CustomerService:     custService,
		AvailabilityService: availService,
		BookingService:      bookingService,
		SchedulingService:   schedService,
		RefundService:       refundService,
	})

	return &Container{Router: router}
}
