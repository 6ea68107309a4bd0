package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"github.com/skedra/marketplace-backend/internal/app"
	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/config"
	"github.com/skedra/marketplace-backend/internal/db"
	"github.com/skedra/marketplace-backend/internal/payment"
	"github.com/skedra/marketplace-backend/internal/pkg/logger"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	"github.com/skedra/marketplace-backend/migrations"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.IsProduction)
	defer logger.Get().Sync() //nolint:errcheck

	stripe.Key = cfg.StripeKey

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Get().Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		logger.Get().Fatal("failed to apply migrations", zap.Error(err))
	}

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		DefaultHours: availability.Hours{
			StartMinute: timeutil.ToMinutes(cfg.DefaultWindowStart),
			EndMinute:   timeutil.ToMinutes(cfg.DefaultWindowEnd),
		},
		SlotGranularity: cfg.SlotGranularity,
		Gateway:         payment.NewStripeGateway(),
		Clock:           clock.NewSystem(),
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		logger.Get().Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Get().Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Get().Error("server forced to shutdown", zap.Error(err))
	}

	logger.Get().Info("server exited gracefully")
}
