package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string

	// Stripe secret key used by the refund gateway.
	StripeKey string

	// Fallback availability window used when a provider has no windows
	// configured for a weekday. Kept explicit so deployments can tune it
	// and tests can see it.
	DefaultWindowStart string
	DefaultWindowEnd   string

	// Granularity of generated booking slots, in minutes.
	SlotGranularity int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Stripe key is required for executing refunds
	cfg.StripeKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.StripeKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	// Default provider availability window (business hours fallback)
	cfg.DefaultWindowStart = getEnv("DEFAULT_WINDOW_START", "09:00")
	cfg.DefaultWindowEnd = getEnv("DEFAULT_WINDOW_END", "18:00")
	if !timeutil.ValidClock(cfg.DefaultWindowStart) || !timeutil.ValidClock(cfg.DefaultWindowEnd) {
		return nil, fmt.Errorf("default availability window must be HH:MM times")
	}
	if timeutil.ToMinutes(cfg.DefaultWindowStart) >= timeutil.ToMinutes(cfg.DefaultWindowEnd) {
		return nil, fmt.Errorf("default availability window start must be before end")
	}

	// Slot granularity in minutes (default: 30)
	cfg.SlotGranularity, err = getEnvAsInt("SLOT_GRANULARITY_MINUTES", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_GRANULARITY_MINUTES: %w", err)
	}
	if cfg.SlotGranularity <= 0 {
		return nil, fmt.Errorf("SLOT_GRANULARITY_MINUTES must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
