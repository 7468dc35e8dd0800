package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	AppEnv               string
	StripeSecretKey      string
	StripeEndpointSecret string // optional; empty disables webhook signature checks
	TransactionLogPath   string
	PendingMaxAge        time.Duration
	SweepInterval        time.Duration
}

// VerifyWebhooks reports whether an endpoint secret is configured.
func (c *Config) VerifyWebhooks() bool {
	return c.StripeEndpointSecret != ""
}

func LoadConfig() (*Config, error) {
	// Best-effort; env vars win over .env entries.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "5000"),
		AppEnv:               getEnv("APP_ENV", "development"),
		StripeSecretKey:      os.Getenv("STRIPE_API_KEY"),
		StripeEndpointSecret: os.Getenv("STRIPE_ENDPOINT_SECRET"),
		TransactionLogPath:   getEnv("TRANSACTION_LOG_PATH", "logs/transactions.csv"),
		PendingMaxAge:        getDurationEnv("PENDING_MAX_AGE", 30*time.Minute),
		SweepInterval:        getDurationEnv("SWEEP_INTERVAL", time.Minute),
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY is required; keys can be found at https://dashboard.stripe.com/account/apikeys")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
