package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// RefreshConcurrency bounds the number of accounts refreshed in parallel
	// by the totals and validation passes.
	RefreshConcurrency int

	// Retry policy applied to lifecycle and refresh operations.
	RetryAttempts int
	RetryTimeout  time.Duration
	RetryBackoff  time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "insecure-dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finance-ledger")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REFRESH_CONCURRENCY", 4)
	viper.SetDefault("RETRY_ATTEMPTS", 3)
	viper.SetDefault("RETRY_TIMEOUT", "5s")
	viper.SetDefault("RETRY_BACKOFF", "100ms")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		RefreshConcurrency: viper.GetInt("REFRESH_CONCURRENCY"),
		RetryAttempts:      viper.GetInt("RETRY_ATTEMPTS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}
	if cfg.IsProduction && cfg.JWTSecret == "insecure-dev-secret-change-me" {
		log.Println("Warning: JWT_SECRET not set in production, using default insecure key.")
	}
	if cfg.RefreshConcurrency < 1 {
		cfg.RefreshConcurrency = 1
	}

	var err error
	if cfg.JWTExpiryDuration, err = time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION")); err != nil {
		cfg.JWTExpiryDuration = time.Hour
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION, defaulting to %s", cfg.JWTExpiryDuration)
	}
	if cfg.RetryTimeout, err = time.ParseDuration(viper.GetString("RETRY_TIMEOUT")); err != nil {
		cfg.RetryTimeout = 5 * time.Second
		log.Printf("Warning: invalid RETRY_TIMEOUT, defaulting to %s", cfg.RetryTimeout)
	}
	if cfg.RetryBackoff, err = time.ParseDuration(viper.GetString("RETRY_BACKOFF")); err != nil {
		cfg.RetryBackoff = 100 * time.Millisecond
		log.Printf("Warning: invalid RETRY_BACKOFF, defaulting to %s", cfg.RetryBackoff)
	}

	return cfg, nil
}
