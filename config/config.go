package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/boetepot/boetepot-backend/utils/logger"
)

// Config holds everything read from the environment at startup. It is built
// once, never mutated, and passed explicitly to the components that need it;
// no secret lives in source.
type Config struct {
	DatabaseURL   string
	Port          string
	AdminPassword string
	TokenSecret   string
	TokenTTL      time.Duration
	CORSOrigin    string
}

// Load reads .env (when present) and the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, reading environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getenv("PORT", "4000"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required in .env or environment")
	}
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required in .env or environment")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required in .env or environment")
	}

	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
