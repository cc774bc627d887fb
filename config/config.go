package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Port           string
	GinMode        string
	PlanSeed       int64
	CatalogVersion string // empty keeps the built-in catalog version
}

// Load reads .env if present (missing file is fine in production where
// the environment is set by the platform) and applies defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		PlanSeed:       1,
		CatalogVersion: os.Getenv("CATALOG_VERSION"),
	}

	if raw := os.Getenv("PLAN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PLAN_SEED %q: %w", raw, err)
		}
		cfg.PlanSeed = seed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
