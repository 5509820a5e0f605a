package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds every process-wide setting. Values are read from the
// environment exactly once at startup; nothing is reloadable at runtime.
type Config struct {
	SheetsURL         string
	Port              string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	RefreshInterval   time.Duration
}

// Load reads the configuration from the environment. SHEETS_URL is the only
// hard requirement; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		SheetsURL:         os.Getenv("SHEETS_URL"),
		Port:              getEnv("PORT", "8080"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "SourdoughDevSecret"),
		RefreshInterval:   30 * time.Second,
	}

	if cfg.SheetsURL == "" {
		return nil, errors.New("SHEETS_URL is not set")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is not set")
	}

	if raw := os.Getenv("REFRESH_INTERVAL_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, errors.New("REFRESH_INTERVAL_SECONDS must be a positive integer")
		}
		cfg.RefreshInterval = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
