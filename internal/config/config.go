package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr = ":8080"
	defaultDSN        = "foodgram.db"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultJWTTTL     = "24h"
	defaultBaseURL    = "http://localhost:8080"
)

type Config struct {
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	// BaseURL is prepended to generated short links.
	BaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", defaultBaseURL), "/"),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}
