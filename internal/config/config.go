package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds all chatbot settings, populated from environment variables.
type Config struct {
	// Service credentials, all required.
	GeminiAPIKey    string
	OpenCageAPIKey  string
	MeteoblueAPIKey string

	GeminiModel   string
	GeminiTimeout time.Duration
	HTTPTimeout   time.Duration // geocoding and forecast requests

	// MetricsAddr enables the health/metrics HTTP endpoint when non-empty.
	MetricsAddr     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. The three provider credentials are required; missing any of
// them is a startup error.
func Load() (*Config, error) {
	geminiTimeout, err := parseDuration("GEMINI_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	httpTimeout, err := parseDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenCageAPIKey:  os.Getenv("OPENCAGE_API_KEY"),
		MeteoblueAPIKey: os.Getenv("METEOBLUE_API_KEY"),

		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-pro"),
		GeminiTimeout: geminiTimeout,
		HTTPTimeout:   httpTimeout,

		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if cfg.OpenCageAPIKey == "" {
		return nil, errors.New("OPENCAGE_API_KEY is required")
	}
	if cfg.MeteoblueAPIKey == "" {
		return nil, errors.New("METEOBLUE_API_KEY is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}
