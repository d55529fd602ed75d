// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	apierrors "github.com/olgasafonova/ytunnus-mcp-server/internal/errors"
)

// Config holds MCP server settings.
type Config struct {
	// HTTPAddr serves MCP over streamable HTTP when set; stdio otherwise.
	HTTPAddr string `env:"BUSINESSID_HTTP_ADDR"`

	// MetricsAddr serves /metrics on its own listener in stdio mode.
	MetricsAddr string `env:"BUSINESSID_METRICS_ADDR"`

	// RateLimit is requests per minute per client IP in HTTP mode. 0 disables it.
	RateLimit int `env:"BUSINESSID_RATE_LIMIT" envDefault:"60"`

	// MaxBodyBytes caps HTTP request bodies.
	MaxBodyBytes int64 `env:"BUSINESSID_MAX_BODY_BYTES" envDefault:"1048576"`

	LogLevel string `env:"BUSINESSID_LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.RateLimit < 0 {
		return apierrors.NewValidationError("BUSINESSID_RATE_LIMIT", strconv.Itoa(c.RateLimit), "must not be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return apierrors.NewValidationError("BUSINESSID_MAX_BODY_BYTES", strconv.FormatInt(c.MaxBodyBytes, 10), "must be positive")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return apierrors.NewValidationError("BUSINESSID_LOG_LEVEL", c.LogLevel, "must be one of debug, info, warn, error")
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
