package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// defaultAPIKey is the development-only shared secret. Production deployments
// must override API_KEY; ValidateForProduction rejects this value.
const defaultAPIKey = "abc"

// Config holds all configuration for the application
type Config struct {
	// HTTP
	Addr string `conf:"default::8080,env:ADDR"`

	// CORS — comma-separated list of allowed origins
	CORSAllowedOrigins string `conf:"default:http://localhost:3000,env:CORS_ALLOWED_ORIGINS"`

	// Auth — the static shared secret accepted as ?api_key=
	APIKey string `conf:"default:abc,env:API_KEY,noprint"`

	// RootDelay is the simulated latency served on GET /.
	RootDelay time.Duration `conf:"default:1s,env:ROOT_DELAY"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:catalog-api,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.APIKey == defaultAPIKey || len(cfg.APIKey) < 16 {
		errs = append(errs, "API_KEY must be a random secret of at least 16 bytes; generate with: openssl rand -base64 16")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.Contains(cfg.CORSAllowedOrigins, "*") {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must not contain '*' in production")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
