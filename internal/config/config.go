package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrBackendURLMissing is returned when no backend URL variable is set in production.
var ErrBackendURLMissing = errors.New("backend URL is not configured")

// BackendURLVars lists the environment variables consulted for the backend URL, in priority order.
var BackendURLVars = []string{
	"EVERMORE_API_URL",
	"EVERMORE_BACKEND_URL",
	"NEXT_PUBLIC_EVERMORE_API_URL",
	"BACKEND_URL",
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	defaultBackendURL     = "http://localhost:4000"
	defaultAddr           = ":8080"
	defaultSessionSecret  = "evermore-dev-session-secret-change-me"
	defaultBackendTimeout = 15 * time.Second
	defaultRateLimit      = 10
)

// Provider is the read-only view of the configuration handed to the rest of the app.
type Provider interface {
	GetAppEnv() string
	IsProduction() bool
	GetServerAddr() string
	GetBackendURL() string
	GetBackendTimeout() time.Duration
	GetSessionSecret() string
	GetContentDir() string
	GetRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string
	ServerAddr     string
	BackendURL     string
	BackendTimeout time.Duration
	SessionSecret  string
	ContentDir     string
	RateLimit      float64
}

// New loads configuration from environment variables.
// It terminates the process when the configuration cannot be used, mirroring
// how the server refuses to boot without its required settings.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load builds a Config from the given lookup function. It never reads .env files.
func Load(lookup func(string) (string, bool)) (*Config, error) {
	env := strings.ToLower(get(lookup, "APP_ENV", EnvDevelopment))

	backendURL, err := ResolveBackendURL(env, lookup)
	if err != nil {
		return nil, err
	}

	timeout := defaultBackendTimeout
	if raw, ok := lookup("BACKEND_TIMEOUT"); ok && raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKEND_TIMEOUT %q: %w", raw, err)
		}
	}

	rate := float64(defaultRateLimit)
	if raw, ok := lookup("RATE_LIMIT_PER_SECOND"); ok && raw != "" {
		rate, err = strconv.ParseFloat(raw, 64)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_SECOND %q", raw)
		}
	}

	secret, _ := lookup("SESSION_SECRET")
	if secret == "" {
		if env == EnvProduction {
			return nil, errors.New("SESSION_SECRET must be set in production")
		}
		secret = defaultSessionSecret
	}

	return &Config{
		AppEnv:         env,
		ServerAddr:     get(lookup, "SERVER_ADDR", defaultAddr),
		BackendURL:     backendURL,
		BackendTimeout: timeout,
		SessionSecret:  secret,
		ContentDir:     get(lookup, "CONTENT_DIR", ""),
		RateLimit:      rate,
	}, nil
}

// ResolveBackendURL returns the first non-empty backend URL variable with any
// trailing slash removed. Outside production it falls back to a local default.
func ResolveBackendURL(env string, lookup func(string) (string, bool)) (string, error) {
	for _, name := range BackendURLVars {
		if v, ok := lookup(name); ok {
			if v = strings.TrimRight(strings.TrimSpace(v), "/"); v != "" {
				return v, nil
			}
		}
	}
	if env == EnvProduction {
		return "", fmt.Errorf("%w: set one of %s", ErrBackendURLMissing, strings.Join(BackendURLVars, ", "))
	}
	return defaultBackendURL, nil
}

func get(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppEnv() string                { return c.AppEnv }
func (c *Config) IsProduction() bool               { return c.AppEnv == EnvProduction }
func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetBackendURL() string            { return c.BackendURL }
func (c *Config) GetBackendTimeout() time.Duration { return c.BackendTimeout }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetContentDir() string            { return c.ContentDir }
func (c *Config) GetRateLimit() float64            { return c.RateLimit }
