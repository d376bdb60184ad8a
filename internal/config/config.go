// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Draft backends selectable with DRAFT_BACKEND.
const (
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

// DefaultAPIBaseURL is the hosted trip backend used when API_BASE_URL is unset.
const DefaultAPIBaseURL = "https://iti-server-production.up.railway.app"

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Expo dev server. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is the remote trip backend.
	APIBaseURL string

	// APITimeout bounds every call to the remote backend. Defaults to 10s.
	APITimeout time.Duration

	// DraftBackend selects where drafts live: "bolt" (default) or "postgres".
	DraftBackend string

	// DraftPath is the bbolt file used by the bolt backend. Defaults to "drafts.db".
	DraftPath string

	// DatabaseURL is the Postgres connection string. Required for the postgres backend.
	DatabaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// DefaultTheme is the theme of a device that never picked one.
	DefaultTheme string

	// OTLPEndpoint is the OTLP/gRPC collector address. Tracing is off when empty.
	OTLPEndpoint string

	// ServiceName is reported as the OpenTelemetry service.name.
	ServiceName string
}

// Load reads an optional .env file, then configuration from environment
// variables. Variables already set in the environment win over the file.
// The returned error lists every missing or invalid variable.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		DraftBackend: getEnv("DRAFT_BACKEND", BackendBolt),
		DraftPath:    getEnv("DRAFT_PATH", "drafts.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DefaultTheme: getEnv("DEFAULT_THEME", "light"),
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		ServiceName:  getEnv("SERVICE_NAME", "trip-builder"),
	}

	var problems []string

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		problems = append(problems, "API_TIMEOUT must be a positive duration")
	}
	cfg.APITimeout = timeout

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	switch cfg.DraftBackend {
	case BackendBolt:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when DRAFT_BACKEND=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("DRAFT_BACKEND must be %q or %q", BackendBolt, BackendPostgres))
	}

	if cfg.DefaultTheme != "light" && cfg.DefaultTheme != "dark" {
		problems = append(problems, "DEFAULT_THEME must be light or dark")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
