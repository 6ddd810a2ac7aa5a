package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// History drivers.
const (
	HistoryNone     = "none"
	HistoryPostgres = "postgres"
	HistorySupabase = "supabase"
	HistorySQLite   = "sqlite"
)

type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string
	CORSOrigins []string

	// Generation
	GenerationDelay time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// History
	HistoryDriver string
	DatabaseURL   string
	SQLitePath    string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string
}

// Load reads the environment, after merging a .env file when present.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	delay, err := time.ParseDuration(getEnv("GENERATION_DELAY", "1.5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_DELAY: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		GenerationDelay: delay,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		HistoryDriver: strings.ToLower(getEnv("HISTORY_DRIVER", HistoryNone)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "palette.db"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "uploads"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GenerationDelay < 0 {
		return fmt.Errorf("GENERATION_DELAY must not be negative")
	}
	switch c.HistoryDriver {
	case HistoryNone, "":
	case HistoryPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres history driver")
		}
	case HistorySupabase:
		if !c.SupabaseConfigured() {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_PUBLISHABLE_KEY are required for the supabase history driver")
		}
	case HistorySQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite history driver")
		}
	default:
		return fmt.Errorf("unknown HISTORY_DRIVER %q", c.HistoryDriver)
	}
	return nil
}

// SupabaseConfigured reports whether storage and REST access are available.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
