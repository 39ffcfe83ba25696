package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/motionhq/motion/api/internal/database"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Backend   BackendConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DatabaseConfig selects the store driver and holds each driver's settings
type DatabaseConfig struct {
	Driver   string
	URL      string // Postgres DSN, also used by migrations
	Supabase SupabaseConfig
	Surreal  SurrealConfig
}

// SupabaseConfig holds PostgREST settings
type SupabaseConfig struct {
	URL    string
	APIKey string
}

// SurrealConfig holds SurrealDB connection settings
type SurrealConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// BackendConfig holds the AI/places backend settings
type BackendConfig struct {
	URL             string
	Timeout         time.Duration
	MonitorSchedule string // empty disables the monitor
}

// RedisConfig holds the optional idempotency store URL
type RedisConfig struct {
	URL string
}

// RateLimitConfig holds per-client rate limit settings
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// envFiles are loaded in order; earlier files win because godotenv never
// overrides a variable that is already set.
var envFiles = []string{".env.local", ".env"}

// LoadEnvFiles reads optional dotenv files into the process environment
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads dotenv files and then the environment, applying defaults
func Load() (*Config, error) {
	if err := LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from the current environment only
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Env:             getEnv("SERVER_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			AllowedOrigins:  allowedOrigins(),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", string(database.DriverSupabase)),
			URL:    getEnv("DATABASE_URL", ""),
			Supabase: SupabaseConfig{
				URL:    firstEnv("SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"),
				APIKey: firstEnv("SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"),
			},
			Surreal: SurrealConfig{
				Host:      getEnv("SURREAL_HOST", "localhost"),
				Port:      getEnv("SURREAL_PORT", "8000"),
				Namespace: getEnv("SURREAL_NAMESPACE", "motion"),
				Database:  getEnv("SURREAL_DATABASE", "main"),
				User:      getEnv("SURREAL_USER", "root"),
				Password:  getEnv("SURREAL_PASSWORD", "root"),
			},
		},
		Backend: BackendConfig{
			URL:             strings.TrimRight(getEnv("BACKEND_URL", getEnv("NEXT_PUBLIC_API_URL", "http://localhost:3001")), "/"),
			Timeout:         getDurationEnv("BACKEND_TIMEOUT", 60*time.Second),
			MonitorSchedule: lookupEnv("BACKEND_MONITOR_SCHEDULE", "@every 1m"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("RATE_LIMIT_RPS", 10),
			Burst: getIntEnv("RATE_LIMIT_BURST", 40),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// allowedOrigins merges CORS_ALLOWED_ORIGINS with the public site URL
func allowedOrigins() []string {
	origins := getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	if site := os.Getenv("NEXT_PUBLIC_SITE_URL"); site != "" {
		origins = appendUnique(origins, strings.TrimRight(site, "/"))
	}
	if host := os.Getenv("VERCEL_URL"); host != "" {
		origins = appendUnique(origins, "https://"+strings.TrimPrefix(host, "https://"))
	}
	return origins
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Driver returns the parsed store driver
func (c *Config) Driver() (database.Driver, error) {
	return database.ParseDriver(c.Database.Driver)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Store validation depends on the selected driver
	driver, err := c.Driver()
	if err != nil {
		errs = append(errs, fmt.Errorf("DB_DRIVER: %w", err))
	}
	switch driver {
	case database.DriverSupabase:
		if err := c.Database.Supabase.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("Supabase: %w", err))
		}
	case database.DriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DB_DRIVER is postgres"))
		}
	case database.DriverSurrealDB:
		if err := c.Database.Surreal.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("SurrealDB: %w", err))
		}
	}

	// Backend validation
	if u, err := url.Parse(c.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL must be an absolute URL, got '%s'", c.Backend.URL))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT must be positive"))
	}
	if c.Backend.MonitorSchedule != "" {
		if _, err := cron.ParseStandard(c.Backend.MonitorSchedule); err != nil {
			errs = append(errs, fmt.Errorf("BACKEND_MONITOR_SCHEDULE is invalid: %w", err))
		}
	}

	// Rate limit validation
	if c.RateLimit.RPS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive"))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that the Supabase URL and key are present
func (s SupabaseConfig) Validate() error {
	var missing []string
	if s.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if s.APIKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate checks that the SurrealDB connection fields are present
func (s SurrealConfig) Validate() error {
	var missing []string
	if s.Host == "" {
		missing = append(missing, "SURREAL_HOST")
	}
	if s.Port == "" {
		missing = append(missing, "SURREAL_PORT")
	}
	if s.Namespace == "" {
		missing = append(missing, "SURREAL_NAMESPACE")
	}
	if s.Database == "" {
		missing = append(missing, "SURREAL_DATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv distinguishes an explicitly empty variable from an unset one
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// firstEnv returns the first non-empty variable among keys
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if value := os.Getenv(k); value != "" {
			return value
		}
	}
	return ""
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
