package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Supabase
	SupabaseURL           string `yaml:"supabase_url"`
	SupabaseServiceKey    string `yaml:"supabase_service_key"`
	SupabaseJWTSecret     string `yaml:"supabase_jwt_secret"`
	SupabaseArchiveBucket string `yaml:"supabase_archive_bucket"`

	// Database
	DatabaseURL string `yaml:"database_url"`

	// Server
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	BaseURL     string `yaml:"base_url"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Workflow
	NotifyTimeout  time.Duration `yaml:"notify_timeout"`
	ClientFeedDays int           `yaml:"client_feed_days"`
}

func defaults() *Config {
	return &Config{
		SupabaseArchiveBucket: "contract-archives",
		Port:                  "8080",
		Environment:           "development",
		BaseURL:               "http://localhost:8080",
		LogLevel:              "info",
		LogFormat:             "json",
		NotifyTimeout:         5 * time.Second,
		ClientFeedDays:        30,
	}
}

// Load reads .env (if any), then the YAML file at path (if it exists), then
// lets environment variables override both. An empty path falls back to
// CONFIG_FILE or config.yaml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if path == "" {
		path = getEnv("CONFIG_FILE", "config.yaml")
	}

	cfg := defaults()
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.SupabaseURL = getEnv("SUPABASE_URL", cfg.SupabaseURL)
	cfg.SupabaseServiceKey = getEnv("SUPABASE_SERVICE_KEY", cfg.SupabaseServiceKey)
	cfg.SupabaseJWTSecret = getEnv("SUPABASE_JWT_SECRET", cfg.SupabaseJWTSecret)
	cfg.SupabaseArchiveBucket = getEnv("SUPABASE_ARCHIVE_BUCKET", cfg.SupabaseArchiveBucket)

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("NOTIFY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NOTIFY_TIMEOUT: %w", err)
		}
		cfg.NotifyTimeout = d
	}
	if v := os.Getenv("CLIENT_FEED_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CLIENT_FEED_DAYS: %w", err)
		}
		cfg.ClientFeedDays = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be positive")
	}
	if c.ClientFeedDays <= 0 {
		return fmt.Errorf("CLIENT_FEED_DAYS must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// ClientFeedWindow is how far back the client notification feed looks.
func (c *Config) ClientFeedWindow() time.Duration {
	return time.Duration(c.ClientFeedDays) * 24 * time.Hour
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
