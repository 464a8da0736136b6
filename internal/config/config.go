package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath        string // Local cache database
	IndexPath     string // Device media index, opened read-only
	APIPort       string
	LogLevel      slog.Level
	LogFormat     string
	LogFile       string // Empty logs to stderr only
	WatchIndex    bool
	WatchDebounce time.Duration
	FFprobePath   string // Empty disables video probing
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		DBPath:      getEnv("DB_PATH", DefaultDBPath()),
		IndexPath:   getEnv("INDEX_PATH", ""),
		APIPort:     getEnv("API_PORT", "9000"),
		LogFormat:   getEnv("LOG_FORMAT", LogFormatText),
		LogFile:     getEnv("LOG_FILE", ""),
		FFprobePath: "ffprobe",
	}
	// Set but empty disables probing.
	if v, ok := os.LookupEnv("FFPROBE_PATH"); ok {
		cfg.FFprobePath = v
	}

	if cfg.IndexPath == "" {
		return nil, fmt.Errorf("INDEX_PATH is required")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, cfg.LogFormat)
	}

	watch, err := strconv.ParseBool(getEnv("WATCH_INDEX", "false"))
	if err != nil {
		return nil, fmt.Errorf("WATCH_INDEX must be a boolean: %w", err)
	}
	cfg.WatchIndex = watch

	debounce, err := time.ParseDuration(getEnv("WATCH_DEBOUNCE", "2s"))
	if err != nil {
		return nil, fmt.Errorf("WATCH_DEBOUNCE must be a duration: %w", err)
	}
	if debounce <= 0 {
		return nil, fmt.Errorf("WATCH_DEBOUNCE must be greater than 0")
	}
	cfg.WatchDebounce = debounce

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// DefaultDBPath is the cache location under the XDG data directory.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, "photosync", "cache.db")
}

// loadDotEnv loads the nearest .env file, searching up to five parents.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
