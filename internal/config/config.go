// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all server settings.
type Config struct {
	// Server
	Port string `json:"port"`

	// Database
	DatabasePath    string        `json:"database_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Code recycling: a code holder stays "active" while
	// current_year - angkatan <= ActiveWindowYears.
	ActiveWindowYears int `json:"active_window_years"`

	// Imports
	ImportRateLimitPerSec int   `json:"import_rate_limit_per_sec"`
	MaxUploadBytes        int64 `json:"max_upload_bytes"`

	// Logging
	LogLevel string `json:"log_level"`
}

// LoadConfig builds the configuration from environment variables with
// sensible defaults, then validates it.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port: getEnv("SERVER_PORT", "8088"),

		DatabasePath:    getEnv("DATABASE_PATH", "aspraks.db"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		ActiveWindowYears: getEnvInt("ACTIVE_WINDOW_YEARS", 6),

		ImportRateLimitPerSec: getEnvInt("IMPORT_RATE_LIMIT_PER_SEC", 2),
		MaxUploadBytes:        int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks value ranges. An empty LogLevel is allowed and falls
// back to the default at use sites.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.ActiveWindowYears < 0 {
		return fmt.Errorf("active window years must not be negative")
	}
	if c.ImportRateLimitPerSec < 1 {
		return fmt.Errorf("import rate limit must be at least 1")
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("max upload bytes must be positive")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// getEnv returns an environment variable or the default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as int or the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration returns an environment variable as Duration or the default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
