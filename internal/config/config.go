package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Session store configuration
	Session SessionConfig

	// Catalog configuration
	Catalog CatalogConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// SessionConfig holds session persistence and mock-auth settings
type SessionConfig struct {
	// StorePath is the directory for the local key-value store holding the
	// session record.
	StorePath string

	// InMemoryStore disables disk persistence; used by tests.
	InMemoryStore bool

	// MockLatency is the artificial delay applied to login/register calls,
	// standing in for a real upstream authentication service.
	MockLatency time.Duration
}

// CatalogConfig holds article listing settings
type CatalogConfig struct {
	RecentLimit   int
	RelatedLimit  int
	PerGroupLimit int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			StorePath:     getEnv("SESSION_STORE_PATH", "./data/session"),
			InMemoryStore: getBoolEnv("SESSION_STORE_IN_MEMORY", false),
			MockLatency:   getDurationEnv("AUTH_MOCK_LATENCY", 0),
		},
		Catalog: CatalogConfig{
			RecentLimit:   getIntEnv("CATALOG_RECENT_LIMIT", 6),
			RelatedLimit:  getIntEnv("CATALOG_RELATED_LIMIT", 3),
			PerGroupLimit: getIntEnv("CATALOG_PER_GROUP_LIMIT", 4),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Session.InMemoryStore && c.Session.StorePath == "" {
		return fmt.Errorf("SESSION_STORE_PATH is required")
	}
	if c.Catalog.RecentLimit <= 0 || c.Catalog.RelatedLimit <= 0 || c.Catalog.PerGroupLimit <= 0 {
		return fmt.Errorf("catalog limits must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
