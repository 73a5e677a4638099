package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Remote data gateway configuration
	Gateway GatewayConfig

	// View-state configuration
	State StateConfig

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

// GatewayConfig holds remote service settings
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
	Limits  LimitsConfig
}

// LimitsConfig holds the fixed per-resource fetch limits
type LimitsConfig struct {
	Users    int
	Products int
	Carts    int
	Posts    int
}

// StateConfig holds view-state settings
type StateConfig struct {
	// RefreshMinVisible keeps the refresh flag raised at least this long so
	// the presentation layer's spinner does not flicker on fast rounds.
	RefreshMinVisible time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Gateway: GatewayConfig{
			BaseURL: getEnv("GATEWAY_BASE_URL", "https://dummyjson.com"),
			Timeout: getDurationEnv("GATEWAY_TIMEOUT", 10*time.Second),
			Limits: LimitsConfig{
				Users:    getIntEnv("GATEWAY_USERS_LIMIT", 6),
				Products: getIntEnv("GATEWAY_PRODUCTS_LIMIT", 6),
				Carts:    getIntEnv("GATEWAY_CARTS_LIMIT", 5),
				Posts:    getIntEnv("GATEWAY_POSTS_LIMIT", 4),
			},
		},
		State: StateConfig{
			RefreshMinVisible: getDurationEnv("REFRESH_MIN_VISIBLE", 600*time.Millisecond),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("GATEWAY_BASE_URL is required")
	}
	if c.Gateway.Limits.Users <= 0 || c.Gateway.Limits.Products <= 0 ||
		c.Gateway.Limits.Carts <= 0 || c.Gateway.Limits.Posts <= 0 {
		return fmt.Errorf("gateway fetch limits must be positive")
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
