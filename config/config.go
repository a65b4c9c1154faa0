package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	Port          string
	JWTSecret     string
	JWTExpiration int

	// Store Configuration
	StoreBackend  string // sqlite, redis or memory
	DatabaseURL   string
	RedisURL      string
	RedisPassword string

	// Sale behaviour: decrement product stock when a sale is recorded
	StockDecrementOnSale bool

	// Rate Limiting Configuration
	RateLimitRequests int
	RateLimitWindow   int

	// CORS Configuration
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration: getEnvAsInt("JWT_EXPIRATION", 24*60*60), // 24 hours in seconds

		StoreBackend:  getEnv("STORE_BACKEND", "sqlite"),
		DatabaseURL:   getEnv("DATABASE_URL", "dukatrack.db"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		StockDecrementOnSale: getEnvAsBool("STOCK_DECREMENT_ON_SALE", true),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 1000),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		AllowedOrigins:  getEnvAsStringSlice("ALLOWED_ORIGINS", []string{}),
		AllowAllOrigins: getEnvAsBool("ALLOW_ALL_ORIGINS", true), // Default to true for development
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validBackends := map[string]bool{
		"sqlite": true,
		"redis":  true,
		"memory": true,
	}
	if !validBackends[c.StoreBackend] {
		return fmt.Errorf("invalid store backend: %s", c.StoreBackend)
	}

	if c.StoreBackend == "sqlite" && c.DatabaseURL == "" {
		return fmt.Errorf("database URL is required for the sqlite backend")
	}
	if c.StoreBackend == "redis" && c.RedisURL == "" {
		return fmt.Errorf("redis URL is required for the redis backend")
	}
	return nil
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %s, StoreBackend: %s}", c.Environment, c.Port, c.StoreBackend)
}
