package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port                 string
	JWTSecret            string
	JWTExpirationMinutes int64
	LogLevel             string
}

// NewConfig loads application configuration from environment variables.
// JWT_SECRET has no default; tokens signed with a guessable key are worthless.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	expMinutes, err := strconv.ParseInt(getEnv("JWT_EXPIRATION_MINUTES", "10"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}
	cfg.JWTExpirationMinutes = expMinutes

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
