// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"hrprep/pkg/model"
)

// Config represents the application configuration
type Config struct {
	// Input dataset
	InputPath   string
	NullMarkers []string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		// Default values
		InputPath:   getEnv("INPUT_PATH", ""),
		NullMarkers: getEnvAsList("NULL_MARKERS", model.DefaultNullMarkers),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.New("log format must be json or console")
	}

	if len(c.NullMarkers) == 0 {
		return errors.New("at least one null marker is required")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
