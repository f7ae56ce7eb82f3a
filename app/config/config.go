package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the account service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseURL      string
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Kratos
	KratosPublicURL string
	KratosAdminURL  string

	// Session bootstrap
	IdentityCheckTimeout time.Duration
	BootstrapRetryDelay  time.Duration

	// Auth actions
	ActionTimeout time.Duration

	// Profile resolver
	ProfileRetryAttempts int
	ProfileRetryDelay    time.Duration

	// Tier gate
	TierTablePath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "account-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "account_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "account_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Bootstrap configuration
	var err error
	config.IdentityCheckTimeout, err = getDurationEnv("IDENTITY_CHECK_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	config.BootstrapRetryDelay, err = getDurationEnv("BOOTSTRAP_RETRY_DELAY", 5*time.Second)
	if err != nil {
		return nil, err
	}

	config.ActionTimeout, err = getDurationEnv("ACTION_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// Profile resolver configuration
	retriesStr := getEnvOrDefault("PROFILE_RETRY_ATTEMPTS", "2")
	retries, err := strconv.Atoi(retriesStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_RETRY_ATTEMPTS: %w", err)
	}
	config.ProfileRetryAttempts = retries

	config.ProfileRetryDelay, err = getDurationEnv("PROFILE_RETRY_DELAY", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	// Tier table override (optional)
	config.TierTablePath = os.Getenv("TIER_TABLE_PATH")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.IdentityCheckTimeout < time.Second {
		return fmt.Errorf("identity check timeout must be at least 1 second, got: %v", c.IdentityCheckTimeout)
	}

	if c.BootstrapRetryDelay <= 0 {
		return fmt.Errorf("bootstrap retry delay must be positive, got: %v", c.BootstrapRetryDelay)
	}

	if c.ActionTimeout <= 0 {
		return fmt.Errorf("action timeout must be positive, got: %v", c.ActionTimeout)
	}

	if c.ProfileRetryAttempts < 0 {
		return fmt.Errorf("profile retry attempts cannot be negative, got: %d", c.ProfileRetryAttempts)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
