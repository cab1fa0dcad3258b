// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig holds the externally tunable settings for the asset and
// cache layers, loaded from TRYDENT_* environment variables with defaults.
type EnvironmentConfig struct {
	// AssetDir is the base directory image names are resolved against.
	AssetDir string

	// ImageCacheCapacity is the maximum number of decoded images kept in
	// the cache before usage-based eviction starts.
	ImageCacheCapacity int

	// Circuit breaker tuning for disk loads.
	CircuitBreakerMaxRequests         int
	CircuitBreakerInterval            time.Duration
	CircuitBreakerTimeout             time.Duration
	CircuitBreakerMaxConsecutiveFails int
}

// LoadEnvironmentConfig loads configuration from environment variables,
// applying defaults for anything unset.
func LoadEnvironmentConfig() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		AssetDir:                          getEnvString("TRYDENT_ASSET_DIR", "assets"),
		CircuitBreakerInterval:            60 * time.Second,
		CircuitBreakerTimeout:             30 * time.Second,
		CircuitBreakerMaxRequests:         3,
		CircuitBreakerMaxConsecutiveFails: 5,
	}

	var err error
	if cfg.ImageCacheCapacity, err = getEnvInt("TRYDENT_IMAGE_CACHE_CAPACITY", 64); err != nil {
		return nil, err
	}
	if cfg.CircuitBreakerMaxRequests, err = getEnvInt("TRYDENT_CB_MAX_REQUESTS", cfg.CircuitBreakerMaxRequests); err != nil {
		return nil, err
	}
	if cfg.CircuitBreakerInterval, err = getEnvDuration("TRYDENT_CB_INTERVAL", cfg.CircuitBreakerInterval); err != nil {
		return nil, err
	}
	if cfg.CircuitBreakerTimeout, err = getEnvDuration("TRYDENT_CB_TIMEOUT", cfg.CircuitBreakerTimeout); err != nil {
		return nil, err
	}
	if cfg.CircuitBreakerMaxConsecutiveFails, err = getEnvInt("TRYDENT_CB_MAX_CONSECUTIVE_FAILS", cfg.CircuitBreakerMaxConsecutiveFails); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *EnvironmentConfig) Validate() error {
	if c.AssetDir == "" {
		return fmt.Errorf("asset directory cannot be empty")
	}
	if c.ImageCacheCapacity <= 0 {
		return fmt.Errorf("image cache capacity must be positive, got %d", c.ImageCacheCapacity)
	}
	if c.CircuitBreakerMaxRequests <= 0 {
		return fmt.Errorf("circuit breaker max requests must be positive, got %d", c.CircuitBreakerMaxRequests)
	}
	if c.CircuitBreakerInterval <= 0 {
		return fmt.Errorf("circuit breaker interval must be positive, got %v", c.CircuitBreakerInterval)
	}
	if c.CircuitBreakerTimeout <= 0 {
		return fmt.Errorf("circuit breaker timeout must be positive, got %v", c.CircuitBreakerTimeout)
	}
	if c.CircuitBreakerMaxConsecutiveFails <= 0 {
		return fmt.Errorf("circuit breaker max consecutive fails must be positive, got %d", c.CircuitBreakerMaxConsecutiveFails)
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}
