// pkg/config/env_config_test.go
package config

import (
	"os"
	"testing"
	"time"
)

var trydentEnvVars = []string{
	"TRYDENT_ASSET_DIR",
	"TRYDENT_IMAGE_CACHE_CAPACITY",
	"TRYDENT_CB_MAX_REQUESTS",
	"TRYDENT_CB_INTERVAL",
	"TRYDENT_CB_TIMEOUT",
	"TRYDENT_CB_MAX_CONSECUTIVE_FAILS",
}

func clearTrydentEnv(t *testing.T) {
	t.Helper()
	for _, key := range trydentEnvVars {
		original := os.Getenv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if original != "" {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadEnvironmentConfig_Defaults(t *testing.T) {
	clearTrydentEnv(t)

	cfg, err := LoadEnvironmentConfig()
	if err != nil {
		t.Fatalf("LoadEnvironmentConfig() error = %v", err)
	}

	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, "assets")
	}
	if cfg.ImageCacheCapacity != 64 {
		t.Errorf("ImageCacheCapacity = %d, want 64", cfg.ImageCacheCapacity)
	}
	if cfg.CircuitBreakerMaxRequests != 3 {
		t.Errorf("CircuitBreakerMaxRequests = %d, want 3", cfg.CircuitBreakerMaxRequests)
	}
	if cfg.CircuitBreakerInterval != 60*time.Second {
		t.Errorf("CircuitBreakerInterval = %v, want 60s", cfg.CircuitBreakerInterval)
	}
	if cfg.CircuitBreakerTimeout != 30*time.Second {
		t.Errorf("CircuitBreakerTimeout = %v, want 30s", cfg.CircuitBreakerTimeout)
	}
	if cfg.CircuitBreakerMaxConsecutiveFails != 5 {
		t.Errorf("CircuitBreakerMaxConsecutiveFails = %d, want 5", cfg.CircuitBreakerMaxConsecutiveFails)
	}
}

func TestLoadEnvironmentConfig_Overrides(t *testing.T) {
	clearTrydentEnv(t)
	os.Setenv("TRYDENT_ASSET_DIR", "/var/sprites")
	os.Setenv("TRYDENT_IMAGE_CACHE_CAPACITY", "8")
	os.Setenv("TRYDENT_CB_TIMEOUT", "5s")

	cfg, err := LoadEnvironmentConfig()
	if err != nil {
		t.Fatalf("LoadEnvironmentConfig() error = %v", err)
	}

	if cfg.AssetDir != "/var/sprites" {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, "/var/sprites")
	}
	if cfg.ImageCacheCapacity != 8 {
		t.Errorf("ImageCacheCapacity = %d, want 8", cfg.ImageCacheCapacity)
	}
	if cfg.CircuitBreakerTimeout != 5*time.Second {
		t.Errorf("CircuitBreakerTimeout = %v, want 5s", cfg.CircuitBreakerTimeout)
	}
}

func TestLoadEnvironmentConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non_numeric_capacity", key: "TRYDENT_IMAGE_CACHE_CAPACITY", value: "lots"},
		{name: "zero_capacity", key: "TRYDENT_IMAGE_CACHE_CAPACITY", value: "0"},
		{name: "bad_duration", key: "TRYDENT_CB_INTERVAL", value: "soon"},
		{name: "negative_max_requests", key: "TRYDENT_CB_MAX_REQUESTS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTrydentEnv(t)
			os.Setenv(tt.key, tt.value)

			if _, err := LoadEnvironmentConfig(); err == nil {
				t.Errorf("LoadEnvironmentConfig() with %s=%s succeeded, want error", tt.key, tt.value)
			}
		})
	}
}

func TestEnvironmentConfig_Validate(t *testing.T) {
	valid := func() *EnvironmentConfig {
		return &EnvironmentConfig{
			AssetDir:                          "assets",
			ImageCacheCapacity:                64,
			CircuitBreakerMaxRequests:         3,
			CircuitBreakerInterval:            time.Minute,
			CircuitBreakerTimeout:             30 * time.Second,
			CircuitBreakerMaxConsecutiveFails: 5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*EnvironmentConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *EnvironmentConfig) {}, wantErr: false},
		{name: "empty_asset_dir", mutate: func(c *EnvironmentConfig) { c.AssetDir = "" }, wantErr: true},
		{name: "zero_capacity", mutate: func(c *EnvironmentConfig) { c.ImageCacheCapacity = 0 }, wantErr: true},
		{name: "zero_interval", mutate: func(c *EnvironmentConfig) { c.CircuitBreakerInterval = 0 }, wantErr: true},
		{name: "zero_timeout", mutate: func(c *EnvironmentConfig) { c.CircuitBreakerTimeout = 0 }, wantErr: true},
		{name: "zero_max_fails", mutate: func(c *EnvironmentConfig) { c.CircuitBreakerMaxConsecutiveFails = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
