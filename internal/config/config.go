// Package config handles loading and validating marketplace connection
// configuration from YAML files with environment variable substitution.
// It backs the markko CLI and the dev tools; SDK consumers construct
// markko.Config directly.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/markkohq/markko-go/pkg/markko"
)

// Config is the top-level tool configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// APIConfig defines the marketplace connection and client identity.
type APIConfig struct {
	BasePath               string `yaml:"base_path"`
	Origin                 string `yaml:"origin"`
	Version                string `yaml:"version"`
	ClientCredentialKey    string `yaml:"client_credential_key"`
	ClientCredentialSecret string `yaml:"client_credential_secret"`
	PasswordKey            string `yaml:"password_key"`
	PasswordSecret         string `yaml:"password_secret"`
	IsDevelopment          bool   `yaml:"is_development"`
	CacheExternalRefresh   bool   `yaml:"cache_external_refresh"`
}

// RateLimitConfig defines outbound API call limits.
type RateLimitConfig struct {
	Enabled    bool    `yaml:"enabled"`
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// SDKConfig converts the loaded API section into a markko.Config.
func (c *Config) SDKConfig() markko.Config {
	return markko.Config{
		Version:                c.API.Version,
		Origin:                 c.API.Origin,
		APIBasePath:            c.API.BasePath,
		ClientCredentialKey:    c.API.ClientCredentialKey,
		ClientCredentialSecret: c.API.ClientCredentialSecret,
		PasswordKey:            c.API.PasswordKey,
		PasswordSecret:         c.API.PasswordSecret,
		IsDevelopment:          c.API.IsDevelopment,
		CacheExternalRefresh:   c.API.CacheExternalRefresh,
	}
}

// Load reads and parses a YAML config file, performing environment
// variable substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content so secrets can
	// stay out of the file itself.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.RateLimit.PerSecond == 0 {
		cfg.RateLimit.PerSecond = 5.0
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.RateLimit.DailyLimit == 0 {
		cfg.RateLimit.DailyLimit = 5000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.API.BasePath == "" {
		errs = append(errs, fmt.Errorf("api.base_path is required"))
	}
	if cfg.API.ClientCredentialKey == "" {
		errs = append(errs, fmt.Errorf("api.client_credential_key is required"))
	}
	if cfg.API.ClientCredentialSecret == "" {
		errs = append(errs, fmt.Errorf("api.client_credential_secret is required"))
	}

	return errors.Join(errs...)
}
