package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Prefix is prepended to every environment variable read by LoadFrom
const Prefix = "HBSUBST_"

// Config holds all configuration for hbsubst
type Config struct {
	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadFrom loads configuration from environment, typically the parsed
// process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: Prefix, Environment: environment}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("%sLOG_LEVEL must be one of: debug, info, warn, error", Prefix)
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%sLOG_FORMAT must be one of: console, json", Prefix)
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{LogLevel=%s, LogFormat=%s}", c.LogLevel, c.LogFormat)
}
