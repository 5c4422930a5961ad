// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultPort = 8080

// Config represents the server configuration. Values come from the
// environment; missing values use defaults.
type Config struct {
	Port int
}

// Load reads configuration from the environment. PORT overrides the
// default listen port.
func Load() (*Config, error) {
	cfg := &Config{Port: defaultPort}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}
