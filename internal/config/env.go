// Package config reads strata's environment configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults of the strata commands. Command-line
// flags override every field.
type Config struct {
	Strategy       string `env:"STRATA_STRATEGY"`
	Table          string `env:"STRATA_TABLE"`
	Strict         bool   `env:"STRATA_STRICT"`
	TableCacheSize int    `env:"STRATA_TABLE_CACHE_SIZE" envDefault:"64"`
	Verbose        bool   `env:"STRATA_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TableCacheSize < 0 {
		return Config{}, fmt.Errorf("parse env: STRATA_TABLE_CACHE_SIZE must not be negative (got %d)", cfg.TableCacheSize)
	}
	return cfg, nil
}
