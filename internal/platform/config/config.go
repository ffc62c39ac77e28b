// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Catalog) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Bookdex API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL) — favorites persistence
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis) — optional catalog response cache.
	// Leave empty to run without caching.
	RedisURL string `env:"REDIS_URL"`

	// Remote book catalog
	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://api.itbook.store/1.0"`
	CatalogRPS     int           `env:"CATALOG_RPS"      envDefault:"5"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT"  envDefault:"15s"`
	CacheTTL       time.Duration `env:"CACHE_TTL"        envDefault:"10m"`

	// Browse sessions
	SearchQuietPeriod time.Duration `env:"SEARCH_QUIET_PERIOD" envDefault:"300ms"`
	SessionTTL        time.Duration `env:"SESSION_TTL"         envDefault:"30m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CachingEnabled reports whether a Redis cache should be wired in front of
// the catalog gateway.
func (c *Config) CachingEnabled() bool {
	return c.RedisURL != ""
}

// AllowedOrigin reports whether the given Origin header value may receive
// CORS headers in production.
func (c *Config) AllowedOrigin(origin string) bool {
	if strings.HasSuffix(origin, "bookdex.app") {
		return true
	}

	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if extra != "" && origin == strings.TrimSpace(extra) {
			return true
		}
	}
	return false
}
