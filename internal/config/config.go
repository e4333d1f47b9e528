// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package config defines the service configuration and its layered
// loading: struct defaults, optional YAML file, environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the insights service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StoreConfig holds data store settings.
type StoreConfig struct {
	// Path is the Pebble database directory.
	Path string `koanf:"path"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds analytics pipeline tuning parameters.
type RecommendConfig struct {
	// Trees is the number of trees in the demand forecast ensemble.
	Trees int `koanf:"trees"`

	// Seed drives all randomness in model training so that repeated
	// runs over the same data produce identical output.
	Seed int64 `koanf:"seed"`

	// TestFraction is the share of fused rows held out from training.
	TestFraction float64 `koanf:"test_fraction"`

	// DefaultDemandScore substitutes for products without a market
	// demand signal.
	DefaultDemandScore float64 `koanf:"default_demand_score"`

	// MinSupport is the minimum fraction of transactions a product
	// pair must appear in to qualify as a bundle.
	MinSupport float64 `koanf:"min_support"`

	// MinConfidence is the minimum directional confidence for a bundle.
	MinConfidence float64 `koanf:"min_confidence"`

	// BundleDiscount is the suggested discount applied to bundle prices.
	BundleDiscount float64 `koanf:"bundle_discount"`
}

// Validate checks the configuration for values that would break the
// service at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if c.Recommend.Trees < 1 {
		return fmt.Errorf("recommend.trees must be at least 1, got %d", c.Recommend.Trees)
	}
	if c.Recommend.TestFraction <= 0 || c.Recommend.TestFraction >= 1 {
		return fmt.Errorf("recommend.test_fraction must be in (0, 1), got %v", c.Recommend.TestFraction)
	}
	if c.Recommend.MinSupport < 0 || c.Recommend.MinSupport > 1 {
		return fmt.Errorf("recommend.min_support must be in [0, 1], got %v", c.Recommend.MinSupport)
	}
	if c.Recommend.MinConfidence < 0 || c.Recommend.MinConfidence > 1 {
		return fmt.Errorf("recommend.min_confidence must be in [0, 1], got %v", c.Recommend.MinConfidence)
	}
	if c.Recommend.BundleDiscount < 0 || c.Recommend.BundleDiscount >= 1 {
		return fmt.Errorf("recommend.bundle_discount must be in [0, 1), got %v", c.Recommend.BundleDiscount)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitRequests < 1 {
		return fmt.Errorf("security.rate_limit_requests must be at least 1, got %d", c.Security.RateLimitRequests)
	}
	return nil
}
