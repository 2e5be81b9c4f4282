// Copyright (c) 2026 Calyna. All rights reserved.
// Author: olena.koval.care@gmail.com

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
  - DI-Friendly: Passed to core components (store, relay) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Relay credentials are deliberately NOT marked required: a missing key keeps
the content API serving and surfaces as RELAY_MISCONFIGURED only when a
contact submission actually arrives.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Calyna API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// ContentDir is the root of the on-disk document store
	// (expects pages/, posts/ and settings/ subdirectories).
	ContentDir string `env:"CONTENT_DIR" envDefault:"./content"`

	// Contact relay (Resend transactional email)
	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactTo    string `env:"CONTACT_TO"`
	ContactFrom  string `env:"CONTACT_FROM" envDefault:"Website Contact <onboarding@resend.dev>"`

	// Optional bot-check verification (Cloudflare Turnstile)
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
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

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS list as a slice.
func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.ExtraOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.ExtraOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
