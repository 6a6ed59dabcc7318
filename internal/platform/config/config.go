// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

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
  - DI-Friendly: Passed to core components (DB, Redis, notifiers) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// defaultOrigins are the deployed admin dashboard and public site.
var defaultOrigins = []string{
	"https://admin.abhishek.org.in",
	"https://abhishek.org.in",
}

// # Configuration Schema

// Config holds all runtime configuration for the portfolio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis) for the public mirror response cache
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret signs and verifies HS256 bearer tokens.
	JWTSecret string `env:"JWT_SECRET,required"`

	// DefaultAdminID is the owning identity for public contact submissions.
	// The system is single-tenant: exactly one admin identity is assumed.
	DefaultAdminID string `env:"DEFAULT_ADMIN_ID,required"`

	// Outbound email (contact notifications)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	AdminEmail   string `env:"ADMIN_EMAIL"`

	// WhatsApp notifications (Twilio messaging API)
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM"`
	AdminWhatsAppTo    string `env:"ADMIN_WHATSAPP_TO"`

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

// AllowedOrigins returns the browser origins permitted by CORS in production.
//
// The deployed frontends are always allowed; EXTRA_ORIGINS adds
// comma-separated entries (staging previews, local tunnels).
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(defaultOrigins)+2)
	origins = append(origins, defaultOrigins...)

	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(extra); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// EmailEnabled reports whether outbound email notifications are configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.AdminEmail != ""
}

// WhatsAppEnabled reports whether WhatsApp notifications are configured.
func (c *Config) WhatsAppEnabled() bool {
	return c.TwilioAccountSID != "" && c.AdminWhatsAppTo != ""
}
