// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
	"golang.org/x/text/language"
)

// PruneOff disables the orphan translation janitor.
const PruneOff = "off"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"DCMS_DB_PATH" envDefault:"./data/divecms.db"`
	ServerHost string `env:"DCMS_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"DCMS_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"DCMS_ENV" envDefault:"development"`
	LogLevel   string `env:"DCMS_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"DCMS_UPLOADS_DIR" envDefault:"./uploads"`

	// Locale configuration
	DefaultLocale    string   `env:"DCMS_DEFAULT_LOCALE" envDefault:"en"`
	SupportedLocales []string `env:"DCMS_SUPPORTED_LOCALES" envDefault:"en,ar" envSeparator:","`
	LocaleHeader     string   `env:"DCMS_LOCALE_HEADER" envDefault:"X-Locale"`
	LocaleQueryParam string   `env:"DCMS_LOCALE_QUERY_PARAM" envDefault:"lang"`

	// Write rate limiting, per client IP
	RateLimit float64 `env:"DCMS_RATE_LIMIT" envDefault:"5"`  // requests per second
	RateBurst int     `env:"DCMS_RATE_BURST" envDefault:"20"` // burst size

	// Cron expression for the orphan translation janitor; "off" disables it
	PruneSchedule string `env:"DCMS_PRUNE_SCHEDULE" envDefault:"0 3 * * *"`

	// Seeding configuration
	DoSeed bool `env:"DCMS_DO_SEED" envDefault:"false"` // Enable demo data seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// PruneEnabled returns true if the orphan janitor should be scheduled.
func (c Config) PruneEnabled() bool {
	return c.PruneSchedule != "" && c.PruneSchedule != PruneOff
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.normalizeLocales(); err != nil {
		return nil, err
	}

	if cfg.LocaleHeader == "" || cfg.LocaleQueryParam == "" {
		return nil, fmt.Errorf("DCMS_LOCALE_HEADER and DCMS_LOCALE_QUERY_PARAM must not be empty")
	}

	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return nil, fmt.Errorf("DCMS_RATE_LIMIT and DCMS_RATE_BURST must be positive")
	}

	if cfg.PruneEnabled() {
		if _, err := cron.ParseStandard(cfg.PruneSchedule); err != nil {
			return nil, fmt.Errorf("invalid DCMS_PRUNE_SCHEDULE %q: %w", cfg.PruneSchedule, err)
		}
	}

	return cfg, nil
}

// normalizeLocales lowercases and validates locale codes and ensures the
// default locale is among the supported ones.
func (c *Config) normalizeLocales() error {
	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("invalid DCMS_DEFAULT_LOCALE %q: %w", c.DefaultLocale, err)
	}

	supported := make([]string, 0, len(c.SupportedLocales))
	for _, code := range c.SupportedLocales {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || slices.Contains(supported, code) {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("invalid locale %q in DCMS_SUPPORTED_LOCALES: %w", code, err)
		}
		supported = append(supported, code)
	}

	if !slices.Contains(supported, c.DefaultLocale) {
		return fmt.Errorf("DCMS_DEFAULT_LOCALE %q is not in DCMS_SUPPORTED_LOCALES %v", c.DefaultLocale, supported)
	}

	c.SupportedLocales = supported
	return nil
}
