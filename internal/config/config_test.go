// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/divecms.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/divecms.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q, want %q", cfg.DefaultLocale, "en")
	}
	if !reflect.DeepEqual(cfg.SupportedLocales, []string{"en", "ar"}) {
		t.Errorf("SupportedLocales = %v, want [en ar]", cfg.SupportedLocales)
	}
	if cfg.LocaleHeader != "X-Locale" {
		t.Errorf("LocaleHeader = %q, want %q", cfg.LocaleHeader, "X-Locale")
	}
	if cfg.LocaleQueryParam != "lang" {
		t.Errorf("LocaleQueryParam = %q, want %q", cfg.LocaleQueryParam, "lang")
	}
	if cfg.PruneSchedule != "0 3 * * *" || !cfg.PruneEnabled() {
		t.Errorf("PruneSchedule = %q, want enabled default", cfg.PruneSchedule)
	}
	if cfg.DoSeed {
		t.Error("DoSeed should default to false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "DCMS_DB_PATH", "/custom/path.db")
	setEnv(t, "DCMS_SERVER_HOST", "0.0.0.0")
	setEnv(t, "DCMS_SERVER_PORT", "3000")
	setEnv(t, "DCMS_ENV", "production")
	setEnv(t, "DCMS_LOG_LEVEL", "debug")
	setEnv(t, "DCMS_DEFAULT_LOCALE", "AR")
	setEnv(t, "DCMS_SUPPORTED_LOCALES", "ar, en ,fr,ar")
	setEnv(t, "DCMS_PRUNE_SCHEDULE", PruneOff)
	setEnv(t, "DCMS_DO_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/custom/path.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/custom/path.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() should be false in production")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.DefaultLocale != "ar" {
		t.Errorf("DefaultLocale = %q, want %q", cfg.DefaultLocale, "ar")
	}
	if !reflect.DeepEqual(cfg.SupportedLocales, []string{"ar", "en", "fr"}) {
		t.Errorf("SupportedLocales = %v, want [ar en fr]", cfg.SupportedLocales)
	}
	if cfg.PruneEnabled() {
		t.Error("PruneEnabled() should be false when switched off")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed should be true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "default not supported",
			env:     map[string]string{"DCMS_DEFAULT_LOCALE": "fr"},
			wantMsg: "not in DCMS_SUPPORTED_LOCALES",
		},
		{
			name:    "garbage locale",
			env:     map[string]string{"DCMS_SUPPORTED_LOCALES": "en,not a locale"},
			wantMsg: "invalid locale",
		},
		{
			name:    "bad cron",
			env:     map[string]string{"DCMS_PRUNE_SCHEDULE": "every day"},
			wantMsg: "DCMS_PRUNE_SCHEDULE",
		},
		{
			name:    "bad port",
			env:     map[string]string{"DCMS_SERVER_PORT": "http"},
			wantMsg: "parsing config",
		},
		{
			name:    "zero rate",
			env:     map[string]string{"DCMS_RATE_LIMIT": "0"},
			wantMsg: "DCMS_RATE_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				setEnv(t, k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}
