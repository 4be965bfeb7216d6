// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
)

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS.
	IsDevelopment bool

	// HSTSMaxAge is the max-age for Strict-Transport-Security in seconds. 0 disables it.
	HSTSMaxAge int

	// ContentSecurityPolicy applies to JSON responses and uploaded images alike.
	ContentSecurityPolicy string
}

// DefaultSecurityHeadersConfig returns headers suited to a JSON API that also
// serves uploaded images.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	return SecurityHeadersConfig{
		IsDevelopment:         isDev,
		HSTSMaxAge:            31536000, // 1 year
		ContentSecurityPolicy: "default-src 'none'; img-src 'self'; frame-ancestors 'none'",
	}
}

// SecurityHeaders returns a middleware that adds security headers to responses.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	hsts := ""
	if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
		hsts = "max-age=" + strconv.Itoa(cfg.HSTSMaxAge) + "; includeSubDomains"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if hsts != "" {
				h.Set("Strict-Transport-Security", hsts)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")

			next.ServeHTTP(w, r)
		})
	}
}
