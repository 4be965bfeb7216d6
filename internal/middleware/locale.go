// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"

	"github.com/olegiv/divecms-go/internal/locale"
)

// LocaleConfig names the request inputs the locale is read from.
type LocaleConfig struct {
	Header     string
	QueryParam string
}

// DefaultLocaleConfig returns the X-Locale header and lang query parameter.
func DefaultLocaleConfig() LocaleConfig {
	return LocaleConfig{
		Header:     locale.DefaultHeader,
		QueryParam: locale.DefaultQueryParam,
	}
}

// Locale resolves the content locale of every request and stores it in the
// request context. Priority order:
// 1. Locale header (X-Locale by default)
// 2. Query parameter (?lang=XX by default)
// 3. The resolver's default locale
//
// Unsupported values resolve to the default; the request is never rejected.
// The resolved code is echoed in Content-Language.
func Locale(resolver *locale.Resolver, cfg LocaleConfig) func(http.Handler) http.Handler {
	if cfg.Header == "" {
		cfg.Header = locale.DefaultHeader
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = locale.DefaultQueryParam
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := resolver.Resolve(r.Header.Get(cfg.Header), r.URL.Query().Get(cfg.QueryParam))

			w.Header().Set("Content-Language", code)
			w.Header().Add("Vary", cfg.Header)

			ctx := locale.WithLocale(r.Context(), code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
