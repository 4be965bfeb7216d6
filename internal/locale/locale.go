// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package locale resolves the active content locale of a request and carries
// it through context.Context.
package locale

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Defaults used when configuration does not override them.
const (
	DefaultLocale     = "en"
	DefaultHeader     = "X-Locale"
	DefaultQueryParam = "lang"
)

type contextKey struct{}

// Resolver picks the active locale from request inputs against a fixed allow-list.
type Resolver struct {
	defaultLocale string
	supported     []string
	allowed       map[string]struct{}
}

// NewResolver creates a resolver. The default locale is always allowed.
func NewResolver(defaultLocale string, supported []string) *Resolver {
	defaultLocale = strings.ToLower(strings.TrimSpace(defaultLocale))
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	r := &Resolver{
		defaultLocale: defaultLocale,
		allowed:       make(map[string]struct{}, len(supported)+1),
	}
	r.add(defaultLocale)
	for _, code := range supported {
		r.add(strings.ToLower(strings.TrimSpace(code)))
	}
	return r
}

func (r *Resolver) add(code string) {
	if code == "" {
		return
	}
	if _, ok := r.allowed[code]; ok {
		return
	}
	r.allowed[code] = struct{}{}
	r.supported = append(r.supported, code)
}

// Default returns the locale whose values live on the entity rows.
func (r *Resolver) Default() string {
	return r.defaultLocale
}

// Supported returns the allow-list, default first.
func (r *Resolver) Supported() []string {
	out := make([]string, len(r.supported))
	copy(out, r.supported)
	return out
}

// IsSupported reports whether code is on the allow-list.
func (r *Resolver) IsSupported(code string) bool {
	_, ok := r.allowed[code]
	return ok
}

// Normalize maps a client supplied tag ("AR", "ar-EG") to an allowed code.
func (r *Resolver) Normalize(candidate string) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", false
	}
	if code := strings.ToLower(candidate); r.IsSupported(code) {
		return code, true
	}

	tag, err := language.Parse(candidate)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := base.String()
	if !r.IsSupported(code) {
		return "", false
	}
	return code, true
}

// Resolve returns the active locale: header first, then query, then default.
// The first present candidate is the only one considered; an unsupported
// value falls back to the default rather than to the next input.
func (r *Resolver) Resolve(header, query string) string {
	candidate := strings.TrimSpace(header)
	if candidate == "" {
		candidate = strings.TrimSpace(query)
	}
	if candidate == "" {
		return r.defaultLocale
	}
	if code, ok := r.Normalize(candidate); ok {
		return code
	}
	return r.defaultLocale
}

// WithLocale returns a copy of ctx carrying the active locale.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, contextKey{}, code)
}

// FromContext returns the active locale stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(contextKey{}).(string)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
