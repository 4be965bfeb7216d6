// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides the application slog setup and a handler that
// stamps request-scoped attributes onto every record.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/divecms-go/internal/locale"
)

// ContextHandler is a slog.Handler that wraps another handler and adds the
// chi request id and the resolved request locale when the context carries them.
type ContextHandler struct {
	inner slog.Handler
}

// NewContextHandler wraps inner.
func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

// Enabled implements slog.Handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if id := chimw.GetReqID(ctx); id != "" {
			r.AddAttrs(slog.String("request_id", id))
		}
		if code, ok := locale.FromContext(ctx); ok {
			r.AddAttrs(slog.String("locale", code))
		}
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}

// ParseLevel maps a config value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the application logger: text output in development, JSON otherwise.
func New(w io.Writer, level string, development bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var inner slog.Handler
	if development {
		inner = slog.NewTextHandler(w, opts)
	} else {
		inner = slog.NewJSONHandler(w, opts)
	}
	return slog.New(NewContextHandler(inner))
}
