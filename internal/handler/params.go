// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP helpers shared by the API handlers, and the
// health endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Route pattern constants for chi router registration.
const (
	RouteRoot      = "/"
	RouteParamID   = "/{id}"
	RouteSlugParam = "/slug/{slug}"
)

// ErrInvalidID is returned when a path id is missing or not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseIDParam parses the {id} URL parameter as a positive int64.
func ParseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
