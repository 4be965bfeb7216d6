// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST API handlers for the dive center content.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/olegiv/divecms-go/internal/handler"
	"github.com/olegiv/divecms-go/internal/imaging"
	"github.com/olegiv/divecms-go/internal/locale"
	"github.com/olegiv/divecms-go/internal/service"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	services *service.Services
	resolver *locale.Resolver
	images   *imaging.Processor
	logger   *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(services *service.Services, resolver *locale.Resolver, images *imaging.Processor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		services: services,
		resolver: resolver,
		images:   images,
		logger:   logger,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// writeServiceError maps service errors onto API responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, entityName string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		WriteValidationError(w, validationDetails(verrs))
	case errors.Is(err, service.ErrNotFound):
		WriteNotFound(w, capitalizeFirst(entityName)+" not found")
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "entity", entityName, "error", err)
		WriteInternalError(w, "Failed to process "+entityName)
	}
}

func validationDetails(verrs validation.Errors) map[string]string {
	details := make(map[string]string, len(verrs))
	for field, err := range verrs {
		details[field] = err.Error()
	}
	return details
}

// capitalizeFirst returns s with the first letter capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	DefaultLocale string   `json:"default_locale"`
	Locales       []string `json:"locales"`
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:        "ok",
		Version:       "v1",
		DefaultLocale: h.resolver.Default(),
		Locales:       h.resolver.Supported(),
	}, nil)
}

// LocalesResponse lists the supported locales and the one active for the request.
type LocalesResponse struct {
	Active  string        `json:"active"`
	Default string        `json:"default"`
	Locales []locale.Info `json:"locales"`
}

// Locales handles GET /api/v1/locales.
func (h *Handler) Locales(w http.ResponseWriter, r *http.Request) {
	active, ok := locale.FromContext(r.Context())
	if !ok {
		active = h.resolver.Default()
	}
	WriteSuccess(w, LocalesResponse{
		Active:  active,
		Default: h.resolver.Default(),
		Locales: h.resolver.Describe(),
	}, nil)
}

// requireID parses the {id} path parameter, writing a 400 on failure.
func requireID(w http.ResponseWriter, r *http.Request, entityName string) (int64, bool) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return 0, false
	}
	return id, true
}
