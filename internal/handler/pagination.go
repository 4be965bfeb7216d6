// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
)

// List paging defaults.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination is a parsed page request.
type Pagination struct {
	Page    int
	PerPage int
}

// Limit returns the SQL LIMIT for p.
func (p Pagination) Limit() int64 {
	return int64(p.PerPage)
}

// Offset returns the SQL OFFSET for p.
func (p Pagination) Offset() int64 {
	return int64((p.Page - 1) * p.PerPage)
}

// TotalPages returns the page count for total items at p.PerPage.
func (p Pagination) TotalPages(total int64) int {
	return CalculateTotalPages(int(total), p.PerPage)
}

// ParsePagination reads page and per_page from the query string.
func ParsePagination(r *http.Request) Pagination {
	return Pagination{
		Page:    ParsePageParam(r),
		PerPage: ParsePerPageParam(r, DefaultPerPage, MaxPerPage),
	}
}

// CalculateTotalPages calculates the number of pages for the given total items and items per page.
func CalculateTotalPages(totalItems, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	return totalPages
}

// ParsePageParam parses the "page" query parameter from the request.
// Returns 1 if the parameter is missing, empty, or invalid.
func ParsePageParam(r *http.Request) int {
	return ParseIntParam(r, "page", 1, 1, 0)
}

// ParsePerPageParam parses the "per_page" query parameter from the request.
// Missing or invalid values give defaultPerPage; values above maxPerPage are
// capped at maxPerPage.
func ParsePerPageParam(r *http.Request, defaultPerPage, maxPerPage int) int {
	perPage := ParseIntParam(r, "per_page", defaultPerPage, 1, 0)
	if maxPerPage > 0 && perPage > maxPerPage {
		return maxPerPage
	}
	return perPage
}

// ParseIntParam parses an integer query parameter from the request.
// Returns defaultVal if the parameter is missing, empty, or invalid.
// If minVal > 0, values below minVal return defaultVal.
// If maxVal > 0, values above maxVal return defaultVal.
func ParseIntParam(r *http.Request, param string, defaultVal, minVal, maxVal int) int {
	str := r.URL.Query().Get(param)
	if str == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	if minVal > 0 && val < minVal {
		return defaultVal
	}
	if maxVal > 0 && val > maxVal {
		return defaultVal
	}
	return val
}
