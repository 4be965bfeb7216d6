// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"time"
)

// NullInt64FromPtr converts a pointer to int64 into sql.NullInt64.
func NullInt64FromPtr(ptr *int64) sql.NullInt64 {
	if ptr != nil {
		return sql.NullInt64{Int64: *ptr, Valid: true}
	}
	return sql.NullInt64{}
}

// NullStringFromPtr converts a pointer to string into sql.NullString.
// An empty string stays a valid (non-NULL) value.
func NullStringFromPtr(ptr *string) sql.NullString {
	if ptr != nil {
		return sql.NullString{String: *ptr, Valid: true}
	}
	return sql.NullString{}
}

// NullTimeFromPtr converts a pointer to time.Time into sql.NullTime.
func NullTimeFromPtr(ptr *time.Time) sql.NullTime {
	if ptr != nil {
		return sql.NullTime{Time: *ptr, Valid: true}
	}
	return sql.NullTime{}
}

// PtrFromNullString returns nil for NULL, otherwise a pointer to a copy of the value.
func PtrFromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// PtrFromNullInt64 returns nil for NULL, otherwise a pointer to a copy of the value.
func PtrFromNullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// PtrFromNullTime returns nil for NULL, otherwise a pointer to a copy of the value.
func PtrFromNullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
