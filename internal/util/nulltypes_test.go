// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullInt64FromPtr(t *testing.T) {
	tests := []struct {
		name     string
		input    *int64
		expected sql.NullInt64
	}{
		{name: "nil pointer", input: nil, expected: sql.NullInt64{}},
		{name: "positive value", input: ptr(int64(42)), expected: sql.NullInt64{Int64: 42, Valid: true}},
		{name: "zero value", input: ptr(int64(0)), expected: sql.NullInt64{Int64: 0, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NullInt64FromPtr(tt.input)
			if result != tt.expected {
				t.Errorf("NullInt64FromPtr() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNullStringFromPtr(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected sql.NullString
	}{
		{name: "nil pointer", input: nil, expected: sql.NullString{}},
		{name: "value", input: ptr("reef"), expected: sql.NullString{String: "reef", Valid: true}},
		{name: "empty string stays valid", input: ptr(""), expected: sql.NullString{String: "", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NullStringFromPtr(tt.input)
			if result != tt.expected {
				t.Errorf("NullStringFromPtr() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPtrFromNullString(t *testing.T) {
	if got := PtrFromNullString(sql.NullString{}); got != nil {
		t.Errorf("PtrFromNullString(NULL) = %q, want nil", *got)
	}

	got := PtrFromNullString(sql.NullString{String: "", Valid: true})
	if got == nil || *got != "" {
		t.Errorf("PtrFromNullString(empty) = %v, want pointer to empty string", got)
	}
}

func TestPtrFromNullInt64(t *testing.T) {
	if got := PtrFromNullInt64(sql.NullInt64{}); got != nil {
		t.Errorf("PtrFromNullInt64(NULL) = %d, want nil", *got)
	}
	if got := PtrFromNullInt64(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Errorf("PtrFromNullInt64(3) = %v, want 3", got)
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	nt := NullTimeFromPtr(&now)
	if !nt.Valid || !nt.Time.Equal(now) {
		t.Errorf("NullTimeFromPtr() = %v, want %v", nt, now)
	}
	if NullTimeFromPtr(nil).Valid {
		t.Error("NullTimeFromPtr(nil) should be invalid")
	}

	back := PtrFromNullTime(nt)
	if back == nil || !back.Equal(now) {
		t.Errorf("PtrFromNullTime() = %v, want %v", back, now)
	}
	if PtrFromNullTime(sql.NullTime{}) != nil {
		t.Error("PtrFromNullTime(NULL) should be nil")
	}
}

func ptr[T any](v T) *T {
	return &v
}
