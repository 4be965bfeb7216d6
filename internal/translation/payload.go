// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Payload maps field -> locale -> value. A nil value stores NULL.
type Payload map[string]map[string]*string

// Fields returns the payload fields, sorted.
func (p Payload) Fields() []string {
	fields := make([]string, 0, len(p))
	for field := range p {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Locales returns the locales submitted for field, sorted.
func (p Payload) Locales(field string) []string {
	locales := make([]string, 0, len(p[field]))
	for loc := range p[field] {
		locales = append(locales, loc)
	}
	sort.Strings(locales)
	return locales
}

// Map rewrites every non-nil value of field with fn.
func (p Payload) Map(field string, fn func(string) string) {
	for loc, v := range p[field] {
		if v == nil {
			continue
		}
		s := fn(*v)
		p[field][loc] = &s
	}
}

// ExtractPayload collects <field>_translations entries for the declared fields
// from a decoded request body. Each entry may be a JSON object of locale ->
// string or a JSON string holding such an object (multipart forms). Absent
// keys are left out, meaning "no change". Entries that do not decode are
// skipped and returned in malformed.
func ExtractPayload(raw map[string]json.RawMessage, fields []string) (p Payload, malformed []string) {
	p = make(Payload)
	for _, field := range fields {
		key := field + TranslationsSuffix
		msg, ok := raw[key]
		if !ok {
			continue
		}
		values, ok := decodeLocaleMap(msg)
		if !ok {
			malformed = append(malformed, key)
			continue
		}
		if values == nil {
			continue
		}
		p[field] = values
	}
	return p, malformed
}

// decodeLocaleMap returns (nil, true) for JSON null or an empty string, which
// leave translations untouched.
func decodeLocaleMap(msg json.RawMessage) (map[string]*string, bool) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || bytes.Equal(msg, []byte("null")) {
		return nil, true
	}

	if msg[0] == '"' {
		var encoded string
		if err := json.Unmarshal(msg, &encoded); err != nil {
			return nil, false
		}
		inner := bytes.TrimSpace([]byte(encoded))
		if len(inner) == 0 {
			return nil, true
		}
		if inner[0] != '{' {
			return nil, false
		}
		msg = inner
	}

	if msg[0] != '{' {
		return nil, false
	}

	var values map[string]*string
	if err := json.Unmarshal(msg, &values); err != nil {
		return nil, false
	}
	return values, true
}
