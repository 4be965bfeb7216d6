// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package translation stores per-locale overrides for fields of any entity
// and resolves them against the active request locale.
package translation

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoOwner is returned when writing translations for an entity that has not been persisted.
	ErrNoOwner = errors.New("translation: entity has no id")
	// ErrUnknownField is returned when a field is not declared translatable for the entity kind.
	ErrUnknownField = errors.New("translation: field is not translatable")
)

// Owner identifies the row a translation belongs to.
type Owner struct {
	Type string
	ID   int64
}

func (o Owner) String() string {
	return fmt.Sprintf("%s#%d", o.Type, o.ID)
}

// Entity is implemented by every translatable record.
type Entity interface {
	OwnerType() string
	OwnerID() int64
	// NativeValue returns the default-locale value stored on the row itself.
	NativeValue(field string) *string
	// Attributes returns the plain field map used for serialization.
	Attributes() map[string]any
}

// OwnerOf returns the owner reference of e.
func OwnerOf(e Entity) Owner {
	return Owner{Type: e.OwnerType(), ID: e.OwnerID()}
}

// Registry is the static table of translatable fields per entity kind.
type Registry struct {
	fields map[string][]string
}

// NewRegistry copies decl into a new registry.
func NewRegistry(decl map[string][]string) *Registry {
	r := &Registry{fields: make(map[string][]string, len(decl))}
	for kind, fields := range decl {
		r.fields[kind] = append([]string(nil), fields...)
	}
	return r
}

// Fields returns the translatable fields of kind in declaration order.
func (r *Registry) Fields(kind string) []string {
	return r.fields[kind]
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.fields))
	for kind := range r.fields {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// IsTranslatable reports whether field is declared for kind.
func (r *Registry) IsTranslatable(kind, field string) bool {
	for _, f := range r.fields[kind] {
		if f == field {
			return true
		}
	}
	return false
}
