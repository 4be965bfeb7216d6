// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/divecms-go/internal/locale"
)

// TranslationsSuffix is appended to a field name to form its locale map key.
const TranslationsSuffix = "_translations"

// Translator layers locale-aware reads and writes over Store for any Entity.
type Translator struct {
	db            *sql.DB // nil when bound to an outer transaction
	store         *Store
	registry      *Registry
	defaultLocale string
	logger        *slog.Logger
}

// NewTranslator creates a translator backed by db.
func NewTranslator(db *sql.DB, registry *Registry, defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{
		db:            db,
		store:         NewStore(db),
		registry:      registry,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// WithTx returns a translator whose writes join tx.
func (t *Translator) WithTx(tx *sql.Tx) *Translator {
	c := *t
	c.db = nil
	c.store = t.store.WithTx(tx)
	return &c
}

// Store exposes the underlying translation store.
func (t *Translator) Store() *Store {
	return t.store
}

// Registry returns the field registry.
func (t *Translator) Registry() *Registry {
	return t.registry
}

// DefaultLocale returns the locale whose values live on entity rows.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// ActiveLocale returns the request locale carried by ctx, or the default.
func (t *Translator) ActiveLocale(ctx context.Context) string {
	if code, ok := locale.FromContext(ctx); ok {
		return code
	}
	return t.defaultLocale
}

// GetTranslation returns the value of field in loc (the active locale when
// loc is empty), falling back to the native value when nothing usable is stored.
func (t *Translator) GetTranslation(ctx context.Context, e Entity, field, loc string) (*string, error) {
	loc = normalizeLocale(loc)
	if loc == "" {
		loc = t.ActiveLocale(ctx)
	}
	if loc == t.defaultLocale {
		return e.NativeValue(field), nil
	}

	value, found, err := t.store.Get(ctx, OwnerOf(e), loc, field)
	if err != nil {
		return nil, err
	}
	if !found || value == nil {
		return e.NativeValue(field), nil
	}
	return value, nil
}

// SetTranslation stores value for field in loc. Locale codes are stored in
// lower case. Writes under the default locale are dropped: the entity row is
// the only source for that locale.
func (t *Translator) SetTranslation(ctx context.Context, e Entity, field, loc string, value *string) error {
	owner := OwnerOf(e)
	if owner.ID == 0 {
		return ErrNoOwner
	}
	if !t.registry.IsTranslatable(owner.Type, field) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, owner.Type, field)
	}
	loc = normalizeLocale(loc)
	if loc == "" {
		t.logger.Debug("ignoring translation write without locale",
			"owner", owner.String(), "field", field)
		return nil
	}
	if loc == t.defaultLocale {
		t.logger.Debug("ignoring default-locale translation write",
			"owner", owner.String(), "field", field, "locale", loc)
		return nil
	}
	return t.store.Upsert(ctx, owner, loc, field, value)
}

// GetTranslations returns all stored locales of field plus the native value
// under the default locale key.
func (t *Translator) GetTranslations(ctx context.Context, e Entity, field string) (map[string]*string, error) {
	stored, err := t.store.AllForField(ctx, OwnerOf(e), field)
	if err != nil {
		return nil, err
	}
	stored[t.defaultLocale] = e.NativeValue(field)
	return stored, nil
}

// SaveTranslations writes every field/locale pair of p in one transaction.
// A translator bound with WithTx joins the caller's transaction instead.
func (t *Translator) SaveTranslations(ctx context.Context, e Entity, p Payload) error {
	if len(p) == 0 {
		return nil
	}
	if OwnerOf(e).ID == 0 {
		return ErrNoOwner
	}
	if t.db == nil {
		return t.saveTranslations(ctx, e, p)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := t.WithTx(tx).saveTranslations(ctx, e, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing translations: %w", err)
	}
	return nil
}

func (t *Translator) saveTranslations(ctx context.Context, e Entity, p Payload) error {
	for _, field := range p.Fields() {
		for _, loc := range p.Locales(field) {
			if err := t.SetTranslation(ctx, e, field, loc, p[field][loc]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteTranslations removes every stored translation of e.
func (t *Translator) DeleteTranslations(ctx context.Context, e Entity) error {
	owner := OwnerOf(e)
	n, err := t.store.DeleteAll(ctx, owner)
	if err != nil {
		return err
	}
	if n > 0 {
		t.logger.Debug("deleted translations", "owner", owner.String(), "rows", n)
	}
	return nil
}

// Attribute reads field the way a plain accessor would under the active
// locale: the native value for the default locale, otherwise the translation
// with native fallback.
func (t *Translator) Attribute(ctx context.Context, e Entity, field string) (*string, error) {
	return t.GetTranslation(ctx, e, field, t.ActiveLocale(ctx))
}

// Serialize returns e.Attributes() with every translatable field substituted
// for the active locale and a <field>_translations map per field.
func (t *Translator) Serialize(ctx context.Context, e Entity) (map[string]any, error) {
	attrs := e.Attributes()
	fields := t.registry.Fields(e.OwnerType())
	if len(fields) == 0 {
		return attrs, nil
	}

	stored, err := t.store.AllForOwner(ctx, OwnerOf(e))
	if err != nil {
		return nil, err
	}

	active := t.ActiveLocale(ctx)
	for _, field := range fields {
		native := e.NativeValue(field)
		all := make(map[string]*string, len(stored[field])+1)
		for loc, v := range stored[field] {
			if loc != t.defaultLocale {
				all[loc] = v
			}
		}
		all[t.defaultLocale] = native

		value := native
		if active != t.defaultLocale {
			if v, ok := all[active]; ok && v != nil {
				value = v
			}
		}

		attrs[field] = value
		attrs[field+TranslationsSuffix] = all
	}
	return attrs, nil
}

// SerializeAll serializes a list of entities in order.
func SerializeAll[E Entity](ctx context.Context, t *Translator, items []E) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, err := t.Serialize(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// normalizeLocale lower-cases a locale code so client keys such as "AR" match
// the codes the resolver produces.
func normalizeLocale(loc string) string {
	return strings.ToLower(strings.TrimSpace(loc))
}
