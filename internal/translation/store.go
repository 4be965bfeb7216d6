// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/divecms-go/internal/store"
)

// Store is the keyed (owner, locale, field) -> value table.
// Every call is a single round trip; nothing is cached.
type Store struct {
	queries *store.Queries
}

// NewStore creates a store on top of db (a *sql.DB or *sql.Tx).
func NewStore(db store.DBTX) *Store {
	return &Store{queries: store.New(db)}
}

// WithTx returns a store that runs inside tx.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{queries: s.queries.WithTx(tx)}
}

// Upsert inserts the value or overwrites the existing row for the same key.
// A nil value is stored as NULL.
func (s *Store) Upsert(ctx context.Context, owner Owner, locale, field string, value *string) error {
	now := time.Now()
	err := s.queries.UpsertTranslation(ctx, store.UpsertTranslationParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		Locale:    locale,
		Field:     field,
		Value:     nullString(value),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("upserting translation %s %s/%s: %w", owner, locale, field, err)
	}
	return nil
}

// Get looks up one value. found is false when no row exists; a found row
// with a nil value was stored as NULL.
func (s *Store) Get(ctx context.Context, owner Owner, locale, field string) (value *string, found bool, err error) {
	row, err := s.queries.GetTranslation(ctx, store.GetTranslationParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		Locale:    locale,
		Field:     field,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting translation %s %s/%s: %w", owner, locale, field, err)
	}
	return stringPtr(row.Value), true, nil
}

// AllForField returns every stored locale of one field.
func (s *Store) AllForField(ctx context.Context, owner Owner, field string) (map[string]*string, error) {
	rows, err := s.queries.ListTranslationsForField(ctx, store.ListTranslationsForFieldParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		Field:     field,
	})
	if err != nil {
		return nil, fmt.Errorf("listing translations %s/%s: %w", owner, field, err)
	}

	out := make(map[string]*string, len(rows))
	for _, row := range rows {
		out[row.Locale] = stringPtr(row.Value)
	}
	return out, nil
}

// AllForOwner returns every stored value of owner keyed by field, then locale.
func (s *Store) AllForOwner(ctx context.Context, owner Owner) (map[string]map[string]*string, error) {
	rows, err := s.queries.ListTranslationsForOwner(ctx, store.ListTranslationsForOwnerParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing translations %s: %w", owner, err)
	}

	out := make(map[string]map[string]*string)
	for _, row := range rows {
		if out[row.Field] == nil {
			out[row.Field] = make(map[string]*string)
		}
		out[row.Field][row.Locale] = stringPtr(row.Value)
	}
	return out, nil
}

// DeleteAll removes every translation of owner and reports how many rows went.
func (s *Store) DeleteAll(ctx context.Context, owner Owner) (int64, error) {
	n, err := s.queries.DeleteTranslationsForOwner(ctx, store.DeleteTranslationsForOwnerParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("deleting translations %s: %w", owner, err)
	}
	return n, nil
}

// count returns the number of stored rows for owner.
func (s *Store) count(ctx context.Context, owner Owner) (int64, error) {
	n, err := s.queries.CountTranslationsForOwner(ctx, store.ListTranslationsForOwnerParams{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("counting translations %s: %w", owner, err)
	}
	return n, nil
}

// PruneOrphans deletes rows of ownerType whose owner row no longer exists.
func (s *Store) PruneOrphans(ctx context.Context, ownerType string) (int64, error) {
	n, err := s.queries.DeleteOrphanedTranslations(ctx, ownerType)
	if err != nil {
		return 0, fmt.Errorf("pruning %s translations: %w", ownerType, err)
	}
	return n, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
