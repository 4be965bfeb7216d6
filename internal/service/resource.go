// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the business logic for every content kind: CRUD on
// the entity row plus its translations, kept consistent in one transaction.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/divecms-go/internal/store"
	"github.com/olegiv/divecms-go/internal/translation"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = fmt.Errorf("not found: %w", sql.ErrNoRows)

// Params is the native field set submitted for an entity.
type Params interface {
	Validate() error
}

// ops binds a Resource to the queries of one table.
type ops[E translation.Entity, P Params] struct {
	get    func(ctx context.Context, q *store.Queries, id int64) (E, error)
	list   func(ctx context.Context, q *store.Queries, limit, offset int64) ([]E, error)
	count  func(ctx context.Context, q *store.Queries) (int64, error)
	create func(ctx context.Context, q *store.Queries, p P, now time.Time) (E, error)
	update func(ctx context.Context, q *store.Queries, id int64, p P, now time.Time) (E, error)
	remove func(ctx context.Context, q *store.Queries, id int64) (int64, error)

	// paramsOf returns the params that would recreate e.
	paramsOf func(e E) P

	// defaults returns the params a create starts from. Optional.
	defaults func() P

	// prepare normalizes params before validation. id is 0 on create.
	prepare func(ctx context.Context, q *store.Queries, id int64, p *P) error
}

// Resource implements List/Get/Create/Update/Delete for one entity kind.
type Resource[E translation.Entity, P Params] struct {
	kind       string
	db         *sql.DB
	queries    *store.Queries
	translator *translation.Translator
	logger     *slog.Logger
	ops        ops[E, P]
}

func newResource[E translation.Entity, P Params](kind string, db *sql.DB, tr *translation.Translator, logger *slog.Logger, o ops[E, P]) *Resource[E, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource[E, P]{
		kind:       kind,
		db:         db,
		queries:    store.New(db),
		translator: tr,
		logger:     logger.With("kind", kind),
		ops:        o,
	}
}

// Kind returns the owner type handled by r.
func (r *Resource[E, P]) Kind() string {
	return r.kind
}

// Translator returns the translator used to serialize entities of this kind.
func (r *Resource[E, P]) Translator() *translation.Translator {
	return r.translator
}

// ParamsOf returns the params describing the current state of e.
func (r *Resource[E, P]) ParamsOf(e E) P {
	return r.ops.paramsOf(e)
}

// NewParams returns the initial params for a create, with column defaults applied.
func (r *Resource[E, P]) NewParams() P {
	if r.ops.defaults == nil {
		var p P
		return p
	}
	return r.ops.defaults()
}

// List returns one page of entities and the total count.
func (r *Resource[E, P]) List(ctx context.Context, limit, offset int64) ([]E, int64, error) {
	items, err := r.ops.list(ctx, r.queries, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", r.kind, err)
	}
	total, err := r.ops.count(ctx, r.queries)
	if err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", r.kind, err)
	}
	return items, total, nil
}

// Get returns the entity with the given id.
func (r *Resource[E, P]) Get(ctx context.Context, id int64) (E, error) {
	e, err := r.ops.get(ctx, r.queries, id)
	if err != nil {
		return e, r.wrap("getting", id, err)
	}
	return e, nil
}

// Create validates p, inserts the entity and saves the translation payload
// atomically.
func (r *Resource[E, P]) Create(ctx context.Context, p P, payload translation.Payload) (E, error) {
	var created E
	err := r.inTx(ctx, func(q *store.Queries, tr *translation.Translator) error {
		if err := r.check(ctx, q, 0, &p); err != nil {
			return err
		}
		e, err := r.ops.create(ctx, q, p, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("creating %s: %w", r.kind, err)
		}
		if err := tr.SaveTranslations(ctx, e, r.sanitize(payload)); err != nil {
			return fmt.Errorf("saving %s translations: %w", r.kind, err)
		}
		created = e
		return nil
	})
	if err != nil {
		return created, err
	}

	r.logger.InfoContext(ctx, "entity created", "id", created.OwnerID(), "translated_fields", len(payload))
	return created, nil
}

// Update replaces the native fields of entity id with p and merges the
// translation payload atomically. Locales absent from the payload keep their rows.
func (r *Resource[E, P]) Update(ctx context.Context, id int64, p P, payload translation.Payload) (E, error) {
	var updated E
	err := r.inTx(ctx, func(q *store.Queries, tr *translation.Translator) error {
		if err := r.check(ctx, q, id, &p); err != nil {
			return err
		}
		e, err := r.ops.update(ctx, q, id, p, time.Now().UTC())
		if err != nil {
			return r.wrap("updating", id, err)
		}
		if err := tr.SaveTranslations(ctx, e, r.sanitize(payload)); err != nil {
			return fmt.Errorf("saving %s translations: %w", r.kind, err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return updated, err
	}

	r.logger.InfoContext(ctx, "entity updated", "id", id, "translated_fields", len(payload))
	return updated, nil
}

// Delete removes entity id together with all of its translations and returns
// the deleted entity so callers can release attached files.
func (r *Resource[E, P]) Delete(ctx context.Context, id int64) (E, error) {
	var deleted E
	err := r.inTx(ctx, func(q *store.Queries, tr *translation.Translator) error {
		e, err := r.ops.get(ctx, q, id)
		if err != nil {
			return r.wrap("deleting", id, err)
		}
		n, err := r.ops.remove(ctx, q, id)
		if err != nil {
			return fmt.Errorf("deleting %s %d: %w", r.kind, id, err)
		}
		if n == 0 {
			return r.wrap("deleting", id, sql.ErrNoRows)
		}
		if err := tr.DeleteTranslations(ctx, e); err != nil {
			return fmt.Errorf("deleting %s translations: %w", r.kind, err)
		}
		deleted = e
		return nil
	})
	if err != nil {
		return deleted, err
	}

	r.logger.InfoContext(ctx, "entity deleted", "id", id)
	return deleted, nil
}

func (r *Resource[E, P]) check(ctx context.Context, q *store.Queries, id int64, p *P) error {
	if r.ops.prepare != nil {
		if err := r.ops.prepare(ctx, q, id, p); err != nil {
			return err
		}
	}
	return (*p).Validate()
}

// sanitize cleans rich-text values in a copy of payload.
func (r *Resource[E, P]) sanitize(payload translation.Payload) translation.Payload {
	fields := richTextFields(r.kind)
	if len(fields) == 0 || len(payload) == 0 {
		return payload
	}
	out := make(translation.Payload, len(payload))
	for field, values := range payload {
		cp := make(map[string]*string, len(values))
		for loc, v := range values {
			cp[loc] = v
		}
		out[field] = cp
	}
	for _, field := range fields {
		out.Map(field, SanitizeHTML)
	}
	return out
}

// inTx runs fn with queries and a translator bound to one transaction.
func (r *Resource[E, P]) inTx(ctx context.Context, fn func(q *store.Queries, tr *translation.Translator) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(r.queries.WithTx(tx), r.translator.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", r.kind, err)
	}
	return nil
}

func (r *Resource[E, P]) wrap(action string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s %d: %w", action, r.kind, id, ErrNotFound)
	}
	return fmt.Errorf("%s %s %d: %w", action, r.kind, id, err)
}

func (r *Resource[E, P]) wrapSlug(slug string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("getting %s %q: %w", r.kind, slug, ErrNotFound)
	}
	return fmt.Errorf("getting %s %q: %w", r.kind, slug, err)
}
