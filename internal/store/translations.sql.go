// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegiv/divecms-go/internal/model"
)

const upsertTranslation = `-- name: UpsertTranslation :exec
INSERT INTO translations (owner_type, owner_id, locale, field, value, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (owner_type, owner_id, locale, field)
DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

type UpsertTranslationParams struct {
	OwnerType string         `json:"owner_type"`
	OwnerID   int64          `json:"owner_id"`
	Locale    string         `json:"locale"`
	Field     string         `json:"field"`
	Value     sql.NullString `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (q *Queries) UpsertTranslation(ctx context.Context, arg UpsertTranslationParams) error {
	_, err := q.db.ExecContext(ctx, upsertTranslation,
		arg.OwnerType,
		arg.OwnerID,
		arg.Locale,
		arg.Field,
		arg.Value,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getTranslation = `-- name: GetTranslation :one
SELECT id, owner_type, owner_id, locale, field, value, created_at, updated_at FROM translations
WHERE owner_type = ? AND owner_id = ? AND locale = ? AND field = ?
`

type GetTranslationParams struct {
	OwnerType string `json:"owner_type"`
	OwnerID   int64  `json:"owner_id"`
	Locale    string `json:"locale"`
	Field     string `json:"field"`
}

func (q *Queries) GetTranslation(ctx context.Context, arg GetTranslationParams) (Translation, error) {
	row := q.db.QueryRowContext(ctx, getTranslation,
		arg.OwnerType,
		arg.OwnerID,
		arg.Locale,
		arg.Field,
	)
	var i Translation
	err := row.Scan(
		&i.ID,
		&i.OwnerType,
		&i.OwnerID,
		&i.Locale,
		&i.Field,
		&i.Value,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTranslationsForField = `-- name: ListTranslationsForField :many
SELECT id, owner_type, owner_id, locale, field, value, created_at, updated_at FROM translations
WHERE owner_type = ? AND owner_id = ? AND field = ?
ORDER BY locale
`

type ListTranslationsForFieldParams struct {
	OwnerType string `json:"owner_type"`
	OwnerID   int64  `json:"owner_id"`
	Field     string `json:"field"`
}

func (q *Queries) ListTranslationsForField(ctx context.Context, arg ListTranslationsForFieldParams) ([]Translation, error) {
	rows, err := q.db.QueryContext(ctx, listTranslationsForField, arg.OwnerType, arg.OwnerID, arg.Field)
	if err != nil {
		return nil, err
	}
	return scanTranslations(rows)
}

const listTranslationsForOwner = `-- name: ListTranslationsForOwner :many
SELECT id, owner_type, owner_id, locale, field, value, created_at, updated_at FROM translations
WHERE owner_type = ? AND owner_id = ?
ORDER BY field, locale
`

type ListTranslationsForOwnerParams struct {
	OwnerType string `json:"owner_type"`
	OwnerID   int64  `json:"owner_id"`
}

func (q *Queries) ListTranslationsForOwner(ctx context.Context, arg ListTranslationsForOwnerParams) ([]Translation, error) {
	rows, err := q.db.QueryContext(ctx, listTranslationsForOwner, arg.OwnerType, arg.OwnerID)
	if err != nil {
		return nil, err
	}
	return scanTranslations(rows)
}

const countTranslationsForOwner = `-- name: CountTranslationsForOwner :one
SELECT COUNT(*) FROM translations WHERE owner_type = ? AND owner_id = ?
`

func (q *Queries) CountTranslationsForOwner(ctx context.Context, arg ListTranslationsForOwnerParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countTranslationsForOwner, arg.OwnerType, arg.OwnerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteTranslationsForOwner = `-- name: DeleteTranslationsForOwner :execrows
DELETE FROM translations WHERE owner_type = ? AND owner_id = ?
`

type DeleteTranslationsForOwnerParams struct {
	OwnerType string `json:"owner_type"`
	OwnerID   int64  `json:"owner_id"`
}

func (q *Queries) DeleteTranslationsForOwner(ctx context.Context, arg DeleteTranslationsForOwnerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTranslationsForOwner, arg.OwnerType, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ownerTables maps translation owner types to the table holding their rows.
// Only these names are ever interpolated into SQL.
var ownerTables = map[string]string{
	model.KindProduct:          "products",
	model.KindCourse:           "courses",
	model.KindTrip:             "trips",
	model.KindEvent:            "events",
	model.KindBlogPost:         "blog_posts",
	model.KindCategory:         "categories",
	model.KindBanner:           "banners",
	model.KindFooterLink:       "footer_links",
	model.KindSocialInitiative: "social_initiatives",
}

const deleteOrphanedTranslations = `-- name: DeleteOrphanedTranslations :execrows
DELETE FROM translations
WHERE owner_type = ? AND owner_id NOT IN (SELECT id FROM %s)
`

// DeleteOrphanedTranslations removes rows of ownerType whose owner row no longer exists.
func (q *Queries) DeleteOrphanedTranslations(ctx context.Context, ownerType string) (int64, error) {
	table, ok := ownerTables[ownerType]
	if !ok {
		return 0, fmt.Errorf("unknown owner type %q", ownerType)
	}
	result, err := q.db.ExecContext(ctx, fmt.Sprintf(deleteOrphanedTranslations, table), ownerType)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanTranslations(rows *sql.Rows) ([]Translation, error) {
	defer rows.Close()
	var items []Translation
	for rows.Next() {
		var i Translation
		if err := rows.Scan(
			&i.ID,
			&i.OwnerType,
			&i.OwnerID,
			&i.Locale,
			&i.Field,
			&i.Value,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
