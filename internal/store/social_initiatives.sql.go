// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createSocialInitiative = `-- name: CreateSocialInitiative :one
INSERT INTO social_initiatives (title, description, image, happened_on, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, description, image, happened_on, is_active, created_at, updated_at
`

type CreateSocialInitiativeParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Image       sql.NullString `json:"image"`
	HappenedOn  sql.NullString `json:"happened_on"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (q *Queries) CreateSocialInitiative(ctx context.Context, arg CreateSocialInitiativeParams) (SocialInitiative, error) {
	row := q.db.QueryRowContext(ctx, createSocialInitiative,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.HappenedOn,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i SocialInitiative
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Image,
		&i.HappenedOn,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSocialInitiative = `-- name: GetSocialInitiative :one
SELECT id, title, description, image, happened_on, is_active, created_at, updated_at FROM social_initiatives WHERE id = ?
`

func (q *Queries) GetSocialInitiative(ctx context.Context, id int64) (SocialInitiative, error) {
	row := q.db.QueryRowContext(ctx, getSocialInitiative, id)
	var i SocialInitiative
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Image,
		&i.HappenedOn,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSocialInitiatives = `-- name: ListSocialInitiatives :many
SELECT id, title, description, image, happened_on, is_active, created_at, updated_at FROM social_initiatives
ORDER BY id
LIMIT ? OFFSET ?
`

type ListSocialInitiativesParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListSocialInitiatives(ctx context.Context, arg ListSocialInitiativesParams) ([]SocialInitiative, error) {
	rows, err := q.db.QueryContext(ctx, listSocialInitiatives, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SocialInitiative
	for rows.Next() {
		var i SocialInitiative
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Image,
			&i.HappenedOn,
			&i.IsActive,
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

const countSocialInitiatives = `-- name: CountSocialInitiatives :one
SELECT COUNT(*) FROM social_initiatives
`

func (q *Queries) CountSocialInitiatives(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSocialInitiatives)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateSocialInitiative = `-- name: UpdateSocialInitiative :one
UPDATE social_initiatives SET title = ?, description = ?, image = ?, happened_on = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, description, image, happened_on, is_active, created_at, updated_at
`

type UpdateSocialInitiativeParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Image       sql.NullString `json:"image"`
	HappenedOn  sql.NullString `json:"happened_on"`
	IsActive    bool           `json:"is_active"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ID          int64          `json:"id"`
}

func (q *Queries) UpdateSocialInitiative(ctx context.Context, arg UpdateSocialInitiativeParams) (SocialInitiative, error) {
	row := q.db.QueryRowContext(ctx, updateSocialInitiative,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.HappenedOn,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i SocialInitiative
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Image,
		&i.HappenedOn,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteSocialInitiative = `-- name: DeleteSocialInitiative :execrows
DELETE FROM social_initiatives WHERE id = ?
`

func (q *Queries) DeleteSocialInitiative(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSocialInitiative, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
