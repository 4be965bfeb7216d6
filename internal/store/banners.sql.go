// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createBanner = `-- name: CreateBanner :one
INSERT INTO banners (title, subtitle, button_text, link, image, position, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, subtitle, button_text, link, image, position, is_active, created_at, updated_at
`

type CreateBannerParams struct {
	Title      string         `json:"title"`
	Subtitle   sql.NullString `json:"subtitle"`
	ButtonText sql.NullString `json:"button_text"`
	Link       sql.NullString `json:"link"`
	Image      sql.NullString `json:"image"`
	Position   int64          `json:"position"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (q *Queries) CreateBanner(ctx context.Context, arg CreateBannerParams) (Banner, error) {
	row := q.db.QueryRowContext(ctx, createBanner,
		arg.Title,
		arg.Subtitle,
		arg.ButtonText,
		arg.Link,
		arg.Image,
		arg.Position,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Banner
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.Link,
		&i.Image,
		&i.Position,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBanner = `-- name: GetBanner :one
SELECT id, title, subtitle, button_text, link, image, position, is_active, created_at, updated_at FROM banners WHERE id = ?
`

func (q *Queries) GetBanner(ctx context.Context, id int64) (Banner, error) {
	row := q.db.QueryRowContext(ctx, getBanner, id)
	var i Banner
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.Link,
		&i.Image,
		&i.Position,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBanners = `-- name: ListBanners :many
SELECT id, title, subtitle, button_text, link, image, position, is_active, created_at, updated_at FROM banners
ORDER BY position, id
LIMIT ? OFFSET ?
`

type ListBannersParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListBanners(ctx context.Context, arg ListBannersParams) ([]Banner, error) {
	rows, err := q.db.QueryContext(ctx, listBanners, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Banner
	for rows.Next() {
		var i Banner
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Subtitle,
			&i.ButtonText,
			&i.Link,
			&i.Image,
			&i.Position,
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

const countBanners = `-- name: CountBanners :one
SELECT COUNT(*) FROM banners
`

func (q *Queries) CountBanners(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countBanners)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateBanner = `-- name: UpdateBanner :one
UPDATE banners SET title = ?, subtitle = ?, button_text = ?, link = ?, image = ?, position = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, subtitle, button_text, link, image, position, is_active, created_at, updated_at
`

type UpdateBannerParams struct {
	Title      string         `json:"title"`
	Subtitle   sql.NullString `json:"subtitle"`
	ButtonText sql.NullString `json:"button_text"`
	Link       sql.NullString `json:"link"`
	Image      sql.NullString `json:"image"`
	Position   int64          `json:"position"`
	IsActive   bool           `json:"is_active"`
	UpdatedAt  time.Time      `json:"updated_at"`
	ID         int64          `json:"id"`
}

func (q *Queries) UpdateBanner(ctx context.Context, arg UpdateBannerParams) (Banner, error) {
	row := q.db.QueryRowContext(ctx, updateBanner,
		arg.Title,
		arg.Subtitle,
		arg.ButtonText,
		arg.Link,
		arg.Image,
		arg.Position,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Banner
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.Link,
		&i.Image,
		&i.Position,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteBanner = `-- name: DeleteBanner :execrows
DELETE FROM banners WHERE id = ?
`

func (q *Queries) DeleteBanner(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBanner, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
