// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createFooterLink = `-- name: CreateFooterLink :one
INSERT INTO footer_links (title, content, slug, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, title, content, slug, position, created_at, updated_at
`

type CreateFooterLinkParams struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Queries) CreateFooterLink(ctx context.Context, arg CreateFooterLinkParams) (FooterLink, error) {
	row := q.db.QueryRowContext(ctx, createFooterLink,
		arg.Title,
		arg.Content,
		arg.Slug,
		arg.Position,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i FooterLink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Content,
		&i.Slug,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getFooterLink = `-- name: GetFooterLink :one
SELECT id, title, content, slug, position, created_at, updated_at FROM footer_links WHERE id = ?
`

func (q *Queries) GetFooterLink(ctx context.Context, id int64) (FooterLink, error) {
	row := q.db.QueryRowContext(ctx, getFooterLink, id)
	var i FooterLink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Content,
		&i.Slug,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getFooterLinkBySlug = `-- name: GetFooterLinkBySlug :one
SELECT id, title, content, slug, position, created_at, updated_at FROM footer_links WHERE slug = ?
`

func (q *Queries) GetFooterLinkBySlug(ctx context.Context, slug string) (FooterLink, error) {
	row := q.db.QueryRowContext(ctx, getFooterLinkBySlug, slug)
	var i FooterLink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Content,
		&i.Slug,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countFooterLinksBySlug = `-- name: CountFooterLinksBySlug :one
SELECT COUNT(*) FROM footer_links WHERE slug = ? AND id != ?
`

type CountFooterLinksBySlugParams struct {
	Slug string `json:"slug"`
	ID   int64  `json:"id"`
}

func (q *Queries) CountFooterLinksBySlug(ctx context.Context, arg CountFooterLinksBySlugParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countFooterLinksBySlug, arg.Slug, arg.ID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listFooterLinks = `-- name: ListFooterLinks :many
SELECT id, title, content, slug, position, created_at, updated_at FROM footer_links
ORDER BY position, id
LIMIT ? OFFSET ?
`

type ListFooterLinksParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListFooterLinks(ctx context.Context, arg ListFooterLinksParams) ([]FooterLink, error) {
	rows, err := q.db.QueryContext(ctx, listFooterLinks, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FooterLink
	for rows.Next() {
		var i FooterLink
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Content,
			&i.Slug,
			&i.Position,
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

const countFooterLinks = `-- name: CountFooterLinks :one
SELECT COUNT(*) FROM footer_links
`

func (q *Queries) CountFooterLinks(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countFooterLinks)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateFooterLink = `-- name: UpdateFooterLink :one
UPDATE footer_links SET title = ?, content = ?, slug = ?, position = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, content, slug, position, created_at, updated_at
`

type UpdateFooterLinkParams struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Position  int64     `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        int64     `json:"id"`
}

func (q *Queries) UpdateFooterLink(ctx context.Context, arg UpdateFooterLinkParams) (FooterLink, error) {
	row := q.db.QueryRowContext(ctx, updateFooterLink,
		arg.Title,
		arg.Content,
		arg.Slug,
		arg.Position,
		arg.UpdatedAt,
		arg.ID,
	)
	var i FooterLink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Content,
		&i.Slug,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteFooterLink = `-- name: DeleteFooterLink :execrows
DELETE FROM footer_links WHERE id = ?
`

func (q *Queries) DeleteFooterLink(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteFooterLink, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
