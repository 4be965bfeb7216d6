// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createBlogPost = `-- name: CreateBlogPost :one
INSERT INTO blog_posts (title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at
`

type CreateBlogPostParams struct {
	Title       string         `json:"title"`
	Excerpt     sql.NullString `json:"excerpt"`
	Content     string         `json:"content"`
	Slug        string         `json:"slug"`
	Image       sql.NullString `json:"image"`
	IsPublished bool           `json:"is_published"`
	PublishedAt sql.NullTime   `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (q *Queries) CreateBlogPost(ctx context.Context, arg CreateBlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, createBlogPost,
		arg.Title,
		arg.Excerpt,
		arg.Content,
		arg.Slug,
		arg.Image,
		arg.IsPublished,
		arg.PublishedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Excerpt,
		&i.Content,
		&i.Slug,
		&i.Image,
		&i.IsPublished,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBlogPost = `-- name: GetBlogPost :one
SELECT id, title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at FROM blog_posts WHERE id = ?
`

func (q *Queries) GetBlogPost(ctx context.Context, id int64) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, getBlogPost, id)
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Excerpt,
		&i.Content,
		&i.Slug,
		&i.Image,
		&i.IsPublished,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBlogPostBySlug = `-- name: GetBlogPostBySlug :one
SELECT id, title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at FROM blog_posts WHERE slug = ?
`

func (q *Queries) GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, getBlogPostBySlug, slug)
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Excerpt,
		&i.Content,
		&i.Slug,
		&i.Image,
		&i.IsPublished,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countBlogPostsBySlug = `-- name: CountBlogPostsBySlug :one
SELECT COUNT(*) FROM blog_posts WHERE slug = ? AND id != ?
`

type CountBlogPostsBySlugParams struct {
	Slug string `json:"slug"`
	ID   int64  `json:"id"`
}

func (q *Queries) CountBlogPostsBySlug(ctx context.Context, arg CountBlogPostsBySlugParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countBlogPostsBySlug, arg.Slug, arg.ID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listBlogPosts = `-- name: ListBlogPosts :many
SELECT id, title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at FROM blog_posts
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

type ListBlogPostsParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListBlogPosts(ctx context.Context, arg ListBlogPostsParams) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listBlogPosts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlogPost
	for rows.Next() {
		var i BlogPost
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Excerpt,
			&i.Content,
			&i.Slug,
			&i.Image,
			&i.IsPublished,
			&i.PublishedAt,
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

const countBlogPosts = `-- name: CountBlogPosts :one
SELECT COUNT(*) FROM blog_posts
`

func (q *Queries) CountBlogPosts(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countBlogPosts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateBlogPost = `-- name: UpdateBlogPost :one
UPDATE blog_posts SET title = ?, excerpt = ?, content = ?, slug = ?, image = ?, is_published = ?, published_at = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, excerpt, content, slug, image, is_published, published_at, created_at, updated_at
`

type UpdateBlogPostParams struct {
	Title       string         `json:"title"`
	Excerpt     sql.NullString `json:"excerpt"`
	Content     string         `json:"content"`
	Slug        string         `json:"slug"`
	Image       sql.NullString `json:"image"`
	IsPublished bool           `json:"is_published"`
	PublishedAt sql.NullTime   `json:"published_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ID          int64          `json:"id"`
}

func (q *Queries) UpdateBlogPost(ctx context.Context, arg UpdateBlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, updateBlogPost,
		arg.Title,
		arg.Excerpt,
		arg.Content,
		arg.Slug,
		arg.Image,
		arg.IsPublished,
		arg.PublishedAt,
		arg.UpdatedAt,
		arg.ID,
	)
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Excerpt,
		&i.Content,
		&i.Slug,
		&i.Image,
		&i.IsPublished,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteBlogPost = `-- name: DeleteBlogPost :execrows
DELETE FROM blog_posts WHERE id = ?
`

func (q *Queries) DeleteBlogPost(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBlogPost, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
