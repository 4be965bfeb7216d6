// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createCourse = `-- name: CreateCourse :one
INSERT INTO courses (title, description, duration, level, price, image, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, description, duration, level, price, image, is_active, created_at, updated_at
`

type CreateCourseParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Duration    sql.NullString `json:"duration"`
	Level       string         `json:"level"`
	Price       float64        `json:"price"`
	Image       sql.NullString `json:"image"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, createCourse,
		arg.Title,
		arg.Description,
		arg.Duration,
		arg.Level,
		arg.Price,
		arg.Image,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Duration,
		&i.Level,
		&i.Price,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCourse = `-- name: GetCourse :one
SELECT id, title, description, duration, level, price, image, is_active, created_at, updated_at FROM courses WHERE id = ?
`

func (q *Queries) GetCourse(ctx context.Context, id int64) (Course, error) {
	row := q.db.QueryRowContext(ctx, getCourse, id)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Duration,
		&i.Level,
		&i.Price,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCourses = `-- name: ListCourses :many
SELECT id, title, description, duration, level, price, image, is_active, created_at, updated_at FROM courses
ORDER BY id
LIMIT ? OFFSET ?
`

type ListCoursesParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListCourses(ctx context.Context, arg ListCoursesParams) ([]Course, error) {
	rows, err := q.db.QueryContext(ctx, listCourses, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		var i Course
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Duration,
			&i.Level,
			&i.Price,
			&i.Image,
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

const countCourses = `-- name: CountCourses :one
SELECT COUNT(*) FROM courses
`

func (q *Queries) CountCourses(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCourses)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateCourse = `-- name: UpdateCourse :one
UPDATE courses SET title = ?, description = ?, duration = ?, level = ?, price = ?, image = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, description, duration, level, price, image, is_active, created_at, updated_at
`

type UpdateCourseParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Duration    sql.NullString `json:"duration"`
	Level       string         `json:"level"`
	Price       float64        `json:"price"`
	Image       sql.NullString `json:"image"`
	IsActive    bool           `json:"is_active"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ID          int64          `json:"id"`
}

func (q *Queries) UpdateCourse(ctx context.Context, arg UpdateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, updateCourse,
		arg.Title,
		arg.Description,
		arg.Duration,
		arg.Level,
		arg.Price,
		arg.Image,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Duration,
		&i.Level,
		&i.Price,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteCourse = `-- name: DeleteCourse :execrows
DELETE FROM courses WHERE id = ?
`

func (q *Queries) DeleteCourse(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCourse, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
