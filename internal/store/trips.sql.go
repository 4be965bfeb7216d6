// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createTrip = `-- name: CreateTrip :one
INSERT INTO trips (title, description, location, price, start_date, capacity, image, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, description, location, price, start_date, capacity, image, is_active, created_at, updated_at
`

type CreateTripParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Location    sql.NullString `json:"location"`
	Price       float64        `json:"price"`
	StartDate   sql.NullString `json:"start_date"`
	Capacity    int64          `json:"capacity"`
	Image       sql.NullString `json:"image"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (q *Queries) CreateTrip(ctx context.Context, arg CreateTripParams) (Trip, error) {
	row := q.db.QueryRowContext(ctx, createTrip,
		arg.Title,
		arg.Description,
		arg.Location,
		arg.Price,
		arg.StartDate,
		arg.Capacity,
		arg.Image,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Trip
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.Price,
		&i.StartDate,
		&i.Capacity,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTrip = `-- name: GetTrip :one
SELECT id, title, description, location, price, start_date, capacity, image, is_active, created_at, updated_at FROM trips WHERE id = ?
`

func (q *Queries) GetTrip(ctx context.Context, id int64) (Trip, error) {
	row := q.db.QueryRowContext(ctx, getTrip, id)
	var i Trip
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.Price,
		&i.StartDate,
		&i.Capacity,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTrips = `-- name: ListTrips :many
SELECT id, title, description, location, price, start_date, capacity, image, is_active, created_at, updated_at FROM trips
ORDER BY start_date, id
LIMIT ? OFFSET ?
`

type ListTripsParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func (q *Queries) ListTrips(ctx context.Context, arg ListTripsParams) ([]Trip, error) {
	rows, err := q.db.QueryContext(ctx, listTrips, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Trip
	for rows.Next() {
		var i Trip
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Location,
			&i.Price,
			&i.StartDate,
			&i.Capacity,
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

const countTrips = `-- name: CountTrips :one
SELECT COUNT(*) FROM trips
`

func (q *Queries) CountTrips(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countTrips)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateTrip = `-- name: UpdateTrip :one
UPDATE trips SET title = ?, description = ?, location = ?, price = ?, start_date = ?, capacity = ?, image = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, description, location, price, start_date, capacity, image, is_active, created_at, updated_at
`

type UpdateTripParams struct {
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Location    sql.NullString `json:"location"`
	Price       float64        `json:"price"`
	StartDate   sql.NullString `json:"start_date"`
	Capacity    int64          `json:"capacity"`
	Image       sql.NullString `json:"image"`
	IsActive    bool           `json:"is_active"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ID          int64          `json:"id"`
}

func (q *Queries) UpdateTrip(ctx context.Context, arg UpdateTripParams) (Trip, error) {
	row := q.db.QueryRowContext(ctx, updateTrip,
		arg.Title,
		arg.Description,
		arg.Location,
		arg.Price,
		arg.StartDate,
		arg.Capacity,
		arg.Image,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Trip
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.Price,
		&i.StartDate,
		&i.Capacity,
		&i.Image,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteTrip = `-- name: DeleteTrip :execrows
DELETE FROM trips WHERE id = ?
`

func (q *Queries) DeleteTrip(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTrip, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
