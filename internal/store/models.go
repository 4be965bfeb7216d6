// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

type Translation struct {
	ID        int64          `json:"id"`
	OwnerType string         `json:"owner_type"`
	OwnerID   int64          `json:"owner_id"`
	Locale    string         `json:"locale"`
	Field     string         `json:"field"`
	Value     sql.NullString `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type Category struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description sql.NullString `json:"description"`
	Slug        string         `json:"slug"`
	Type        string         `json:"type"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Product struct {
	ID          int64          `json:"id"`
	CategoryID  sql.NullInt64  `json:"category_id"`
	Name        string         `json:"name"`
	Description sql.NullString `json:"description"`
	Price       float64        `json:"price"`
	Stock       int64          `json:"stock"`
	Image       sql.NullString `json:"image"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Course struct {
	ID          int64          `json:"id"`
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

type Trip struct {
	ID          int64          `json:"id"`
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

type Event struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Location    sql.NullString `json:"location"`
	StartsAt    string         `json:"starts_at"`
	EndsAt      sql.NullString `json:"ends_at"`
	Image       sql.NullString `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type BlogPost struct {
	ID          int64          `json:"id"`
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

type Banner struct {
	ID         int64          `json:"id"`
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

type FooterLink struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialInitiative struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	Image       sql.NullString `json:"image"`
	HappenedOn  sql.NullString `json:"happened_on"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
