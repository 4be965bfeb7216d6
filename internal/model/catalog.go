// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Category types
const (
	CategoryTypeProduct = "product"
	CategoryTypeBlog    = "blog"
)

// Course levels
const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

// Category groups products or blog posts.
type Category struct {
	ID          int64
	Name        string
	Description *string
	Slug        string
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a Category.
func (c Category) OwnerType() string { return KindCategory }

// OwnerID returns the Category id used as translation owner.
func (c Category) OwnerID() int64 { return c.ID }

// NativeValue returns the default-locale value of a translatable Category field.
func (c Category) NativeValue(field string) *string {
	switch field {
	case "name":
		return stringPtr(c.Name)
	case "description":
		return c.Description
	}
	return nil
}

// Attributes returns the plain field map of the Category.
func (c Category) Attributes() map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"slug":        c.Slug,
		"type":        c.Type,
		"created_at":  c.CreatedAt,
		"updated_at":  c.UpdatedAt,
	}
}

// Product is an item sold in the dive shop.
type Product struct {
	ID          int64
	CategoryID  *int64
	Name        string
	Description *string
	Price       float64
	Stock       int64
	Image       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a Product.
func (p Product) OwnerType() string { return KindProduct }

// OwnerID returns the Product id used as translation owner.
func (p Product) OwnerID() int64 { return p.ID }

// NativeValue returns the default-locale value of a translatable Product field.
func (p Product) NativeValue(field string) *string {
	switch field {
	case "name":
		return stringPtr(p.Name)
	case "description":
		return p.Description
	}
	return nil
}

// Attributes returns the plain field map of the Product.
func (p Product) Attributes() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"category_id": p.CategoryID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"image":       p.Image,
		"is_active":   p.IsActive,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

// Course is a diving certification or training course.
type Course struct {
	ID          int64
	Title       string
	Description *string
	Duration    *string
	Level       string
	Price       float64
	Image       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a Course.
func (c Course) OwnerType() string { return KindCourse }

// OwnerID returns the Course id used as translation owner.
func (c Course) OwnerID() int64 { return c.ID }

// NativeValue returns the default-locale value of a translatable Course field.
func (c Course) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(c.Title)
	case "description":
		return c.Description
	case "duration":
		return c.Duration
	}
	return nil
}

// Attributes returns the plain field map of the Course.
func (c Course) Attributes() map[string]any {
	return map[string]any{
		"id":          c.ID,
		"title":       c.Title,
		"description": c.Description,
		"duration":    c.Duration,
		"level":       c.Level,
		"price":       c.Price,
		"image":       c.Image,
		"is_active":   c.IsActive,
		"created_at":  c.CreatedAt,
		"updated_at":  c.UpdatedAt,
	}
}

// Trip is a scheduled dive trip.
type Trip struct {
	ID          int64
	Title       string
	Description *string
	Location    *string
	Price       float64
	StartDate   *string
	Capacity    int64
	Image       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a Trip.
func (t Trip) OwnerType() string { return KindTrip }

// OwnerID returns the Trip id used as translation owner.
func (t Trip) OwnerID() int64 { return t.ID }

// NativeValue returns the default-locale value of a translatable Trip field.
func (t Trip) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(t.Title)
	case "description":
		return t.Description
	case "location":
		return t.Location
	}
	return nil
}

// Attributes includes the derived image_url used by the public site.
func (t Trip) Attributes() map[string]any {
	return map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"location":    t.Location,
		"price":       t.Price,
		"start_date":  t.StartDate,
		"capacity":    t.Capacity,
		"image":       t.Image,
		"image_url":   ImageURL(t.Image),
		"is_active":   t.IsActive,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// Event is a dated happening at the center (clean-ups, open days, competitions).
type Event struct {
	ID          int64
	Title       string
	Description *string
	Location    *string
	StartsAt    string
	EndsAt      *string
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of an Event.
func (e Event) OwnerType() string { return KindEvent }

// OwnerID returns the Event id used as translation owner.
func (e Event) OwnerID() int64 { return e.ID }

// NativeValue returns the default-locale value of a translatable Event field.
func (e Event) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(e.Title)
	case "description":
		return e.Description
	case "location":
		return e.Location
	}
	return nil
}

// Attributes returns the plain field map of the Event.
func (e Event) Attributes() map[string]any {
	return map[string]any{
		"id":          e.ID,
		"title":       e.Title,
		"description": e.Description,
		"location":    e.Location,
		"starts_at":   e.StartsAt,
		"ends_at":     e.EndsAt,
		"image":       e.Image,
		"created_at":  e.CreatedAt,
		"updated_at":  e.UpdatedAt,
	}
}
