// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// BlogPost is an article on the public blog.
type BlogPost struct {
	ID          int64
	Title       string
	Excerpt     *string
	Content     string
	Slug        string
	Image       *string
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a BlogPost.
func (b BlogPost) OwnerType() string { return KindBlogPost }

// OwnerID returns the BlogPost id used as translation owner.
func (b BlogPost) OwnerID() int64 { return b.ID }

// NativeValue returns the default-locale value of a translatable BlogPost field.
func (b BlogPost) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(b.Title)
	case "excerpt":
		return b.Excerpt
	case "content":
		return stringPtr(b.Content)
	}
	return nil
}

// Attributes returns the plain field map of the BlogPost.
func (b BlogPost) Attributes() map[string]any {
	return map[string]any{
		"id":           b.ID,
		"title":        b.Title,
		"excerpt":      b.Excerpt,
		"content":      b.Content,
		"slug":         b.Slug,
		"image":        b.Image,
		"is_published": b.IsPublished,
		"published_at": b.PublishedAt,
		"created_at":   b.CreatedAt,
		"updated_at":   b.UpdatedAt,
	}
}

// Banner is a hero slide on the home page.
type Banner struct {
	ID         int64
	Title      string
	Subtitle   *string
	ButtonText *string
	Link       *string
	Image      *string
	Position   int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerType returns the translation owner type of a Banner.
func (b Banner) OwnerType() string { return KindBanner }

// OwnerID returns the Banner id used as translation owner.
func (b Banner) OwnerID() int64 { return b.ID }

// NativeValue returns the default-locale value of a translatable Banner field.
func (b Banner) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(b.Title)
	case "subtitle":
		return b.Subtitle
	case "button_text":
		return b.ButtonText
	}
	return nil
}

// Attributes returns the plain field map of the Banner.
func (b Banner) Attributes() map[string]any {
	return map[string]any{
		"id":          b.ID,
		"title":       b.Title,
		"subtitle":    b.Subtitle,
		"button_text": b.ButtonText,
		"link":        b.Link,
		"image":       b.Image,
		"position":    b.Position,
		"is_active":   b.IsActive,
		"created_at":  b.CreatedAt,
		"updated_at":  b.UpdatedAt,
	}
}

// FooterLink is a static page linked from the site footer (terms, privacy, about).
type FooterLink struct {
	ID        int64
	Title     string
	Content   string
	Slug      string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerType returns the translation owner type of a FooterLink.
func (f FooterLink) OwnerType() string { return KindFooterLink }

// OwnerID returns the FooterLink id used as translation owner.
func (f FooterLink) OwnerID() int64 { return f.ID }

// NativeValue returns the default-locale value of a translatable FooterLink field.
func (f FooterLink) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(f.Title)
	case "content":
		return stringPtr(f.Content)
	}
	return nil
}

// Attributes returns the plain field map of the FooterLink.
func (f FooterLink) Attributes() map[string]any {
	return map[string]any{
		"id":         f.ID,
		"title":      f.Title,
		"content":    f.Content,
		"slug":       f.Slug,
		"position":   f.Position,
		"created_at": f.CreatedAt,
		"updated_at": f.UpdatedAt,
	}
}

// SocialInitiative is a community or conservation activity run by the center.
type SocialInitiative struct {
	ID          int64
	Title       string
	Description *string
	Image       *string
	HappenedOn  *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerType returns the translation owner type of a SocialInitiative.
func (s SocialInitiative) OwnerType() string { return KindSocialInitiative }

// OwnerID returns the SocialInitiative id used as translation owner.
func (s SocialInitiative) OwnerID() int64 { return s.ID }

// NativeValue returns the default-locale value of a translatable SocialInitiative field.
func (s SocialInitiative) NativeValue(field string) *string {
	switch field {
	case "title":
		return stringPtr(s.Title)
	case "description":
		return s.Description
	}
	return nil
}

// Attributes includes the derived image_url used by the public site.
func (s SocialInitiative) Attributes() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"title":       s.Title,
		"description": s.Description,
		"image":       s.Image,
		"image_url":   ImageURL(s.Image),
		"happened_on": s.HappenedOn,
		"is_active":   s.IsActive,
		"created_at":  s.CreatedAt,
		"updated_at":  s.UpdatedAt,
	}
}
