// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/store"
	"github.com/olegiv/divecms-go/internal/translation"
	"github.com/olegiv/divecms-go/internal/util"
)

// BlogPostParams are the native fields of a blog post. PublishedAt is managed
// by the service: it is stamped the first time the post is published.
type BlogPostParams struct {
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     string     `json:"content"`
	Slug        string     `json:"slug"`
	Image       *string    `json:"-"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"-"`
}

func (p BlogPostParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Excerpt, validation.Length(0, 1000)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, util.MaxSlugLength)),
	)
}

// BlogPostService manages blog posts.
type BlogPostService struct {
	*Resource[model.BlogPost, BlogPostParams]
}

// NewBlogPostService creates a BlogPostService.
func NewBlogPostService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *BlogPostService {
	return &BlogPostService{newResource(model.KindBlogPost, db, tr, logger, ops[model.BlogPost, BlogPostParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.BlogPost, error) {
			b, err := q.GetBlogPost(ctx, id)
			return blogPostFromStore(b), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.BlogPost, error) {
			rows, err := q.ListBlogPosts(ctx, store.ListBlogPostsParams{Limit: limit, Offset: offset})
			return mapRows(rows, blogPostFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountBlogPosts(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p BlogPostParams, now time.Time) (model.BlogPost, error) {
			b, err := q.CreateBlogPost(ctx, store.CreateBlogPostParams{
				Title:       p.Title,
				Excerpt:     util.NullStringFromPtr(p.Excerpt),
				Content:     p.Content,
				Slug:        p.Slug,
				Image:       util.NullStringFromPtr(p.Image),
				IsPublished: p.IsPublished,
				PublishedAt: util.NullTimeFromPtr(p.PublishedAt),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return blogPostFromStore(b), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p BlogPostParams, now time.Time) (model.BlogPost, error) {
			b, err := q.UpdateBlogPost(ctx, store.UpdateBlogPostParams{
				Title:       p.Title,
				Excerpt:     util.NullStringFromPtr(p.Excerpt),
				Content:     p.Content,
				Slug:        p.Slug,
				Image:       util.NullStringFromPtr(p.Image),
				IsPublished: p.IsPublished,
				PublishedAt: util.NullTimeFromPtr(p.PublishedAt),
				UpdatedAt:   now,
				ID:          id,
			})
			return blogPostFromStore(b), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteBlogPost(ctx, id)
		},
		paramsOf: func(b model.BlogPost) BlogPostParams {
			return BlogPostParams{
				Title:       b.Title,
				Excerpt:     b.Excerpt,
				Content:     b.Content,
				Slug:        b.Slug,
				Image:       b.Image,
				IsPublished: b.IsPublished,
				PublishedAt: b.PublishedAt,
			}
		},
		prepare: func(ctx context.Context, q *store.Queries, id int64, p *BlogPostParams) error {
			p.Content = SanitizeHTML(p.Content)
			if p.IsPublished && p.PublishedAt == nil {
				now := time.Now().UTC()
				p.PublishedAt = &now
			}
			return resolveSlug(ctx, &p.Slug, p.Title, "post", func(ctx context.Context, slug string) (bool, error) {
				n, err := q.CountBlogPostsBySlug(ctx, store.CountBlogPostsBySlugParams{Slug: slug, ID: id})
				return n > 0, err
			})
		},
	})}
}

// GetBySlug returns the blog post with the given slug.
func (s *BlogPostService) GetBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	b, err := s.queries.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return model.BlogPost{}, s.wrapSlug(slug, err)
	}
	return blogPostFromStore(b), nil
}

func blogPostFromStore(b store.BlogPost) model.BlogPost {
	return model.BlogPost{
		ID:          b.ID,
		Title:       b.Title,
		Excerpt:     util.PtrFromNullString(b.Excerpt),
		Content:     b.Content,
		Slug:        b.Slug,
		Image:       util.PtrFromNullString(b.Image),
		IsPublished: b.IsPublished,
		PublishedAt: util.PtrFromNullTime(b.PublishedAt),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BannerParams are the native fields of a home page banner.
type BannerParams struct {
	Title      string  `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text"`
	Link       *string `json:"link"`
	Image      *string `json:"-"`
	Position   int64   `json:"position"`
	IsActive   bool    `json:"is_active"`
}

func (p BannerParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.ButtonText, validation.Length(0, 100)),
		validation.Field(&p.Link, validation.Length(0, 2048)),
		validation.Field(&p.Position, validation.Min(int64(0))),
	)
}

// BannerService manages home page banners.
type BannerService struct {
	*Resource[model.Banner, BannerParams]
}

// NewBannerService creates a BannerService.
func NewBannerService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *BannerService {
	return &BannerService{newResource(model.KindBanner, db, tr, logger, ops[model.Banner, BannerParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Banner, error) {
			b, err := q.GetBanner(ctx, id)
			return bannerFromStore(b), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Banner, error) {
			rows, err := q.ListBanners(ctx, store.ListBannersParams{Limit: limit, Offset: offset})
			return mapRows(rows, bannerFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountBanners(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p BannerParams, now time.Time) (model.Banner, error) {
			b, err := q.CreateBanner(ctx, store.CreateBannerParams{
				Title:      p.Title,
				Subtitle:   util.NullStringFromPtr(p.Subtitle),
				ButtonText: util.NullStringFromPtr(p.ButtonText),
				Link:       util.NullStringFromPtr(p.Link),
				Image:      util.NullStringFromPtr(p.Image),
				Position:   p.Position,
				IsActive:   p.IsActive,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			return bannerFromStore(b), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p BannerParams, now time.Time) (model.Banner, error) {
			b, err := q.UpdateBanner(ctx, store.UpdateBannerParams{
				Title:      p.Title,
				Subtitle:   util.NullStringFromPtr(p.Subtitle),
				ButtonText: util.NullStringFromPtr(p.ButtonText),
				Link:       util.NullStringFromPtr(p.Link),
				Image:      util.NullStringFromPtr(p.Image),
				Position:   p.Position,
				IsActive:   p.IsActive,
				UpdatedAt:  now,
				ID:         id,
			})
			return bannerFromStore(b), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteBanner(ctx, id)
		},
		paramsOf: func(b model.Banner) BannerParams {
			return BannerParams{
				Title:      b.Title,
				Subtitle:   b.Subtitle,
				ButtonText: b.ButtonText,
				Link:       b.Link,
				Image:      b.Image,
				Position:   b.Position,
				IsActive:   b.IsActive,
			}
		},
		defaults: func() BannerParams { return BannerParams{IsActive: true} },
	})}
}

func bannerFromStore(b store.Banner) model.Banner {
	return model.Banner{
		ID:         b.ID,
		Title:      b.Title,
		Subtitle:   util.PtrFromNullString(b.Subtitle),
		ButtonText: util.PtrFromNullString(b.ButtonText),
		Link:       util.PtrFromNullString(b.Link),
		Image:      util.PtrFromNullString(b.Image),
		Position:   b.Position,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FooterLinkParams are the native fields of a footer page.
type FooterLinkParams struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Slug     string `json:"slug"`
	Position int64  `json:"position"`
}

func (p FooterLinkParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, util.MaxSlugLength)),
		validation.Field(&p.Position, validation.Min(int64(0))),
	)
}

// FooterLinkService manages footer pages.
type FooterLinkService struct {
	*Resource[model.FooterLink, FooterLinkParams]
}

// NewFooterLinkService creates a FooterLinkService.
func NewFooterLinkService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *FooterLinkService {
	return &FooterLinkService{newResource(model.KindFooterLink, db, tr, logger, ops[model.FooterLink, FooterLinkParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.FooterLink, error) {
			f, err := q.GetFooterLink(ctx, id)
			return footerLinkFromStore(f), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.FooterLink, error) {
			rows, err := q.ListFooterLinks(ctx, store.ListFooterLinksParams{Limit: limit, Offset: offset})
			return mapRows(rows, footerLinkFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountFooterLinks(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p FooterLinkParams, now time.Time) (model.FooterLink, error) {
			f, err := q.CreateFooterLink(ctx, store.CreateFooterLinkParams{
				Title:     p.Title,
				Content:   p.Content,
				Slug:      p.Slug,
				Position:  p.Position,
				CreatedAt: now,
				UpdatedAt: now,
			})
			return footerLinkFromStore(f), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p FooterLinkParams, now time.Time) (model.FooterLink, error) {
			f, err := q.UpdateFooterLink(ctx, store.UpdateFooterLinkParams{
				Title:     p.Title,
				Content:   p.Content,
				Slug:      p.Slug,
				Position:  p.Position,
				UpdatedAt: now,
				ID:        id,
			})
			return footerLinkFromStore(f), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteFooterLink(ctx, id)
		},
		paramsOf: func(f model.FooterLink) FooterLinkParams {
			return FooterLinkParams{Title: f.Title, Content: f.Content, Slug: f.Slug, Position: f.Position}
		},
		prepare: func(ctx context.Context, q *store.Queries, id int64, p *FooterLinkParams) error {
			p.Content = SanitizeHTML(p.Content)
			return resolveSlug(ctx, &p.Slug, p.Title, "page", func(ctx context.Context, slug string) (bool, error) {
				n, err := q.CountFooterLinksBySlug(ctx, store.CountFooterLinksBySlugParams{Slug: slug, ID: id})
				return n > 0, err
			})
		},
	})}
}

// GetBySlug returns the footer page with the given slug.
func (s *FooterLinkService) GetBySlug(ctx context.Context, slug string) (model.FooterLink, error) {
	f, err := s.queries.GetFooterLinkBySlug(ctx, slug)
	if err != nil {
		return model.FooterLink{}, s.wrapSlug(slug, err)
	}
	return footerLinkFromStore(f), nil
}

func footerLinkFromStore(f store.FooterLink) model.FooterLink {
	return model.FooterLink{
		ID:        f.ID,
		Title:     f.Title,
		Content:   f.Content,
		Slug:      f.Slug,
		Position:  f.Position,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// SocialInitiativeParams are the native fields of a social initiative.
type SocialInitiativeParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"-"`
	HappenedOn  *string `json:"happened_on"`
	IsActive    bool    `json:"is_active"`
}

func (p SocialInitiativeParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.HappenedOn, validation.Date(dateLayout)),
	)
}

// SocialInitiativeService manages community and conservation initiatives.
type SocialInitiativeService struct {
	*Resource[model.SocialInitiative, SocialInitiativeParams]
}

// NewSocialInitiativeService creates a SocialInitiativeService.
func NewSocialInitiativeService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *SocialInitiativeService {
	return &SocialInitiativeService{newResource(model.KindSocialInitiative, db, tr, logger, ops[model.SocialInitiative, SocialInitiativeParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.SocialInitiative, error) {
			s, err := q.GetSocialInitiative(ctx, id)
			return socialInitiativeFromStore(s), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.SocialInitiative, error) {
			rows, err := q.ListSocialInitiatives(ctx, store.ListSocialInitiativesParams{Limit: limit, Offset: offset})
			return mapRows(rows, socialInitiativeFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountSocialInitiatives(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p SocialInitiativeParams, now time.Time) (model.SocialInitiative, error) {
			s, err := q.CreateSocialInitiative(ctx, store.CreateSocialInitiativeParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Image:       util.NullStringFromPtr(p.Image),
				HappenedOn:  util.NullStringFromPtr(p.HappenedOn),
				IsActive:    p.IsActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return socialInitiativeFromStore(s), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p SocialInitiativeParams, now time.Time) (model.SocialInitiative, error) {
			s, err := q.UpdateSocialInitiative(ctx, store.UpdateSocialInitiativeParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Image:       util.NullStringFromPtr(p.Image),
				HappenedOn:  util.NullStringFromPtr(p.HappenedOn),
				IsActive:    p.IsActive,
				UpdatedAt:   now,
				ID:          id,
			})
			return socialInitiativeFromStore(s), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteSocialInitiative(ctx, id)
		},
		paramsOf: func(s model.SocialInitiative) SocialInitiativeParams {
			return SocialInitiativeParams{
				Title:       s.Title,
				Description: s.Description,
				Image:       s.Image,
				HappenedOn:  s.HappenedOn,
				IsActive:    s.IsActive,
			}
		},
		defaults: func() SocialInitiativeParams { return SocialInitiativeParams{IsActive: true} },
	})}
}

func socialInitiativeFromStore(s store.SocialInitiative) model.SocialInitiative {
	return model.SocialInitiative{
		ID:          s.ID,
		Title:       s.Title,
		Description: util.PtrFromNullString(s.Description),
		Image:       util.PtrFromNullString(s.Image),
		HappenedOn:  util.PtrFromNullString(s.HappenedOn),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
