// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/service"
)

// Resource paths under /api/v1.
const (
	PathProducts          = "/products"
	PathCourses           = "/courses"
	PathTrips             = "/trips"
	PathEvents            = "/events"
	PathBlogPosts         = "/blog-posts"
	PathCategories        = "/categories"
	PathBanners           = "/banners"
	PathFooterLinks       = "/footer-links"
	PathSocialInitiatives = "/social-initiatives"
)

type router interface {
	routes(r chi.Router)
}

// Routes registers all API endpoints on r, which is mounted at /api/v1.
func (h *Handler) Routes(r chi.Router) {
	s := h.services

	r.Get("/status", h.Status)
	r.Get("/locales", h.Locales)

	mount(r, PathCategories, &resource[model.Category, service.CategoryParams]{
		h: h, name: "category", svc: s.Categories,
	})
	mount(r, PathProducts, &resource[model.Product, service.ProductParams]{
		h: h, name: "product", svc: s.Products,
		imageOf:  func(e model.Product) *string { return e.Image },
		setImage: func(p *service.ProductParams, path *string) { p.Image = path },
	})
	mount(r, PathCourses, &resource[model.Course, service.CourseParams]{
		h: h, name: "course", svc: s.Courses,
		imageOf:  func(e model.Course) *string { return e.Image },
		setImage: func(p *service.CourseParams, path *string) { p.Image = path },
	})
	mount(r, PathTrips, &resource[model.Trip, service.TripParams]{
		h: h, name: "trip", svc: s.Trips,
		imageOf:  func(e model.Trip) *string { return e.Image },
		setImage: func(p *service.TripParams, path *string) { p.Image = path },
	})
	mount(r, PathEvents, &resource[model.Event, service.EventParams]{
		h: h, name: "event", svc: s.Events,
		imageOf:  func(e model.Event) *string { return e.Image },
		setImage: func(p *service.EventParams, path *string) { p.Image = path },
	})
	mount(r, PathBlogPosts, &resource[model.BlogPost, service.BlogPostParams]{
		h: h, name: "blog post", svc: s.BlogPosts,
		imageOf:  func(e model.BlogPost) *string { return e.Image },
		setImage: func(p *service.BlogPostParams, path *string) { p.Image = path },
		bySlug:   s.BlogPosts.GetBySlug,
	})
	mount(r, PathBanners, &resource[model.Banner, service.BannerParams]{
		h: h, name: "banner", svc: s.Banners,
		imageOf:  func(e model.Banner) *string { return e.Image },
		setImage: func(p *service.BannerParams, path *string) { p.Image = path },
	})
	mount(r, PathFooterLinks, &resource[model.FooterLink, service.FooterLinkParams]{
		h: h, name: "footer link", svc: s.FooterLinks,
		bySlug: s.FooterLinks.GetBySlug,
	})
	mount(r, PathSocialInitiatives, &resource[model.SocialInitiative, service.SocialInitiativeParams]{
		h: h, name: "social initiative", svc: s.SocialInitiatives,
		imageOf:  func(e model.SocialInitiative) *string { return e.Image },
		setImage: func(p *service.SocialInitiativeParams, path *string) { p.Image = path },
	})
}

func mount(r chi.Router, pattern string, rs router) {
	r.Route(pattern, rs.routes)
}
