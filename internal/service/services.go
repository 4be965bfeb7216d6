// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"database/sql"
	"log/slog"

	"github.com/olegiv/divecms-go/internal/translation"
)

// Services bundles one service per content kind, all sharing a translator.
type Services struct {
	Translator        *translation.Translator
	Categories        *CategoryService
	Products          *ProductService
	Courses           *CourseService
	Trips             *TripService
	Events            *EventService
	BlogPosts         *BlogPostService
	Banners           *BannerService
	FooterLinks       *FooterLinkService
	SocialInitiatives *SocialInitiativeService
}

// New creates all content services.
func New(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *Services {
	return &Services{
		Translator:        tr,
		Categories:        NewCategoryService(db, tr, logger),
		Products:          NewProductService(db, tr, logger),
		Courses:           NewCourseService(db, tr, logger),
		Trips:             NewTripService(db, tr, logger),
		Events:            NewEventService(db, tr, logger),
		BlogPosts:         NewBlogPostService(db, tr, logger),
		Banners:           NewBannerService(db, tr, logger),
		FooterLinks:       NewFooterLinkService(db, tr, logger),
		SocialInitiatives: NewSocialInitiativeService(db, tr, logger),
	}
}
