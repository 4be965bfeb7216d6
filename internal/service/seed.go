// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/divecms-go/internal/translation"
)

// SeedLocale is the alternate locale the demo content is translated into.
const SeedLocale = "ar"

// Seed creates demo content with Arabic translations when the database holds
// no categories yet. It reports whether anything was created.
func Seed(ctx context.Context, s *Services) (bool, error) {
	_, total, err := s.Categories.List(ctx, 1, 0)
	if err != nil {
		return false, fmt.Errorf("checking existing content: %w", err)
	}
	if total > 0 {
		slog.Info("content already exists, skipping seed")
		return false, nil
	}

	gear, err := s.Categories.Create(ctx, CategoryParams{
		Name:        "Diving Gear",
		Description: ptr("Masks, fins and everything else you need underwater."),
		Type:        "product",
	}, translation.Payload{
		"name":        ar("معدات الغوص"),
		"description": ar("الأقنعة والزعانف وكل ما تحتاجه تحت الماء."),
	})
	if err != nil {
		return false, fmt.Errorf("seeding category: %w", err)
	}

	if _, err := s.Products.Create(ctx, ProductParams{
		CategoryID:  &gear.ID,
		Name:        "Low Volume Mask",
		Description: ptr("Tempered glass mask with a soft silicone skirt."),
		Price:       49.90,
		Stock:       25,
		IsActive:    true,
	}, translation.Payload{
		"name":        ar("قناع منخفض الحجم"),
		"description": ar("قناع من الزجاج المقوى بحافة سيليكون ناعمة."),
	}); err != nil {
		return false, fmt.Errorf("seeding product: %w", err)
	}

	if _, err := s.Courses.Create(ctx, CourseParams{
		Title:       "Open Water Diver",
		Description: ptr("Your first certification: theory, pool sessions and four open water dives."),
		Duration:    ptr("4 days"),
		Level:       "beginner",
		Price:       450,
		IsActive:    true,
	}, translation.Payload{
		"title":       ar("غواص المياه المفتوحة"),
		"description": ar("شهادتك الأولى: دروس نظرية وجلسات في المسبح وأربع غطسات في المياه المفتوحة."),
		"duration":    ar("4 أيام"),
	}); err != nil {
		return false, fmt.Errorf("seeding course: %w", err)
	}

	if _, err := s.Trips.Create(ctx, TripParams{
		Title:       "Red Sea Reef Safari",
		Description: ptr("Two days of boat dives on the northern reefs."),
		Location:    ptr("Hurghada"),
		Price:       320,
		StartDate:   ptr("2026-11-14"),
		Capacity:    12,
		IsActive:    true,
	}, translation.Payload{
		"title":       ar("رحلة سفاري الشعاب في البحر الأحمر"),
		"description": ar("يومان من الغوص من القارب على الشعاب الشمالية."),
		"location":    ar("الغردقة"),
	}); err != nil {
		return false, fmt.Errorf("seeding trip: %w", err)
	}

	if _, err := s.FooterLinks.Create(ctx, FooterLinkParams{
		Title:   "About Us",
		Content: "<p>A family-run dive center since 2009.</p>",
	}, translation.Payload{
		"title":   ar("من نحن"),
		"content": ar("<p>مركز غوص عائلي منذ عام 2009.</p>"),
	}); err != nil {
		return false, fmt.Errorf("seeding footer link: %w", err)
	}

	slog.Info("seeded demo content", "locale", SeedLocale)
	return true, nil
}

func ar(value string) map[string]*string {
	return map[string]*string{SeedLocale: &value}
}

func ptr[T any](v T) *T {
	return &v
}
