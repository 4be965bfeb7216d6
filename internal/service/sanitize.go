// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/util"
)

// htmlSanitizer strips scripts, event handlers and other unsafe markup from
// rich-text fields while keeping ordinary formatting.
var htmlSanitizer = bluemonday.UGCPolicy()

// SanitizeHTML returns s with unsafe markup removed.
func SanitizeHTML(s string) string {
	return htmlSanitizer.Sanitize(s)
}

func richTextFields(kind string) []string {
	return model.RichTextFields[kind]
}

// maxSlugAttempts bounds the numeric suffixes tried for a generated slug.
const maxSlugAttempts = 100

var errSlugTaken = validation.NewError("validation_slug_taken", "is already in use")

// resolveSlug fills an empty slug from source and makes it unique; a slug the
// client chose is validated and must be free.
func resolveSlug(ctx context.Context, slug *string, source, fallback string, taken func(context.Context, string) (bool, error)) error {
	if *slug != "" {
		if !util.IsValidSlug(*slug) {
			return validation.Errors{"slug": validation.NewError("validation_slug_format", "must contain only lowercase letters, digits and hyphens")}
		}
		inUse, err := taken(ctx, *slug)
		if err != nil {
			return fmt.Errorf("checking slug: %w", err)
		}
		if inUse {
			return validation.Errors{"slug": errSlugTaken}
		}
		return nil
	}

	base := util.Slugify(source)
	if base == "" {
		base = fmt.Sprintf("%s-%d", fallback, time.Now().Unix())
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return fmt.Errorf("checking slug: %w", err)
		}
		if !inUse {
			*slug = candidate
			return nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return validation.Errors{"slug": errSlugTaken}
}
