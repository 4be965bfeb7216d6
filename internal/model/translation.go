// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Owner types stored in translations.owner_type.
const (
	KindProduct          = "Product"
	KindCourse           = "Course"
	KindTrip             = "Trip"
	KindEvent            = "Event"
	KindBlogPost         = "BlogPost"
	KindCategory         = "Category"
	KindBanner           = "Banner"
	KindFooterLink       = "FooterLink"
	KindSocialInitiative = "SocialInitiative"
)

// TranslatableFields declares, per entity kind, which native fields may be
// overridden per locale. The default locale value always stays on the entity row.
var TranslatableFields = map[string][]string{
	KindProduct:          {"name", "description"},
	KindCourse:           {"title", "description", "duration"},
	KindTrip:             {"title", "description", "location"},
	KindEvent:            {"title", "description", "location"},
	KindBlogPost:         {"title", "excerpt", "content"},
	KindCategory:         {"name", "description"},
	KindBanner:           {"title", "subtitle", "button_text"},
	KindFooterLink:       {"title", "content"},
	KindSocialInitiative: {"title", "description"},
}

// RichTextFields lists translatable fields that hold HTML and must be sanitized.
var RichTextFields = map[string][]string{
	KindBlogPost:   {"content"},
	KindFooterLink: {"content"},
}

// UploadsURLPrefix is the public path under which stored images are served.
const UploadsURLPrefix = "/uploads/"

// ImageURL returns the public URL of a stored image path, or nil when unset.
func ImageURL(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	u := UploadsURLPrefix + *image
	return &u
}

func stringPtr(s string) *string {
	return &s
}
