// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/divecms-go/internal/locale"
	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/store"
	"github.com/olegiv/divecms-go/internal/translation"
)

func testServices(t *testing.T) (*Services, *sql.DB) {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() {
		_ = db.Close()
	})

	tr := translation.NewTranslator(db, translation.NewRegistry(model.TranslatableFields), "en", nil)
	return New(db, tr, nil), db
}

func countTranslations(t *testing.T, db *sql.DB, ownerType string, ownerID int64) int64 {
	t.Helper()
	n, err := store.New(db).CountTranslationsForOwner(context.Background(), store.ListTranslationsForOwnerParams{
		OwnerType: ownerType,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return n
}

func TestProductCreateWithTranslations(t *testing.T) {
	svc, db := testServices(t)
	ctx := context.Background()

	p, err := svc.Products.Create(ctx, ProductParams{Name: "Widget", Price: 10, IsActive: true}, translation.Payload{
		"name": {"ar": ptr("ودجة"), "en": ptr("ignored")},
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Widget", p.Name)

	// the default locale is never stored as a translation row
	assert.Equal(t, int64(1), countTranslations(t, db, model.KindProduct, p.ID))

	attrs, err := svc.Translator.Serialize(locale.WithLocale(ctx, "ar"), p)
	require.NoError(t, err)
	assert.Equal(t, "ودجة", *attrs["name"].(*string))
}

func TestCreateValidation(t *testing.T) {
	svc, db := testServices(t)
	ctx := context.Background()

	_, err := svc.Products.Create(ctx, ProductParams{Name: "", Price: -1}, translation.Payload{
		"name": {"ar": ptr("ودجة")},
	})
	require.Error(t, err)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "price")

	_, total, err := svc.Products.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	n, err := store.New(db).CountTranslationsForOwner(ctx, store.ListTranslationsForOwnerParams{OwnerType: model.KindProduct, OwnerID: 1})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateRollsBackOnTranslationError(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	_, err := svc.Products.Create(ctx, ProductParams{Name: "Widget"}, translation.Payload{
		"price": {"ar": ptr("10")},
	})
	require.ErrorIs(t, err, translation.ErrUnknownField)

	_, total, err := svc.Products.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total, "entity row must not survive a failed translation save")
}

func TestProductUnknownCategory(t *testing.T) {
	svc, _ := testServices(t)
	missing := int64(999)

	_, err := svc.Products.Create(context.Background(), ProductParams{Name: "Fins", CategoryID: &missing}, nil)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "category_id")
}

func TestUpdateMergesTranslations(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	c, err := svc.Courses.Create(ctx, svc.Courses.NewParams(), nil)
	require.Error(t, err, "title is required")

	params := svc.Courses.NewParams()
	params.Title = "Open Water"
	c, err = svc.Courses.Create(ctx, params, translation.Payload{
		"title":    {"ar": ptr("المياه المفتوحة")},
		"duration": {"ar": ptr("4 أيام")},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CourseLevelBeginner, c.Level)
	assert.True(t, c.IsActive)

	params = svc.Courses.ParamsOf(c)
	params.Price = 450
	c, err = svc.Courses.Update(ctx, c.ID, params, translation.Payload{
		"title": {"ar": ptr("غواص المياه المفتوحة")},
	})
	require.NoError(t, err)
	assert.Equal(t, 450.0, c.Price)

	all, err := svc.Translator.GetTranslations(ctx, c, "title")
	require.NoError(t, err)
	assert.Equal(t, "غواص المياه المفتوحة", *all["ar"])

	duration, err := svc.Translator.GetTranslation(ctx, c, "duration", "ar")
	require.NoError(t, err)
	assert.Equal(t, "4 أيام", *duration, "locales absent from an update keep their value")
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := testServices(t)

	_, err := svc.Trips.Update(context.Background(), 42, TripParams{Title: "Ghost"}, nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteRemovesTranslations(t *testing.T) {
	svc, db := testServices(t)
	ctx := context.Background()

	trip, err := svc.Trips.Create(ctx, TripParams{Title: "Reef", StartDate: ptr("2026-11-14")}, translation.Payload{
		"title":    {"ar": ptr("الشعاب")},
		"location": {"ar": ptr("الغردقة")},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), countTranslations(t, db, model.KindTrip, trip.ID))

	deleted, err := svc.Trips.Delete(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, deleted.ID)
	assert.Zero(t, countTranslations(t, db, model.KindTrip, trip.ID))

	_, err = svc.Trips.Get(ctx, trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Trips.Delete(ctx, trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTripDateValidation(t *testing.T) {
	svc, _ := testServices(t)

	_, err := svc.Trips.Create(context.Background(), TripParams{Title: "Reef", StartDate: ptr("next week")}, nil)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "start_date")
}

func TestEventDateTimeValidation(t *testing.T) {
	tests := []struct {
		name     string
		startsAt string
		wantErr  bool
	}{
		{name: "rfc3339", startsAt: "2026-05-01T09:00:00Z"},
		{name: "datetime-local", startsAt: "2026-05-01T09:00"},
		{name: "date only", startsAt: "2026-05-01"},
		{name: "missing", startsAt: "", wantErr: true},
		{name: "garbage", startsAt: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EventParams{Title: "Beach clean-up", StartsAt: tt.startsAt}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlogPostSlugAndPublish(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	draft, err := svc.BlogPosts.Create(ctx, BlogPostParams{Title: "Night Diving Tips", Content: "<p>Bring a torch</p>"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "night-diving-tips", draft.Slug)
	assert.Nil(t, draft.PublishedAt)

	second, err := svc.BlogPosts.Create(ctx, BlogPostParams{Title: "Night Diving Tips"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "night-diving-tips-2", second.Slug)

	params := svc.BlogPosts.ParamsOf(draft)
	params.IsPublished = true
	published, err := svc.BlogPosts.Update(ctx, draft.ID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	stamped := *published.PublishedAt

	// republishing keeps the original timestamp
	params = svc.BlogPosts.ParamsOf(published)
	params.Title = "Night Diving Tips, Revised"
	again, err := svc.BlogPosts.Update(ctx, draft.ID, params, nil)
	require.NoError(t, err)
	assert.True(t, stamped.Equal(*again.PublishedAt))
	assert.Equal(t, "night-diving-tips", again.Slug)

	bySlug, err := svc.BlogPosts.GetBySlug(ctx, "night-diving-tips")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, bySlug.ID)

	_, err = svc.BlogPosts.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExplicitSlugConflict(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	_, err := svc.FooterLinks.Create(ctx, FooterLinkParams{Title: "Privacy", Slug: "privacy"}, nil)
	require.NoError(t, err)

	_, err = svc.FooterLinks.Create(ctx, FooterLinkParams{Title: "Privacy again", Slug: "privacy"}, nil)
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "slug")

	_, err = svc.FooterLinks.Create(ctx, FooterLinkParams{Title: "Bad", Slug: "Not A Slug"}, nil)
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "slug")
}

func TestRichTextSanitized(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	f, err := svc.FooterLinks.Create(ctx, FooterLinkParams{
		Title:   "Terms",
		Content: `<p onclick="steal()">Terms</p><script>alert(1)</script>`,
	}, translation.Payload{
		"content": {"ar": ptr(`<p>الشروط</p><script>alert(1)</script>`)},
		"title":   {"ar": ptr("<b>الشروط</b>")},
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>Terms</p>", f.Content)

	content, err := svc.Translator.GetTranslation(ctx, f, "content", "ar")
	require.NoError(t, err)
	assert.Equal(t, "<p>الشروط</p>", *content)

	// plain-text fields are stored as submitted
	title, err := svc.Translator.GetTranslation(ctx, f, "title", "ar")
	require.NoError(t, err)
	assert.Equal(t, "<b>الشروط</b>", *title)
}

func TestListPagination(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	for i, title := range []string{"First", "Second", "Third"} {
		_, err := svc.Banners.Create(ctx, BannerParams{Title: title, Position: int64(i), IsActive: true}, nil)
		require.NoError(t, err)
	}

	items, total, err := svc.Banners.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Title)

	items, _, err = svc.Banners.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Third", items[0].Title)
}

func TestSeed(t *testing.T) {
	svc, _ := testServices(t)
	ctx := context.Background()

	created, err := Seed(ctx, svc)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = Seed(ctx, svc)
	require.NoError(t, err)
	assert.False(t, created, "second seed is a no-op")

	products, _, err := svc.Products.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, products, 1)

	name, err := svc.Translator.Attribute(locale.WithLocale(ctx, SeedLocale), products[0], "name")
	require.NoError(t, err)
	assert.Equal(t, "قناع منخفض الحجم", *name)

	about, err := svc.FooterLinks.GetBySlug(ctx, "about-us")
	require.NoError(t, err)
	assert.Equal(t, "About Us", about.Title)
}
