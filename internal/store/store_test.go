// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/olegiv/divecms-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "divecms-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

func upsert(t *testing.T, q *Queries, ownerType string, ownerID int64, locale, field string, value sql.NullString) {
	t.Helper()
	now := time.Now()
	if err := q.UpsertTranslation(context.Background(), UpsertTranslationParams{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Locale:    locale,
		Field:     field,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("UpsertTranslation: %v", err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestUpsertTranslation(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	upsert(t, q, "Product", 1, "ar", "name", sql.NullString{String: "ودجة", Valid: true})
	upsert(t, q, "Product", 1, "ar", "name", sql.NullString{String: "أداة", Valid: true})

	count, err := q.CountTranslationsForOwner(ctx, ListTranslationsForOwnerParams{OwnerType: "Product", OwnerID: 1})
	if err != nil {
		t.Fatalf("CountTranslationsForOwner: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	got, err := q.GetTranslation(ctx, GetTranslationParams{OwnerType: "Product", OwnerID: 1, Locale: "ar", Field: "name"})
	if err != nil {
		t.Fatalf("GetTranslation: %v", err)
	}
	if got.Value.String != "أداة" {
		t.Errorf("Value = %q, want %q", got.Value.String, "أداة")
	}
}

func TestGetTranslation_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	_, err := q.GetTranslation(context.Background(), GetTranslationParams{OwnerType: "Product", OwnerID: 1, Locale: "ar", Field: "name"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestTranslationNullAndEmpty(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	upsert(t, q, "Course", 2, "ar", "title", sql.NullString{})
	upsert(t, q, "Course", 2, "ar", "description", sql.NullString{String: "", Valid: true})

	rows, err := q.ListTranslationsForOwner(ctx, ListTranslationsForOwnerParams{OwnerType: "Course", OwnerID: 2})
	if err != nil {
		t.Fatalf("ListTranslationsForOwner: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// ordered by field
	if rows[0].Field != "description" || !rows[0].Value.Valid || rows[0].Value.String != "" {
		t.Errorf("description row = %+v, want valid empty string", rows[0])
	}
	if rows[1].Field != "title" || rows[1].Value.Valid {
		t.Errorf("title row = %+v, want NULL", rows[1])
	}
}

func TestListTranslationsForField(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	upsert(t, q, "Trip", 3, "ar", "title", sql.NullString{String: "الحفرة الزرقاء", Valid: true})
	upsert(t, q, "Trip", 3, "fr", "title", sql.NullString{String: "Trou bleu", Valid: true})
	upsert(t, q, "Trip", 3, "ar", "location", sql.NullString{String: "دهب", Valid: true})

	rows, err := q.ListTranslationsForField(ctx, ListTranslationsForFieldParams{OwnerType: "Trip", OwnerID: 3, Field: "title"})
	if err != nil {
		t.Fatalf("ListTranslationsForField: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Locale != "ar" || rows[1].Locale != "fr" {
		t.Errorf("locales = %s,%s, want ar,fr", rows[0].Locale, rows[1].Locale)
	}
}

func TestDeleteTranslationsForOwner(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	upsert(t, q, "Product", 5, "ar", "name", sql.NullString{String: "x", Valid: true})
	upsert(t, q, "Product", 5, "ar", "description", sql.NullString{String: "y", Valid: true})
	upsert(t, q, "Course", 5, "ar", "title", sql.NullString{String: "z", Valid: true})

	n, err := q.DeleteTranslationsForOwner(ctx, DeleteTranslationsForOwnerParams{OwnerType: "Product", OwnerID: 5})
	if err != nil {
		t.Fatalf("DeleteTranslationsForOwner: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	count, err := q.CountTranslationsForOwner(ctx, ListTranslationsForOwnerParams{OwnerType: "Course", OwnerID: 5})
	if err != nil {
		t.Fatalf("CountTranslationsForOwner: %v", err)
	}
	if count != 1 {
		t.Errorf("Course#5 count = %d, want 1", count)
	}
}

func TestDeleteOrphanedTranslations(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	p, err := q.CreateProduct(ctx, CreateProductParams{Name: "Mask", Price: 45, IsActive: true, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	upsert(t, q, "Product", p.ID, "ar", "name", sql.NullString{String: "قناع", Valid: true})
	upsert(t, q, "Product", p.ID+100, "ar", "name", sql.NullString{String: "يتيم", Valid: true})

	n, err := q.DeleteOrphanedTranslations(ctx, "Product")
	if err != nil {
		t.Fatalf("DeleteOrphanedTranslations: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned = %d, want 1", n)
	}

	count, err := q.CountTranslationsForOwner(ctx, ListTranslationsForOwnerParams{OwnerType: "Product", OwnerID: p.ID})
	if err != nil {
		t.Fatalf("CountTranslationsForOwner: %v", err)
	}
	if count != 1 {
		t.Errorf("live owner count = %d, want 1", count)
	}

	if _, err := q.DeleteOrphanedTranslations(ctx, "Page"); err == nil {
		t.Error("expected error for unknown owner type")
	}
}

func TestDeleteOrphanedTranslations_EveryKind(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for kind := range model.TranslatableFields {
		upsert(t, q, kind, 404, "ar", "title", sql.NullString{String: "x", Valid: true})
		n, err := q.DeleteOrphanedTranslations(ctx, kind)
		if err != nil {
			t.Errorf("DeleteOrphanedTranslations(%s): %v", kind, err)
			continue
		}
		if n != 1 {
			t.Errorf("DeleteOrphanedTranslations(%s) = %d, want 1", kind, n)
		}
	}
}

func TestProductCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	cat, err := q.CreateCategory(ctx, CreateCategoryParams{Name: "Masks", Slug: "masks", Type: "product", CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	p, err := q.CreateProduct(ctx, CreateProductParams{
		CategoryID:  sql.NullInt64{Int64: cat.ID, Valid: true},
		Name:        "Low-volume mask",
		Description: sql.NullString{String: "Frameless", Valid: true},
		Price:       59.9,
		Stock:       12,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("product.ID should not be 0")
	}

	got, err := q.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Name != "Low-volume mask" || got.Stock != 12 || !got.CategoryID.Valid {
		t.Errorf("GetProduct = %+v", got)
	}

	updated, err := q.UpdateProduct(ctx, UpdateProductParams{
		CategoryID: got.CategoryID,
		Name:       "Mask",
		Price:      49,
		Stock:      3,
		IsActive:   false,
		UpdatedAt:  time.Now(),
		ID:         p.ID,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Mask" || updated.Description.Valid || updated.IsActive {
		t.Errorf("UpdateProduct = %+v", updated)
	}

	// category removal nulls the reference
	if _, err := q.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	got, err = q.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.CategoryID.Valid {
		t.Errorf("CategoryID = %v, want NULL after category delete", got.CategoryID)
	}

	n, err := q.DeleteProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	if _, err := q.GetProduct(ctx, p.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetProduct after delete err = %v, want sql.ErrNoRows", err)
	}
}

func TestListAndCountCourses(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	for _, title := range []string{"Open Water", "Advanced", "Rescue"} {
		if _, err := q.CreateCourse(ctx, CreateCourseParams{Title: title, Level: "beginner", IsActive: true, CreatedAt: now, UpdatedAt: now}); err != nil {
			t.Fatalf("CreateCourse: %v", err)
		}
	}

	count, err := q.CountCourses(ctx)
	if err != nil {
		t.Fatalf("CountCourses: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	page, err := q.ListCourses(ctx, ListCoursesParams{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	if page[0].Title != "Advanced" {
		t.Errorf("page[0].Title = %q, want %q", page[0].Title, "Advanced")
	}
}

func TestBlogPostBySlug(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	post, err := q.CreateBlogPost(ctx, CreateBlogPostParams{
		Title:       "Night diving",
		Content:     "<p>Bring a torch.</p>",
		Slug:        "night-diving",
		IsPublished: true,
		PublishedAt: sql.NullTime{Time: now, Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	got, err := q.GetBlogPostBySlug(ctx, "night-diving")
	if err != nil {
		t.Fatalf("GetBlogPostBySlug: %v", err)
	}
	if got.ID != post.ID || !got.PublishedAt.Valid {
		t.Errorf("GetBlogPostBySlug = %+v", got)
	}

	n, err := q.CountBlogPostsBySlug(ctx, CountBlogPostsBySlugParams{Slug: "night-diving", ID: post.ID})
	if err != nil {
		t.Fatalf("CountBlogPostsBySlug: %v", err)
	}
	if n != 0 {
		t.Errorf("count excluding self = %d, want 0", n)
	}

	n, err = q.CountBlogPostsBySlug(ctx, CountBlogPostsBySlugParams{Slug: "night-diving", ID: 0})
	if err != nil {
		t.Fatalf("CountBlogPostsBySlug: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestFooterLinkSlugUnique(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	if _, err := q.CreateFooterLink(ctx, CreateFooterLinkParams{Title: "Terms", Slug: "terms", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("CreateFooterLink: %v", err)
	}
	if _, err := q.CreateFooterLink(ctx, CreateFooterLinkParams{Title: "Terms 2", Slug: "terms", CreatedAt: now, UpdatedAt: now}); err == nil {
		t.Error("expected unique constraint error for duplicate slug")
	}
}
