// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/store"
	"github.com/olegiv/divecms-go/internal/translation"
	"github.com/olegiv/divecms-go/internal/util"
)

// dateLayout is the format of calendar dates such as a trip's start date.
const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04", dateLayout}

// dateTime accepts an empty value or any of dateTimeLayouts.
var dateTime = validation.By(func(value any) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return validation.NewError("validation_date_time", "must be a date or date-time such as 2026-05-01T09:00")
})

// CategoryParams are the native fields of a category.
type CategoryParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Slug        string  `json:"slug"`
	Type        string  `json:"type"`
}

func (p CategoryParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, util.MaxSlugLength)),
		validation.Field(&p.Type, validation.Required, validation.In(model.CategoryTypeProduct, model.CategoryTypeBlog)),
	)
}

// CategoryService manages categories.
type CategoryService struct {
	*Resource[model.Category, CategoryParams]
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *CategoryService {
	return &CategoryService{newResource(model.KindCategory, db, tr, logger, ops[model.Category, CategoryParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Category, error) {
			c, err := q.GetCategory(ctx, id)
			return categoryFromStore(c), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Category, error) {
			rows, err := q.ListCategories(ctx, store.ListCategoriesParams{Limit: limit, Offset: offset})
			return mapRows(rows, categoryFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountCategories(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p CategoryParams, now time.Time) (model.Category, error) {
			c, err := q.CreateCategory(ctx, store.CreateCategoryParams{
				Name:        p.Name,
				Description: util.NullStringFromPtr(p.Description),
				Slug:        p.Slug,
				Type:        p.Type,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return categoryFromStore(c), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p CategoryParams, now time.Time) (model.Category, error) {
			c, err := q.UpdateCategory(ctx, store.UpdateCategoryParams{
				Name:        p.Name,
				Description: util.NullStringFromPtr(p.Description),
				Slug:        p.Slug,
				Type:        p.Type,
				UpdatedAt:   now,
				ID:          id,
			})
			return categoryFromStore(c), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteCategory(ctx, id)
		},
		defaults: func() CategoryParams { return CategoryParams{Type: model.CategoryTypeProduct} },
		paramsOf: func(c model.Category) CategoryParams {
			return CategoryParams{Name: c.Name, Description: c.Description, Slug: c.Slug, Type: c.Type}
		},
		prepare: func(ctx context.Context, q *store.Queries, id int64, p *CategoryParams) error {
			if p.Type == "" {
				p.Type = model.CategoryTypeProduct
			}
			return resolveSlug(ctx, &p.Slug, p.Name, "category", func(ctx context.Context, slug string) (bool, error) {
				n, err := q.CountCategoriesBySlug(ctx, store.CountCategoriesBySlugParams{Slug: slug, ID: id})
				return n > 0, err
			})
		},
	})}
}

func categoryFromStore(c store.Category) model.Category {
	return model.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: util.PtrFromNullString(c.Description),
		Slug:        c.Slug,
		Type:        c.Type,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ProductParams are the native fields of a product. Image is set from an
// uploaded file, never from the request body.
type ProductParams struct {
	CategoryID  *int64  `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Image       *string `json:"-"`
	IsActive    bool    `json:"is_active"`
}

func (p ProductParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.Stock, validation.Min(int64(0))),
	)
}

// ProductService manages shop products.
type ProductService struct {
	*Resource[model.Product, ProductParams]
}

// NewProductService creates a ProductService.
func NewProductService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *ProductService {
	return &ProductService{newResource(model.KindProduct, db, tr, logger, ops[model.Product, ProductParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Product, error) {
			p, err := q.GetProduct(ctx, id)
			return productFromStore(p), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Product, error) {
			rows, err := q.ListProducts(ctx, store.ListProductsParams{Limit: limit, Offset: offset})
			return mapRows(rows, productFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountProducts(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p ProductParams, now time.Time) (model.Product, error) {
			row, err := q.CreateProduct(ctx, store.CreateProductParams{
				CategoryID:  util.NullInt64FromPtr(p.CategoryID),
				Name:        p.Name,
				Description: util.NullStringFromPtr(p.Description),
				Price:       p.Price,
				Stock:       p.Stock,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return productFromStore(row), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p ProductParams, now time.Time) (model.Product, error) {
			row, err := q.UpdateProduct(ctx, store.UpdateProductParams{
				CategoryID:  util.NullInt64FromPtr(p.CategoryID),
				Name:        p.Name,
				Description: util.NullStringFromPtr(p.Description),
				Price:       p.Price,
				Stock:       p.Stock,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				UpdatedAt:   now,
				ID:          id,
			})
			return productFromStore(row), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteProduct(ctx, id)
		},
		defaults: func() ProductParams { return ProductParams{IsActive: true} },
		paramsOf: func(p model.Product) ProductParams {
			return ProductParams{
				CategoryID:  p.CategoryID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Stock:       p.Stock,
				Image:       p.Image,
				IsActive:    p.IsActive,
			}
		},
		prepare: func(ctx context.Context, q *store.Queries, _ int64, p *ProductParams) error {
			if p.CategoryID == nil {
				return nil
			}
			if _, err := q.GetCategory(ctx, *p.CategoryID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return validation.Errors{"category_id": validation.NewError("validation_category_missing", "does not exist")}
				}
				return fmt.Errorf("checking category: %w", err)
			}
			return nil
		},
	})}
}

func productFromStore(p store.Product) model.Product {
	return model.Product{
		ID:          p.ID,
		CategoryID:  util.PtrFromNullInt64(p.CategoryID),
		Name:        p.Name,
		Description: util.PtrFromNullString(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       util.PtrFromNullString(p.Image),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CourseParams are the native fields of a course.
type CourseParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	Image       *string `json:"-"`
	IsActive    bool    `json:"is_active"`
}

func (p CourseParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Level, validation.Required, validation.In(model.CourseLevelBeginner, model.CourseLevelIntermediate, model.CourseLevelAdvanced)),
		validation.Field(&p.Price, validation.Min(0.0)),
	)
}

// CourseService manages diving courses.
type CourseService struct {
	*Resource[model.Course, CourseParams]
}

// NewCourseService creates a CourseService.
func NewCourseService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *CourseService {
	return &CourseService{newResource(model.KindCourse, db, tr, logger, ops[model.Course, CourseParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Course, error) {
			c, err := q.GetCourse(ctx, id)
			return courseFromStore(c), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Course, error) {
			rows, err := q.ListCourses(ctx, store.ListCoursesParams{Limit: limit, Offset: offset})
			return mapRows(rows, courseFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountCourses(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p CourseParams, now time.Time) (model.Course, error) {
			c, err := q.CreateCourse(ctx, store.CreateCourseParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Duration:    util.NullStringFromPtr(p.Duration),
				Level:       p.Level,
				Price:       p.Price,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return courseFromStore(c), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p CourseParams, now time.Time) (model.Course, error) {
			c, err := q.UpdateCourse(ctx, store.UpdateCourseParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Duration:    util.NullStringFromPtr(p.Duration),
				Level:       p.Level,
				Price:       p.Price,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				UpdatedAt:   now,
				ID:          id,
			})
			return courseFromStore(c), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteCourse(ctx, id)
		},
		defaults: func() CourseParams { return CourseParams{Level: model.CourseLevelBeginner, IsActive: true} },
		paramsOf: func(c model.Course) CourseParams {
			return CourseParams{
				Title:       c.Title,
				Description: c.Description,
				Duration:    c.Duration,
				Level:       c.Level,
				Price:       c.Price,
				Image:       c.Image,
				IsActive:    c.IsActive,
			}
		},
		prepare: func(_ context.Context, _ *store.Queries, _ int64, p *CourseParams) error {
			if p.Level == "" {
				p.Level = model.CourseLevelBeginner
			}
			return nil
		},
	})}
}

func courseFromStore(c store.Course) model.Course {
	return model.Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: util.PtrFromNullString(c.Description),
		Duration:    util.PtrFromNullString(c.Duration),
		Level:       c.Level,
		Price:       c.Price,
		Image:       util.PtrFromNullString(c.Image),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// TripParams are the native fields of a dive trip.
type TripParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Price       float64 `json:"price"`
	StartDate   *string `json:"start_date"`
	Capacity    int64   `json:"capacity"`
	Image       *string `json:"-"`
	IsActive    bool    `json:"is_active"`
}

func (p TripParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.StartDate, validation.Date(dateLayout)),
		validation.Field(&p.Capacity, validation.Min(int64(0))),
	)
}

// TripService manages dive trips.
type TripService struct {
	*Resource[model.Trip, TripParams]
}

// NewTripService creates a TripService.
func NewTripService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *TripService {
	return &TripService{newResource(model.KindTrip, db, tr, logger, ops[model.Trip, TripParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Trip, error) {
			t, err := q.GetTrip(ctx, id)
			return tripFromStore(t), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Trip, error) {
			rows, err := q.ListTrips(ctx, store.ListTripsParams{Limit: limit, Offset: offset})
			return mapRows(rows, tripFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountTrips(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p TripParams, now time.Time) (model.Trip, error) {
			t, err := q.CreateTrip(ctx, store.CreateTripParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Location:    util.NullStringFromPtr(p.Location),
				Price:       p.Price,
				StartDate:   util.NullStringFromPtr(p.StartDate),
				Capacity:    p.Capacity,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return tripFromStore(t), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p TripParams, now time.Time) (model.Trip, error) {
			t, err := q.UpdateTrip(ctx, store.UpdateTripParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Location:    util.NullStringFromPtr(p.Location),
				Price:       p.Price,
				StartDate:   util.NullStringFromPtr(p.StartDate),
				Capacity:    p.Capacity,
				Image:       util.NullStringFromPtr(p.Image),
				IsActive:    p.IsActive,
				UpdatedAt:   now,
				ID:          id,
			})
			return tripFromStore(t), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteTrip(ctx, id)
		},
		defaults: func() TripParams { return TripParams{IsActive: true} },
		paramsOf: func(t model.Trip) TripParams {
			return TripParams{
				Title:       t.Title,
				Description: t.Description,
				Location:    t.Location,
				Price:       t.Price,
				StartDate:   t.StartDate,
				Capacity:    t.Capacity,
				Image:       t.Image,
				IsActive:    t.IsActive,
			}
		},
	})}
}

func tripFromStore(t store.Trip) model.Trip {
	return model.Trip{
		ID:          t.ID,
		Title:       t.Title,
		Description: util.PtrFromNullString(t.Description),
		Location:    util.PtrFromNullString(t.Location),
		Price:       t.Price,
		StartDate:   util.PtrFromNullString(t.StartDate),
		Capacity:    t.Capacity,
		Image:       util.PtrFromNullString(t.Image),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// EventParams are the native fields of an event.
type EventParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
	Image       *string `json:"-"`
}

func (p EventParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.StartsAt, validation.Required, dateTime),
		validation.Field(&p.EndsAt, dateTime),
	)
}

// EventService manages center events.
type EventService struct {
	*Resource[model.Event, EventParams]
}

// NewEventService creates an EventService.
func NewEventService(db *sql.DB, tr *translation.Translator, logger *slog.Logger) *EventService {
	return &EventService{newResource(model.KindEvent, db, tr, logger, ops[model.Event, EventParams]{
		get: func(ctx context.Context, q *store.Queries, id int64) (model.Event, error) {
			e, err := q.GetEvent(ctx, id)
			return eventFromStore(e), err
		},
		list: func(ctx context.Context, q *store.Queries, limit, offset int64) ([]model.Event, error) {
			rows, err := q.ListEvents(ctx, store.ListEventsParams{Limit: limit, Offset: offset})
			return mapRows(rows, eventFromStore), err
		},
		count: func(ctx context.Context, q *store.Queries) (int64, error) {
			return q.CountEvents(ctx)
		},
		create: func(ctx context.Context, q *store.Queries, p EventParams, now time.Time) (model.Event, error) {
			e, err := q.CreateEvent(ctx, store.CreateEventParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Location:    util.NullStringFromPtr(p.Location),
				StartsAt:    p.StartsAt,
				EndsAt:      util.NullStringFromPtr(p.EndsAt),
				Image:       util.NullStringFromPtr(p.Image),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			return eventFromStore(e), err
		},
		update: func(ctx context.Context, q *store.Queries, id int64, p EventParams, now time.Time) (model.Event, error) {
			e, err := q.UpdateEvent(ctx, store.UpdateEventParams{
				Title:       p.Title,
				Description: util.NullStringFromPtr(p.Description),
				Location:    util.NullStringFromPtr(p.Location),
				StartsAt:    p.StartsAt,
				EndsAt:      util.NullStringFromPtr(p.EndsAt),
				Image:       util.NullStringFromPtr(p.Image),
				UpdatedAt:   now,
				ID:          id,
			})
			return eventFromStore(e), err
		},
		remove: func(ctx context.Context, q *store.Queries, id int64) (int64, error) {
			return q.DeleteEvent(ctx, id)
		},
		paramsOf: func(e model.Event) EventParams {
			return EventParams{
				Title:       e.Title,
				Description: e.Description,
				Location:    e.Location,
				StartsAt:    e.StartsAt,
				EndsAt:      e.EndsAt,
				Image:       e.Image,
			}
		},
	})}
}

func eventFromStore(e store.Event) model.Event {
	return model.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: util.PtrFromNullString(e.Description),
		Location:    util.PtrFromNullString(e.Location),
		StartsAt:    e.StartsAt,
		EndsAt:      util.PtrFromNullString(e.EndsAt),
		Image:       util.PtrFromNullString(e.Image),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func mapRows[S, M any](rows []S, fn func(S) M) []M {
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
