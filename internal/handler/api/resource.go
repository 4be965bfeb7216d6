// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/divecms-go/internal/handler"
	"github.com/olegiv/divecms-go/internal/imaging"
	"github.com/olegiv/divecms-go/internal/service"
	"github.com/olegiv/divecms-go/internal/translation"
)

// entityService is the CRUD surface every content service exposes.
type entityService[E translation.Entity, P service.Params] interface {
	Kind() string
	Translator() *translation.Translator
	NewParams() P
	ParamsOf(e E) P
	List(ctx context.Context, limit, offset int64) ([]E, int64, error)
	Get(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, p P, payload translation.Payload) (E, error)
	Update(ctx context.Context, id int64, p P, payload translation.Payload) (E, error)
	Delete(ctx context.Context, id int64) (E, error)
}

// resource serves the REST endpoints of one content kind.
type resource[E translation.Entity, P service.Params] struct {
	h    *Handler
	name string
	svc  entityService[E, P]

	// imageOf and setImage are nil for kinds without an image.
	imageOf  func(e E) *string
	setImage func(p *P, path *string)

	// bySlug enables GET /slug/{slug}.
	bySlug func(ctx context.Context, slug string) (E, error)
}

func (rs *resource[E, P]) routes(r chi.Router) {
	r.Get(handler.RouteRoot, rs.list)
	r.Post(handler.RouteRoot, rs.create)
	r.Get(handler.RouteParamID, rs.get)
	r.Put(handler.RouteParamID, rs.update)
	r.Post(handler.RouteParamID, rs.update)
	r.Delete(handler.RouteParamID, rs.delete)
	if rs.bySlug != nil {
		r.Get(handler.RouteSlugParam, rs.getBySlug)
	}
}

// list handles GET /api/v1/<resource>
func (rs *resource[E, P]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pg := handler.ParsePagination(r)

	items, total, err := rs.svc.List(ctx, pg.Limit(), pg.Offset())
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}

	data, err := translation.SerializeAll(ctx, rs.svc.Translator(), items)
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}

	WriteSuccess(w, data, &Meta{
		Total:   total,
		Page:    pg.Page,
		PerPage: pg.PerPage,
		Pages:   pg.TotalPages(total),
	})
}

// get handles GET /api/v1/<resource>/{id}
func (rs *resource[E, P]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, rs.name)
	if !ok {
		return
	}

	e, err := rs.svc.Get(r.Context(), id)
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}
	rs.respond(w, r, http.StatusOK, e)
}

// getBySlug handles GET /api/v1/<resource>/slug/{slug}
func (rs *resource[E, P]) getBySlug(w http.ResponseWriter, r *http.Request) {
	e, err := rs.bySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}
	rs.respond(w, r, http.StatusOK, e)
}

// create handles POST /api/v1/<resource>
func (rs *resource[E, P]) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	params := rs.svc.NewParams()
	if errs := decodeParams(body.raw, &params); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	stored, ok := rs.storeImage(w, r, body, &params)
	if !ok {
		return
	}

	e, err := rs.svc.Create(ctx, params, rs.payload(ctx, body))
	if err != nil {
		rs.removeImage(ctx, stored)
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}
	rs.respond(w, r, http.StatusCreated, e)
}

// update handles PUT and POST /api/v1/<resource>/{id}. Fields absent from
// the body keep their current values.
func (rs *resource[E, P]) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := requireID(w, r, rs.name)
	if !ok {
		return
	}

	existing, err := rs.svc.Get(ctx, id)
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	params := rs.svc.ParamsOf(existing)
	if errs := decodeParams(body.raw, &params); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	stored, ok := rs.storeImage(w, r, body, &params)
	if !ok {
		return
	}

	e, err := rs.svc.Update(ctx, id, params, rs.payload(ctx, body))
	if err != nil {
		rs.removeImage(ctx, stored)
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}

	if stored != "" {
		if old := rs.imageOf(existing); old != nil {
			rs.removeImage(ctx, *old)
		}
	}
	rs.respond(w, r, http.StatusOK, e)
}

// delete handles DELETE /api/v1/<resource>/{id}
func (rs *resource[E, P]) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := requireID(w, r, rs.name)
	if !ok {
		return
	}

	deleted, err := rs.svc.Delete(ctx, id)
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}

	if rs.imageOf != nil {
		if img := rs.imageOf(deleted); img != nil {
			rs.removeImage(ctx, *img)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// payload extracts <field>_translations for the kind's translatable fields.
// Malformed values are skipped; the entity itself still saves.
func (rs *resource[E, P]) payload(ctx context.Context, body *requestBody) translation.Payload {
	fields := rs.svc.Translator().Registry().Fields(rs.svc.Kind())
	p, malformed := translation.ExtractPayload(body.raw, fields)
	if len(malformed) > 0 {
		rs.h.logger.DebugContext(ctx, "skipping malformed translations", "entity", rs.name, "keys", malformed)
	}
	return p
}

// storeImage processes an uploaded image and points params at it. It returns
// the stored path ("" when nothing was uploaded) and false after writing an
// error response.
func (rs *resource[E, P]) storeImage(w http.ResponseWriter, r *http.Request, body *requestBody, params *P) (string, bool) {
	if body.image == nil || rs.setImage == nil || rs.h.images == nil {
		return "", true
	}

	f, err := body.image.Open()
	if err != nil {
		WriteBadRequest(w, "Failed to read uploaded image", nil)
		return "", false
	}
	defer func() { _ = f.Close() }()

	res, err := rs.h.images.Save(f)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) || errors.Is(err, imaging.ErrTooLarge) {
			WriteValidationError(w, map[string]string{imageField: err.Error()})
			return "", false
		}
		rs.h.logger.ErrorContext(r.Context(), "failed to store image", "entity", rs.name, "error", err)
		WriteInternalError(w, "Failed to store image")
		return "", false
	}

	path := res.Path
	rs.setImage(params, &path)
	return path, true
}

func (rs *resource[E, P]) removeImage(ctx context.Context, path string) {
	if path == "" || rs.h.images == nil {
		return
	}
	if err := rs.h.images.Remove(path); err != nil {
		rs.h.logger.WarnContext(ctx, "failed to remove image", "path", path, "error", err)
	}
}

func (rs *resource[E, P]) respond(w http.ResponseWriter, r *http.Request, status int, e E) {
	data, err := rs.svc.Translator().Serialize(r.Context(), e)
	if err != nil {
		rs.h.writeServiceError(w, r, rs.name, err)
		return
	}
	if status == http.StatusCreated {
		WriteCreated(w, data)
		return
	}
	WriteSuccess(w, data, nil)
}
