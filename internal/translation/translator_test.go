// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/divecms-go/internal/locale"
	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "translations.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func testTranslator(t *testing.T) (*Translator, *sql.DB) {
	t.Helper()
	db := testDB(t)
	return NewTranslator(db, NewRegistry(model.TranslatableFields), "en", nil), db
}

func ptr(s string) *string { return &s }

func widget() model.Product {
	return model.Product{ID: 7, Name: "Widget", Description: ptr("A small widget"), Price: 10}
}

func arabic(ctx context.Context) context.Context {
	return locale.WithLocale(ctx, "ar")
}

func TestSetThenGetTranslation(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("ودجة")))

	got, err := tr.GetTranslation(ctx, p, "name", "ar")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ودجة", *got)
}

func TestGetTranslationFallsBackToNative(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	got, err := tr.GetTranslation(ctx, p, "name", "ar")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Widget", *got)

	t.Run("stored null falls back", func(t *testing.T) {
		require.NoError(t, tr.SetTranslation(ctx, p, "description", "ar", nil))
		got, err := tr.GetTranslation(ctx, p, "description", "ar")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "A small widget", *got)
	})

	t.Run("stored empty string is returned", func(t *testing.T) {
		require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("")))
		got, err := tr.GetTranslation(ctx, p, "name", "ar")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "", *got)
	})

	t.Run("nil when both absent", func(t *testing.T) {
		bare := model.Product{ID: 8, Name: "Bare"}
		got, err := tr.GetTranslation(ctx, bare, "description", "ar")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty locale uses the active one", func(t *testing.T) {
		other := model.Product{ID: 9, Name: "Fins"}
		require.NoError(t, tr.SetTranslation(ctx, other, "name", "ar", ptr("زعانف")))

		got, err := tr.GetTranslation(arabic(ctx), other, "name", "")
		require.NoError(t, err)
		assert.Equal(t, "زعانف", *got)

		got, err = tr.GetTranslation(ctx, other, "name", "")
		require.NoError(t, err)
		assert.Equal(t, "Fins", *got)
	})
}

func TestStoreDistinguishesAbsentNullAndEmpty(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	owner := Owner{Type: model.KindProduct, ID: 1}
	s := tr.Store()

	_, found, err := s.Get(ctx, owner, "ar", "name")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Upsert(ctx, owner, "ar", "name", nil))
	v, found, err := s.Get(ctx, owner, "ar", "name")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Nil(t, v)

	require.NoError(t, s.Upsert(ctx, owner, "ar", "name", ptr("")))
	v, found, err = s.Get(ctx, owner, "ar", "name")
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, v)
	assert.Equal(t, "", *v)
}

func TestGetTranslationsIncludesDefault(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	all, err := tr.GetTranslations(ctx, p, "name")
	require.NoError(t, err)
	require.Contains(t, all, "en")
	assert.Equal(t, "Widget", *all["en"])
	assert.Len(t, all, 1)

	require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("ودجة")))
	all, err = tr.GetTranslations(ctx, p, "name")
	require.NoError(t, err)
	assert.Equal(t, "Widget", *all["en"])
	assert.Equal(t, "ودجة", *all["ar"])
}

func TestDefaultLocaleWriteIsIgnored(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	require.NoError(t, tr.SetTranslation(ctx, p, "name", "en", ptr("Shadow")))

	got, err := tr.Attribute(ctx, p, "name")
	require.NoError(t, err)
	assert.Equal(t, "Widget", *got)

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Zero(t, n, "no shadow row should be stored for the default locale")
}

func TestLocaleKeysAreCaseInsensitive(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	require.NoError(t, tr.SaveTranslations(ctx, p, Payload{
		"name": {"EN": ptr("Shadow"), " AR ": ptr("ودجة")},
	}))

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "only the ar row should be stored")

	all, err := tr.GetTranslations(ctx, p, "name")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Widget", *all["en"])
	assert.Equal(t, "ودجة", *all["ar"])

	got, err := tr.Attribute(arabic(ctx), p, "name")
	require.NoError(t, err)
	assert.Equal(t, "ودجة", *got)

	got, err = tr.GetTranslation(ctx, p, "name", "AR")
	require.NoError(t, err)
	assert.Equal(t, "ودجة", *got)
}

func TestDefaultLocaleReadIgnoresStrayRow(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	// Rows written by older data bypassing SetTranslation.
	require.NoError(t, tr.Store().Upsert(ctx, OwnerOf(p), "en", "name", ptr("Stale")))

	got, err := tr.Attribute(ctx, p, "name")
	require.NoError(t, err)
	assert.Equal(t, "Widget", *got)

	all, err := tr.GetTranslations(ctx, p, "name")
	require.NoError(t, err)
	assert.Equal(t, "Widget", *all["en"])
}

func TestSaveTranslationsMultipleFields(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	err := tr.SaveTranslations(ctx, p, Payload{
		"name":        {"ar": ptr("X")},
		"description": {"ar": ptr("Y")},
	})
	require.NoError(t, err)

	name, err := tr.GetTranslation(ctx, p, "name", "ar")
	require.NoError(t, err)
	assert.Equal(t, "X", *name)

	desc, err := tr.GetTranslation(ctx, p, "description", "ar")
	require.NoError(t, err)
	assert.Equal(t, "Y", *desc)
}

func TestSaveTranslationsIsAtomic(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	err := tr.SaveTranslations(ctx, p, Payload{
		"description": {"ar": ptr("Y")},
		"price":       {"ar": ptr("1")},
	})
	require.ErrorIs(t, err, ErrUnknownField)

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Zero(t, n, "failed bulk save must not leave partial rows")
}

func TestSaveTranslationsRequiresOwner(t *testing.T) {
	tr, _ := testTranslator(t)
	err := tr.SaveTranslations(context.Background(), model.Product{Name: "Unsaved"}, Payload{
		"name": {"ar": ptr("X")},
	})
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestSetTranslationIsIdempotent(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()

	require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("ودجة")))
	require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("ودجة")))

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSerialize(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := model.Product{ID: 11, Name: "Widget"}
	require.NoError(t, tr.SetTranslation(ctx, p, "name", "ar", ptr("ودجة")))

	t.Run("default locale", func(t *testing.T) {
		out, err := tr.Serialize(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "Widget", *out["name"].(*string))

		all := out["name_translations"].(map[string]*string)
		assert.Equal(t, "Widget", *all["en"])
		assert.Equal(t, "ودجة", *all["ar"])
	})

	t.Run("arabic locale", func(t *testing.T) {
		out, err := tr.Serialize(arabic(ctx), p)
		require.NoError(t, err)
		assert.Equal(t, "ودجة", *out["name"].(*string))

		all := out["name_translations"].(map[string]*string)
		assert.Equal(t, "Widget", *all["en"])
		assert.Equal(t, "ودجة", *all["ar"])
	})

	t.Run("untranslated field falls back", func(t *testing.T) {
		out, err := tr.Serialize(arabic(ctx), p)
		require.NoError(t, err)
		assert.Nil(t, out["description"])
		all := out["description_translations"].(map[string]*string)
		assert.Contains(t, all, "en")
	})

	t.Run("native attributes kept", func(t *testing.T) {
		out, err := tr.Serialize(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(11), out["id"])
		assert.Contains(t, out, "price")
	})
}

func TestSerializeTripKeepsImageURL(t *testing.T) {
	tr, _ := testTranslator(t)
	trip := model.Trip{ID: 3, Title: "Blue Hole", Image: ptr("images/blue.jpg")}

	out, err := tr.Serialize(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/blue.jpg", *out["image_url"].(*string))
	assert.Contains(t, out, "title_translations")
	assert.Contains(t, out, "location_translations")
}

func TestDeleteTranslations(t *testing.T) {
	tr, _ := testTranslator(t)
	ctx := context.Background()
	p := widget()
	other := model.Course{ID: p.ID, Title: "Open Water"}

	require.NoError(t, tr.SaveTranslations(ctx, p, Payload{
		"name":        {"ar": ptr("X")},
		"description": {"ar": ptr("Y")},
	}))
	require.NoError(t, tr.SetTranslation(ctx, other, "title", "ar", ptr("المياه المفتوحة")))

	require.NoError(t, tr.DeleteTranslations(ctx, p))

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = tr.Store().count(ctx, OwnerOf(other))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "same id of another kind must be untouched")
}

func TestWithTxJoinsTransaction(t *testing.T) {
	tr, db := testTranslator(t)
	ctx := context.Background()
	p := widget()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tr.WithTx(tx).SaveTranslations(ctx, p, Payload{"name": {"ar": ptr("X")}}))
	require.NoError(t, tx.Rollback())

	n, err := tr.Store().count(ctx, OwnerOf(p))
	require.NoError(t, err)
	assert.Zero(t, n)
}
