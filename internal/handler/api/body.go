// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/olegiv/divecms-go/internal/imaging"
	"github.com/olegiv/divecms-go/internal/translation"
)

// Request size limits.
const (
	maxJSONBytes      = 1 << 20
	maxMultipartBytes = imaging.DefaultMaxBytes + 1<<20
	multipartMemory   = 8 << 20

	imageField = "image"
)

// formTranslationKey matches name_translations[ar] style form keys.
var formTranslationKey = regexp.MustCompile(`^([a-z][a-z0-9_]*` + translation.TranslationsSuffix + `)\[([A-Za-z]{2,3}(?:-[A-Za-z0-9]+)*)\]$`)

// requestBody is a submitted entity in a content-type independent form: every
// top-level key maps to its raw JSON value. Form values become JSON strings.
type requestBody struct {
	raw   map[string]json.RawMessage
	image *multipart.FileHeader
}

// readBody decodes a JSON, multipart or urlencoded request body.
func readBody(w http.ResponseWriter, r *http.Request) (*requestBody, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, fmt.Errorf("parsing multipart form: %w", err)
		}
		body, err := formBody(r.MultipartForm.Value)
		if err != nil {
			return nil, err
		}
		if files := r.MultipartForm.File[imageField]; len(files) > 0 {
			body.image = files[0]
		}
		return body, nil

	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form: %w", err)
		}
		return formBody(r.PostForm)

	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
		raw := make(map[string]json.RawMessage)
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return &requestBody{raw: raw}, nil
			}
			return nil, fmt.Errorf("decoding JSON body: %w", err)
		}
		if raw == nil {
			raw = make(map[string]json.RawMessage)
		}
		return &requestBody{raw: raw}, nil
	}
}

// formBody converts form values to raw JSON. name_translations[ar]=... keys are
// gathered into a name_translations object; a blank per-locale input clears
// that translation.
func formBody(values url.Values) (*requestBody, error) {
	raw := make(map[string]json.RawMessage, len(values))
	nested := make(map[string]map[string]*string)

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		value := vals[0]

		if m := formTranslationKey.FindStringSubmatch(key); m != nil {
			if nested[m[1]] == nil {
				nested[m[1]] = make(map[string]*string)
			}
			if strings.TrimSpace(value) == "" {
				nested[m[1]][m[2]] = nil
			} else {
				v := value
				nested[m[1]][m[2]] = &v
			}
			continue
		}

		msg, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		raw[key] = msg
	}

	for key, locales := range nested {
		msg, err := json.Marshal(locales)
		if err != nil {
			return nil, err
		}
		raw[key] = msg
	}

	return &requestBody{raw: raw}, nil
}

// decodeParams overlays the keys present in raw onto the struct dst points to,
// matching json tags. Numbers and booleans may arrive as strings. Keys absent
// from raw leave the field untouched. It returns per-field errors.
func decodeParams(raw map[string]json.RawMessage, dst any) map[string]string {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	errs := make(map[string]string)

	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		if name == "" {
			continue
		}
		msg, ok := raw[name]
		if !ok {
			continue
		}

		field := v.Field(i)
		next := reflect.New(field.Type())
		if err := json.Unmarshal(msg, next.Interface()); err == nil {
			field.Set(next.Elem())
			continue
		}

		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			errs[name] = "has an invalid type"
			continue
		}
		if err := setFromString(field, s); err != nil {
			errs[name] = err.Error()
		}
	}

	return errs
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// setFromString parses a form value into a non-string field. A blank value
// clears pointer fields.
func setFromString(field reflect.Value, s string) error {
	s = strings.TrimSpace(s)

	if field.Kind() == reflect.Pointer {
		if s == "" {
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		elem := reflect.New(field.Type().Elem())
		if err := setFromString(elem.Elem(), s); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		if s == "" {
			field.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.New("must be an integer")
		}
		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if s == "" {
			field.SetFloat(0)
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("must be a number")
		}
		field.SetFloat(f)
	default:
		return errors.New("has an invalid type")
	}
	return nil
}

// parseBool accepts strconv booleans plus the values HTML checkboxes send.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "", "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New("must be a boolean")
	}
	return b, nil
}
