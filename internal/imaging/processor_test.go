// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestImage creates a simple test image with the given dimensions.
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(width, height)); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	res, err := p.Save(bytes.NewReader(pngBytes(t, 40, 20)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(res.Path, ImagesDir+"/") || !strings.HasSuffix(res.Path, ".png") {
		t.Errorf("Path = %q, want images/<uuid>.png", res.Path)
	}
	if res.Width != 40 || res.Height != 20 {
		t.Errorf("dimensions = %dx%d, want 40x20", res.Width, res.Height)
	}
	if res.MimeType != MimeTypePNG {
		t.Errorf("MimeType = %q, want %q", res.MimeType, MimeTypePNG)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(res.Path))); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestSaveShrinksLargeImages(t *testing.T) {
	p := NewProcessor(t.TempDir())
	p.maxDimension = 16

	res, err := p.Save(bytes.NewReader(pngBytes(t, 64, 32)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Width != 16 || res.Height != 8 {
		t.Errorf("dimensions = %dx%d, want 16x8", res.Width, res.Height)
	}
}

func TestSaveRejects(t *testing.T) {
	p := NewProcessor(t.TempDir())

	if _, err := p.Save(strings.NewReader("not an image at all")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("text upload err = %v, want ErrUnsupportedFormat", err)
	}

	p.maxBytes = 10
	if _, err := p.Save(bytes.NewReader(pngBytes(t, 8, 8))); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized upload err = %v, want ErrTooLarge", err)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	res, err := p.Save(bytes.NewReader(pngBytes(t, 4, 4)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := p.Remove(res.Path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(res.Path))); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %v", err)
	}

	if err := p.Remove(res.Path); err != nil {
		t.Errorf("second Remove: %v, want nil", err)
	}
	if err := p.Remove(""); err != nil {
		t.Errorf("Remove(\"\") = %v, want nil", err)
	}
	if err := p.Remove("../../etc/passwd"); err == nil {
		t.Error("Remove outside uploads dir should fail")
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{MimeTypeJPEG, true},
		{MimeTypePNG, true},
		{MimeTypeGIF, true},
		{MimeTypeWebP, true},
		{"application/pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := IsImage(tt.mimeType); got != tt.want {
				t.Errorf("IsImage(%q) = %v, want %v", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg magic bytes", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "jpeg"},
		{"png magic bytes", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "png"},
		{"gif magic bytes", []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}, "gif"},
		{"tiff rejected", []byte{0x49, 0x49, 0x2A, 0x00}, ""},
		{"unknown", []byte{0x00, 0x01, 0x02, 0x03}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.data); got != tt.want {
				t.Errorf("detectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyOrientation(t *testing.T) {
	for orientation := 0; orientation <= 9; orientation++ {
		t.Run(fmt.Sprintf("orientation_%d", orientation), func(t *testing.T) {
			result := applyOrientation(createTestImage(10, 6), orientation)
			b := result.Bounds()
			switch orientation {
			case 5, 6, 7, 8:
				if b.Dx() != 6 || b.Dy() != 10 {
					t.Errorf("bounds = %dx%d, want 6x10", b.Dx(), b.Dy())
				}
			default:
				if b.Dx() != 10 || b.Dy() != 6 {
					t.Errorf("bounds = %dx%d, want 10x6", b.Dx(), b.Dy())
				}
			}
		})
	}
}
