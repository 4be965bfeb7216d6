// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging normalizes uploaded entity images and stores them under
// the uploads directory.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/olegiv/divecms-go/internal/util"
)

// Supported MIME types.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// Defaults applied by NewProcessor.
const (
	DefaultMaxDimension = 1920
	DefaultQuality      = 85
	DefaultMaxBytes     = 10 << 20

	// ImagesDir is the sub-directory of the uploads root holding entity images.
	ImagesDir = "images"
)

var (
	// ErrUnsupportedFormat is returned for uploads that are not JPEG, PNG, GIF or WebP.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrTooLarge is returned when an upload exceeds the byte limit.
	ErrTooLarge = errors.New("image exceeds size limit")
)

// Result describes a stored image.
type Result struct {
	// Path is relative to the uploads root, slash separated (images/<uuid>.jpg).
	Path     string
	Width    int
	Height   int
	MimeType string
	Size     int64
}

// Processor handles image processing operations using pure Go libraries.
type Processor struct {
	uploadDir    string
	maxDimension int
	quality      int
	maxBytes     int64
}

// NewProcessor creates a new image processor rooted at uploadDir.
func NewProcessor(uploadDir string) *Processor {
	return &Processor{
		uploadDir:    uploadDir,
		maxDimension: DefaultMaxDimension,
		quality:      DefaultQuality,
		maxBytes:     DefaultMaxBytes,
	}
}

// UploadDir returns the uploads root.
func (p *Processor) UploadDir() string {
	return p.uploadDir
}

// Save decodes an uploaded image, applies EXIF orientation, shrinks it to fit
// within the maximum dimension and writes it under images/ with a random name.
func (p *Processor) Save(reader io.Reader) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(reader, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	format := detectFormat(data)
	if format == "" {
		return nil, ErrUnsupportedFormat
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	// WebP has no pure Go encoder; those are stored as JPEG.
	if format == "webp" {
		format = "jpeg"
	}

	processed, err := encodeImage(img, format, p.quality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	rel := path.Join(ImagesDir, uuid.NewString()+extensionFor(format))
	if err := p.write(rel, processed); err != nil {
		return nil, err
	}

	final := img.Bounds()
	return &Result{
		Path:     rel,
		Width:    final.Dx(),
		Height:   final.Dy(),
		MimeType: formatToMimeType(format),
		Size:     int64(len(processed)),
	}, nil
}

// Remove deletes a stored image. Missing files are not an error.
func (p *Processor) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	full, err := util.SafeJoinPath(p.uploadDir, filepath.FromSlash(rel))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

// IsImage checks if a MIME type represents an image that can be processed.
func IsImage(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

func (p *Processor) write(rel string, data []byte) error {
	full, err := util.SafeJoinPath(p.uploadDir, filepath.FromSlash(rel))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// applyOrientation maps EXIF orientation values 2-8 to flips and rotations.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// detectFormat detects the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	// TIFF is rejected outright (CVE-2023-36308 in disintegration/imaging)
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}

func extensionFor(format string) string {
	switch format {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func formatToMimeType(format string) string {
	switch format {
	case "jpeg", "jpg":
		return MimeTypeJPEG
	case "png":
		return MimeTypePNG
	case "gif":
		return MimeTypeGIF
	case "webp":
		return MimeTypeWebP
	default:
		return "application/octet-stream"
	}
}
