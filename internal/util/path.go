// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePathWithinBase ensures that targetPath resolves inside basePath.
func ValidatePathWithinBase(basePath, targetPath string) error {
	absBase, err := filepath.Abs(filepath.Clean(basePath))
	if err != nil {
		return fmt.Errorf("invalid base path: %w", err)
	}

	absTarget, err := filepath.Abs(filepath.Clean(targetPath))
	if err != nil {
		return fmt.Errorf("invalid target path: %w", err)
	}

	// trailing separator so /uploads-other never matches /uploads
	if absTarget != absBase && !strings.HasPrefix(absTarget, absBase+string(filepath.Separator)) {
		return fmt.Errorf("path traversal detected: path escapes base directory")
	}

	return nil
}

// SafeJoinPath joins components onto basePath and rejects results that
// escape it. Stored image paths come from the database and are joined
// through here before any file is read or removed.
func SafeJoinPath(basePath string, components ...string) (string, error) {
	fullPath := filepath.Join(append([]string{basePath}, components...)...)

	if err := ValidatePathWithinBase(basePath, fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
