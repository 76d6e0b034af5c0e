// Package storage handles uploaded files: sanitized names under a single
// flat directory, referenced by bare filename from the database.
package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrExtensionNotAllowed is returned when an uploaded file's extension is not
// in the allow-list for the form field.
var ErrExtensionNotAllowed = errors.New("file extension not allowed")

// ImageExtensions is the allow-list for every image upload on the site.
var ImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// SanitizeFilename strips directory components and hostile characters from a
// client-supplied filename, keeping letters, digits, '.', '-' and '_'.
// Returns an empty string when nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return ""
	}
	return cleaned
}

// ValidateExtension checks a filename against an allow-list of lowercase
// extensions (including the leading dot).
func ValidateExtension(filename string, allowed map[string]bool) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !allowed[ext] {
		return fmt.Errorf("%w: %q", ErrExtensionNotAllowed, ext)
	}
	return nil
}

// ProfileImageName builds the deterministic profile image filename
// <username>.<ext>, so a new upload always replaces the previous one.
func ProfileImageName(username, originalName string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFilename(originalName)))
	return username + ext
}

// SaveUpload stores a multipart file under dir with the given name,
// creating the directory if needed. An existing file with the same name is
// overwritten; collisions are not disambiguated.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure upload directory %s: %w", dir, err)
	}
	dest := filepath.Join(dir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return "", fmt.Errorf("failed to save upload %s: %w", name, err)
	}
	return name, nil
}
