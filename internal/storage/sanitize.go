package storage

import (
	"errors"
	"path"
	"strings"

	"github.com/gosimple/slug"
)

const maxStemLen = 100

var ErrInvalidName = errors.New("invalid file name")

// SanitizeFilename keeps the base name, slugs the stem and lowercases the
// extension, so "../My Cat.JPG" becomes "my-cat.jpg".
func SanitizeFilename(name string) (string, error) {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		return "", ErrInvalidName
	}

	ext := path.Ext(base)
	stem := slug.Make(strings.TrimSuffix(base, ext))
	if len(stem) > maxStemLen {
		stem = strings.Trim(stem[:maxStemLen], "-")
	}
	if stem == "" {
		return "", ErrInvalidName
	}

	ext = strings.ToLower(ext)
	for _, r := range strings.TrimPrefix(ext, ".") {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "", ErrInvalidName
		}
	}
	return stem + ext, nil
}

// IsSanitized reports whether name is already in the form SanitizeFilename produces.
func IsSanitized(name string) bool {
	clean, err := SanitizeFilename(name)
	return err == nil && clean == name
}
