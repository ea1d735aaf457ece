package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Skotchmaster/pitipaw_catalog/internal/storage"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
)

const PublicUploadPrefix = "/static/uploads/"

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

type ImageService struct {
	Store       storage.FileStore
	MaxFileSize int64
}

// Upload validates and stores one image, returning its public URL.
func (s *ImageService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (*transport.UploadResponse, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: no file selected", ErrValidation)
	}
	if !AllowedImage(filename) {
		return nil, fmt.Errorf("%w: file type not allowed, use png, jpg, jpeg or gif", ErrValidation)
	}
	if size > s.MaxFileSize {
		return nil, fmt.Errorf("%w: file too large, maximum %s (file size: %s)",
			ErrValidation, FormatMB(s.MaxFileSize), FormatMB(size))
	}

	name, err := storage.SanitizeFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid file name", ErrValidation)
	}

	if err := s.Store.Save(ctx, name, r, size); err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	return &transport.UploadResponse{
		ImageURL: PublicUploadPrefix + name,
		FileSize: FormatMB(size),
	}, nil
}

// Open returns a stored image; names that are not sanitized are never found.
func (s *ImageService) Open(ctx context.Context, name string) (*storage.Object, error) {
	obj, err := s.Store.Open(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: file %s", ErrNotFound, name)
	}
	return obj, err
}

// CheckRequestSize rejects a request whose declared size is over limit.
func CheckRequestSize(size, limit int64) error {
	if size > limit {
		return RequestTooLarge(limit, FormatMB(size))
	}
	return nil
}

// RequestTooLarge wraps ErrTooLarge with the ceiling and the observed size.
func RequestTooLarge(limit int64, size string) error {
	return fmt.Errorf("%w: maximum %s (request size: %s)", ErrTooLarge, FormatMB(limit), size)
}

// AllowedImage reports whether filename has an accepted image extension.
func AllowedImage(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}
