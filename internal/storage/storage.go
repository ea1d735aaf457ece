package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrNotFound = errors.New("file not found")

// Object is an opened stored file. Callers must close Body.
type Object struct {
	Body    io.ReadSeekCloser
	Size    int64
	ModTime time.Time
}

// FileStore is a flat namespace of uploaded files keyed by sanitized name.
// Saving an existing name replaces it.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	Open(ctx context.Context, name string) (*Object, error)
}
