package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrTooLarge     = errors.New("payload too large")
)

// FormatMB renders a byte count the way upload responses report sizes.
func FormatMB(n int64) string {
	return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
}
