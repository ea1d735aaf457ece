package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/pitipaw_catalog/pkg/db"
)

// Open picks a backend from the URL scheme: mongodb:// and mongodb+srv://
// use MongoDB, postgres:// and sqlite:// go through gorm.
func Open(ctx context.Context, url, database string) (Store, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return OpenMongo(ctx, url, database)
	case db.IsSQL(url):
		gdb, err := db.Open(ctx, url)
		if err != nil {
			return nil, err
		}
		return NewGormRepo(gdb), nil
	default:
		return nil, fmt.Errorf("unsupported database url %q", redact(url))
	}
}

func redact(url string) string {
	scheme, _, ok := strings.Cut(url, "://")
	if !ok {
		return "<invalid>"
	}
	return scheme + "://..."
}
