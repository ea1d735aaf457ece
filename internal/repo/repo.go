package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")

	// ErrDuplicateUsernames means stored admins share a username, so the
	// unique index cannot be built.
	ErrDuplicateUsernames = errors.New("duplicate usernames block the unique username index")
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id models.ID) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	// UpdateProduct applies fields to the stored record and returns it as stored afterwards.
	UpdateProduct(ctx context.Context, id models.ID, fields map[string]any) (*models.Product, error)
	DeleteProduct(ctx context.Context, id models.ID) error
	CountProducts(ctx context.Context) (int64, error)
}

type AdminRepo interface {
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	CreateAdmin(ctx context.Context, a *models.Admin) error
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id models.ID) error
	CountAdmins(ctx context.Context) (int64, error)
}

// Store is a complete backend for the catalog.
type Store interface {
	ProductRepo
	AdminRepo
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Close(ctx context.Context) error
}
