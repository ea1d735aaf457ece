package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
	"github.com/Skotchmaster/pitipaw_catalog/pkg/hash"
)

type AdminService struct {
	Repo   repo.AdminRepo
	Events events.Publisher

	dummyOnce sync.Once
	dummyHash string
}

func credentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	return username, nil
}

// CreateAdmin stores a new admin with a bcrypt hash. Uniqueness is left to
// the store's username index.
func (s *AdminService) CreateAdmin(ctx context.Context, req transport.AdminRequest) (*models.Admin, error) {
	username, err := credentials(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &models.Admin{Username: username, PasswordHash: hashed}
	if err := s.Repo.CreateAdmin(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, username)
		}
		return nil, err
	}

	publish(ctx, s.Events, events.Event{Type: events.AdminCreated, ID: a.ID, Username: a.Username})
	return a, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.Repo.ListAdmins(ctx)
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id models.ID) error {
	if err := s.Repo.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: admin %s", ErrNotFound, id)
		}
		return err
	}

	publish(ctx, s.Events, events.Event{Type: events.AdminDeleted, ID: id})
	return nil
}

// Login checks credentials. Unknown usernames and wrong passwords both yield
// ErrUnauthorized, and both pay for one bcrypt comparison.
func (s *AdminService) Login(ctx context.Context, req transport.LoginRequest) (*models.Admin, error) {
	username, err := credentials(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	a, err := s.Repo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			hash.CheckPassword(s.dummy(), req.Password)
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !hash.CheckPassword(a.PasswordHash, req.Password) {
		return nil, ErrUnauthorized
	}
	return a, nil
}

func (s *AdminService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = hash.HashPassword("pitipaw-login-placeholder")
	})
	return s.dummyHash
}
