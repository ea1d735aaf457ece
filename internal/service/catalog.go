package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
)

type CatalogService struct {
	Repo   repo.ProductRepo
	Events events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return p, err
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" || req.Price == nil {
		return nil, fmt.Errorf("%w: name and price are required", ErrValidation)
	}
	if *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	p := &models.Product{Name: *req.Name, Price: *req.Price}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.Event{Type: events.ProductCreated, ID: p.ID, Name: p.Name})
	return p, nil
}

// UpdateProduct applies only the fields present in req.
func (s *CatalogService) UpdateProduct(ctx context.Context, id models.ID, req transport.PatchProductRequest) (*models.Product, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	p, err := s.Repo.UpdateProduct(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}

	publish(ctx, s.Events, events.Event{Type: events.ProductUpdated, ID: p.ID, Name: p.Name})
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id models.ID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return err
	}

	publish(ctx, s.Events, events.Event{Type: events.ProductDeleted, ID: id})
	return nil
}
