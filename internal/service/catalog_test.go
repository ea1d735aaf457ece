package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
)

func newCatalog(t *testing.T) (*CatalogService, *events.Memory) {
	t.Helper()
	pub := &events.Memory{}
	return &CatalogService{Repo: newTestRepo(t), Events: pub}, pub
}

func TestCatalogService_CreateThenGet(t *testing.T) {
	t.Parallel()

	svc, pub := newCatalog(t)
	ctx := context.Background()

	inputs := []transport.CreateProductRequest{
		{Name: strPtr("Cat Food"), Price: floatPtr(45000)},
		{Name: strPtr("Bed"), Price: floatPtr(0), Description: strPtr("soft"), ImageURL: strPtr("/static/uploads/bed.png")},
		{Name: strPtr("Leash"), Price: floatPtr(12.75), Description: strPtr("")},
	}
	for _, in := range inputs {
		created, err := svc.CreateProduct(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := svc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *in.Name, got.Name)
		assert.Equal(t, *in.Price, got.Price)
		if in.Description != nil {
			assert.Equal(t, *in.Description, got.Description)
		} else {
			assert.Equal(t, "", got.Description)
		}
		if in.ImageURL != nil {
			assert.Equal(t, *in.ImageURL, got.ImageURL)
		} else {
			assert.Equal(t, "", got.ImageURL)
		}
	}

	assert.Equal(t, []string{events.ProductCreated, events.ProductCreated, events.ProductCreated}, pub.Types())
}

func TestCatalogService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc, pub := newCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty", req: transport.CreateProductRequest{}},
		{name: "missing price", req: transport.CreateProductRequest{Name: strPtr("x")}},
		{name: "missing name", req: transport.CreateProductRequest{Price: floatPtr(1)}},
		{name: "blank name", req: transport.CreateProductRequest{Name: strPtr("  "), Price: floatPtr(1)}},
		{name: "negative price", req: transport.CreateProductRequest{Name: strPtr("x"), Price: floatPtr(-1)}},
	}
	for _, tc := range tests {
		_, err := svc.CreateProduct(ctx, tc.req)
		assert.ErrorIs(t, err, ErrValidation, tc.name)
	}

	items, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, pub.Events())
}

func TestCatalogService_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc, pub := newCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name: strPtr("Scratcher"), Price: floatPtr(99), Description: strPtr("old"), ImageURL: strPtr("/static/uploads/s.png"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, transport.PatchProductRequest{Description: strPtr("new")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Scratcher", updated.Name)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, "/static/uploads/s.png", updated.ImageURL)

	assert.Equal(t, []string{events.ProductCreated, events.ProductUpdated}, pub.Types())
}

func TestCatalogService_UpdateErrors(t *testing.T) {
	t.Parallel()

	svc, _ := newCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: strPtr("x"), Price: floatPtr(1)})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, created.ID, transport.PatchProductRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProduct(ctx, created.ID, transport.PatchProductRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProduct(ctx, created.ID, transport.PatchProductRequest{Price: floatPtr(-5)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProduct(ctx, "missing", transport.PatchProductRequest{Name: strPtr("y")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_Delete(t *testing.T) {
	t.Parallel()

	svc, pub := newCatalog(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteProduct(ctx, "nope"), ErrNotFound)

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: strPtr("x"), Price: floatPtr(1)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), ErrNotFound)

	_, err = svc.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{events.ProductCreated, events.ProductDeleted}, pub.Types())
}

func TestCatalogService_PublishFailureDoesNotFailWrite(t *testing.T) {
	t.Parallel()

	pub := &events.Memory{Err: errors.New("broker down")}
	svc := &CatalogService{Repo: newTestRepo(t), Events: pub}

	created, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Name: strPtr("x"), Price: floatPtr(1)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
