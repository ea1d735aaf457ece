package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
)

// runStoreContract exercises behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("empty lists are non-nil", func(t *testing.T) {
		s := newStore(t)

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Len(t, products, 0)

		admins, err := s.ListAdmins(ctx)
		require.NoError(t, err)
		assert.NotNil(t, admins)
		assert.Len(t, admins, 0)
	})

	t.Run("product create get update delete", func(t *testing.T) {
		s := newStore(t)

		p := &models.Product{Name: "Cat Toy", Price: 12.5, Description: "feather"}
		require.NoError(t, s.CreateProduct(ctx, p))
		require.NotEmpty(t, p.ID)

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, *p, *got)

		updated, err := s.UpdateProduct(ctx, p.ID, map[string]any{"description": "bells"})
		require.NoError(t, err)
		assert.Equal(t, "bells", updated.Description)
		assert.Equal(t, "Cat Toy", updated.Name)
		assert.Equal(t, 12.5, updated.Price)
		assert.Equal(t, "", updated.ImageURL)

		n, err := s.CountProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, s.DeleteProduct(ctx, p.ID))
		assert.ErrorIs(t, s.DeleteProduct(ctx, p.ID), ErrNotFound)

		_, err = s.GetProduct(ctx, p.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown and malformed ids are not found", func(t *testing.T) {
		s := newStore(t)

		for _, id := range []models.ID{"000000000000000000000000", "not-an-id", "zzzzzzzzzzzzzzzzzzzzzzzz", ""} {
			_, err := s.GetProduct(ctx, id)
			assert.ErrorIs(t, err, ErrNotFound, id)

			_, err = s.UpdateProduct(ctx, id, map[string]any{"name": "x"})
			assert.ErrorIs(t, err, ErrNotFound, id)

			assert.ErrorIs(t, s.DeleteProduct(ctx, id), ErrNotFound, id)
			assert.ErrorIs(t, s.DeleteAdmin(ctx, id), ErrNotFound, id)
		}
	})

	t.Run("admins unique username and hidden password", func(t *testing.T) {
		s := newStore(t)

		a := &models.Admin{Username: "root", PasswordHash: "$2a$10$hash"}
		require.NoError(t, s.CreateAdmin(ctx, a))
		require.NotEmpty(t, a.ID)

		dup := &models.Admin{Username: "root", PasswordHash: "$2a$10$other"}
		assert.ErrorIs(t, s.CreateAdmin(ctx, dup), ErrDuplicate)

		n, err := s.CountAdmins(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		found, err := s.FindAdminByUsername(ctx, "root")
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)
		assert.Equal(t, a.ID, found.ID)

		_, err = s.FindAdminByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := s.ListAdmins(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "root", list[0].Username)
		assert.Empty(t, list[0].PasswordHash)

		require.NoError(t, s.DeleteAdmin(ctx, a.ID))
		assert.ErrorIs(t, s.DeleteAdmin(ctx, a.ID), ErrNotFound)
	})

	t.Run("concurrent duplicate registration keeps one record", func(t *testing.T) {
		s := newStore(t)

		const workers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			oks  int
			dups int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.CreateAdmin(ctx, &models.Admin{Username: "race", PasswordHash: "h"})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					oks++
				case assert.ErrorIs(t, err, ErrDuplicate):
					dups++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, oks)
		assert.Equal(t, workers-1, dups)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Ping(ctx))
	})
}
