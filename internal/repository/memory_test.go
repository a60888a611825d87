package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/model"
	"github.com/angularstore/catalog/internal/repository"
)

func mustProduct(t *testing.T, name string, price float64, stock int) model.Product {
	t.Helper()
	p, err := model.NewProduct(name, "", price, stock)
	require.NoError(t, err)
	return p
}

func TestMemoryRepositoryAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign increasing ids starting at 1", func(t *testing.T) {
		repo := repository.NewMemoryRepository()

		first, err := repo.Add(ctx, mustProduct(t, "Notebook", 2500, 10))
		require.NoError(t, err)
		second, err := repo.Add(ctx, mustProduct(t, "Mouse", 50, 25))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID())
		assert.Equal(t, int64(2), second.ID())
	})

	t.Run("Should never reuse an id after delete", func(t *testing.T) {
		repo := repository.NewMemoryRepository()

		p, err := repo.Add(ctx, mustProduct(t, "Notebook", 2500, 10))
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, p.ID()))

		next, err := repo.Add(ctx, mustProduct(t, "Mouse", 50, 25))
		require.NoError(t, err)
		assert.Equal(t, int64(2), next.ID())
	})

	t.Run("Should stamp createdAt when the entity carries none", func(t *testing.T) {
		repo := repository.NewMemoryRepository()

		stored, err := repo.Add(ctx, model.Restore(0, "Keyboard", "", 120, 3, time.Time{}))
		require.NoError(t, err)
		assert.False(t, stored.CreatedAt().IsZero())
	})

	t.Run("Should keep createdAt already set by the entity", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		stored, err := repo.Add(ctx, model.Restore(0, "Keyboard", "", 120, 3, createdAt))
		require.NoError(t, err)
		assert.Equal(t, createdAt, stored.CreatedAt())
	})

	t.Run("Should assign unique ids under concurrent adds", func(t *testing.T) {
		repo := repository.NewMemoryRepository()

		const n = 100
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p, err := repo.Add(ctx, mustProduct(t, "Cable", 9.90, 1))
				assert.NoError(t, err)
				ids <- p.ID()
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]struct{}, n)
		for id := range ids {
			_, dup := seen[id]
			assert.False(t, dup, "duplicate id %d", id)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
	})
}

func TestMemoryRepositoryReads(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list products ordered by id", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		for _, name := range []string{"C", "A", "B"} {
			_, err := repo.Add(ctx, mustProduct(t, name, 10, 1))
			require.NoError(t, err)
		}

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, int64(1), products[0].ID())
		assert.Equal(t, int64(3), products[2].ID())
	})

	t.Run("Should return empty list on a fresh store", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should report not found for a missing id", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)
	})

	t.Run("Should answer existence checks", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Add(ctx, mustProduct(t, "Notebook", 2500, 10))
		require.NoError(t, err)

		ok, err := repo.Exists(ctx, p.ID())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete an existing product once", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		p, err := repo.Add(ctx, mustProduct(t, "Notebook", 2500, 10))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, p.ID()))

		_, err = repo.GetByID(ctx, p.ID())
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)

		ok, err := repo.Exists(ctx, p.ID())
		require.NoError(t, err)
		assert.False(t, ok)

		assert.ErrorIs(t, repo.Delete(ctx, p.ID()), apperr.ErrProductNotFound)
	})
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	repo := repository.NewMemoryRepository()
	p, err := repo.Add(ctx, mustProduct(t, "Notebook", 2500, 10))
	require.NoError(t, err)

	require.NoError(t, p.Update("Notebook Pro", "Dell XPS", 3200, 4))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Notebook Pro", got.Name())
	assert.Equal(t, 3200.0, got.Price())
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	require.NoError(t, repository.Seed(ctx, repo))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Notebook", products[0].Name())
	assert.Equal(t, 2500.00, products[0].Price())
	assert.Equal(t, "Mouse", products[1].Name())
	assert.Equal(t, 25, products[1].Stock())
}
