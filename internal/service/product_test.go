package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/repository"
	"github.com/angularstore/catalog/internal/service"
)

func newService(t *testing.T) (service.ProductService, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return service.NewProductService(repo), repo
}

func storedCount(t *testing.T, repo *repository.MemoryRepository) int {
	t.Helper()
	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	return len(products)
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create and echo the input with an assigned id", func(t *testing.T) {
		svc, _ := newService(t)

		created, err := svc.Create(ctx, service.CreateProductParams{
			Name:        "Notebook",
			Description: "Dell",
			Price:       2500.00,
			Stock:       10,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID())
		assert.Equal(t, "Notebook", created.Name())
		assert.Equal(t, "Dell", created.Description())
		assert.Equal(t, 2500.00, created.Price())
		assert.Equal(t, 10, created.Stock())
		assert.False(t, created.CreatedAt().IsZero())
	})

	t.Run("Should persist nothing when an invariant is violated", func(t *testing.T) {
		svc, repo := newService(t)

		_, err := svc.Create(ctx, service.CreateProductParams{Name: "", Price: 50, Stock: 5})
		assert.ErrorIs(t, err, apperr.ErrNameRequired)
		assert.Zero(t, storedCount(t, repo))

		_, err = svc.Create(ctx, service.CreateProductParams{Name: "Mouse", Price: 0, Stock: 25})
		assert.ErrorIs(t, err, apperr.ErrPriceNotPositive)
		assert.Zero(t, storedCount(t, repo))
	})

	t.Run("Should assign a fresh id per call even for identical payloads", func(t *testing.T) {
		svc, _ := newService(t)
		params := service.CreateProductParams{Name: "Mouse", Price: 50, Stock: 25}

		first, err := svc.Create(ctx, params)
		require.NoError(t, err)
		second, err := svc.Create(ctx, params)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestProductServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round trip create then get", func(t *testing.T) {
		svc, _ := newService(t)

		created, err := svc.Create(ctx, service.CreateProductParams{
			Name: "Notebook", Description: "Dell", Price: 2500, Stock: 10,
		})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Should report not found for a missing id", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)
	})

	t.Run("Should list an empty catalog without error", func(t *testing.T) {
		svc, _ := newService(t)
		products, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail not found for a missing id and change nothing", func(t *testing.T) {
		svc, repo := newService(t)

		err := svc.Update(ctx, 999, service.UpdateProductParams{
			Name: "Notebook", Price: 10, Stock: 1,
		})
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)
		assert.Zero(t, storedCount(t, repo))
	})

	t.Run("Should overwrite all four fields together", func(t *testing.T) {
		svc, _ := newService(t)
		created, err := svc.Create(ctx, service.CreateProductParams{
			Name: "Notebook", Description: "Dell", Price: 2500, Stock: 10,
		})
		require.NoError(t, err)

		require.NoError(t, svc.Update(ctx, created.ID(), service.UpdateProductParams{
			Name: "Notebook Pro", Description: "Dell XPS", Price: 3200, Stock: 4,
		}))

		got, err := svc.GetByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Notebook Pro", got.Name())
		assert.Equal(t, "Dell XPS", got.Description())
		assert.Equal(t, 3200.0, got.Price())
		assert.Equal(t, 4, got.Stock())
		assert.Equal(t, created.CreatedAt(), got.CreatedAt())
	})

	t.Run("Should surface the violated invariant and keep the stored entity", func(t *testing.T) {
		svc, _ := newService(t)
		created, err := svc.Create(ctx, service.CreateProductParams{
			Name: "Notebook", Price: 2500, Stock: 10,
		})
		require.NoError(t, err)

		err = svc.Update(ctx, created.ID(), service.UpdateProductParams{
			Name: "", Price: 2500, Stock: 10,
		})
		assert.ErrorIs(t, err, apperr.ErrNameRequired)

		got, err := svc.GetByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Notebook", got.Name())
	})
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail not found for a missing id", func(t *testing.T) {
		svc, _ := newService(t)
		assert.ErrorIs(t, svc.Delete(ctx, 999), apperr.ErrProductNotFound)
	})

	t.Run("Should delete once and fail on the second call", func(t *testing.T) {
		svc, _ := newService(t)
		created, err := svc.Create(ctx, service.CreateProductParams{
			Name: "Mouse", Price: 50, Stock: 25,
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID()))

		_, err = svc.GetByID(ctx, created.ID())
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, created.ID()), apperr.ErrProductNotFound)
	})
}
