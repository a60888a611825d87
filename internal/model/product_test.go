package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/model"
)

func TestNewProduct(t *testing.T) {
	t.Run("Should construct a valid product", func(t *testing.T) {
		p, err := model.NewProduct("Notebook", "Notebook Dell", 2500.00, 10)
		require.NoError(t, err)

		assert.Zero(t, p.ID())
		assert.Equal(t, "Notebook", p.Name())
		assert.Equal(t, "Notebook Dell", p.Description())
		assert.Equal(t, 2500.00, p.Price())
		assert.Equal(t, 10, p.Stock())
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Second)
	})

	t.Run("Should allow empty description and zero stock", func(t *testing.T) {
		// stock 0 is valid at the entity layer even though the transfer
		// validator refuses it; the two layers diverge on purpose.
		p, err := model.NewProduct("Mouse", "", 50, 0)
		require.NoError(t, err)
		assert.Empty(t, p.Description())
		assert.Zero(t, p.Stock())
	})

	t.Run("Should fail fast on the first violated invariant", func(t *testing.T) {
		cases := []struct {
			name        string
			productName string
			description string
			price       float64
			stock       int
			wantErr     error
		}{
			{"empty name", "", "", 10, 1, apperr.ErrNameRequired},
			{"whitespace name", "   ", "", 10, 1, apperr.ErrNameRequired},
			{"name too long", strings.Repeat("a", 101), "", 10, 1, apperr.ErrNameTooLong},
			{"description too long", "Mouse", strings.Repeat("d", 501), 10, 1, apperr.ErrDescriptionTooLong},
			{"zero price", "Mouse", "", 0, 1, apperr.ErrPriceNotPositive},
			{"negative price", "Mouse", "", -5, 1, apperr.ErrPriceNotPositive},
			{"negative stock", "Mouse", "", 10, -1, apperr.ErrNegativeStock},
			{"empty name wins over bad price", "", "", 0, -1, apperr.ErrNameRequired},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewProduct(tc.productName, tc.description, tc.price, tc.stock)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("Should accept boundary lengths", func(t *testing.T) {
		_, err := model.NewProduct(strings.Repeat("n", 100), strings.Repeat("d", 500), 0.01, 0)
		assert.NoError(t, err)
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("Should replace all four fields as a unit", func(t *testing.T) {
		p, err := model.NewProduct("Notebook", "Notebook Dell", 2500, 10)
		require.NoError(t, err)
		createdAt := p.CreatedAt()

		require.NoError(t, p.Update("Notebook Pro", "Dell XPS", 3200, 4))

		assert.Equal(t, "Notebook Pro", p.Name())
		assert.Equal(t, "Dell XPS", p.Description())
		assert.Equal(t, 3200.0, p.Price())
		assert.Equal(t, 4, p.Stock())
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("Should leave the product untouched when any field is invalid", func(t *testing.T) {
		p, err := model.NewProduct("Notebook", "Notebook Dell", 2500, 10)
		require.NoError(t, err)

		err = p.Update("Notebook Pro", "Dell XPS", -1, 4)
		assert.ErrorIs(t, err, apperr.ErrPriceNotPositive)

		assert.Equal(t, "Notebook", p.Name())
		assert.Equal(t, "Notebook Dell", p.Description())
		assert.Equal(t, 2500.0, p.Price())
		assert.Equal(t, 10, p.Stock())
	})
}

func TestRestore(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := model.Restore(7, "Mouse", "Mouse Logitech", 50, 25, createdAt)

	assert.Equal(t, int64(7), p.ID())
	assert.Equal(t, createdAt, p.CreatedAt())
	assert.Equal(t, "Mouse", p.Name())
}
