package repository

import (
	"context"

	"github.com/angularstore/catalog/internal/model"
)

// ProductRepository is the persistence gateway for the product aggregate.
//
// Add owns identifier assignment (monotonically increasing per gateway
// instance) and stamps createdAt when the entity carries none. Update is
// permissive about missing ids; callers are expected to check existence first.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Add(ctx context.Context, product model.Product) (model.Product, error)
	Update(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
