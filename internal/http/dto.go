package http

import (
	"time"

	"github.com/angularstore/catalog/internal/model"
)

// CreateProductRequest is the transfer shape for product creation. Price and
// Stock are pointers so a missing field and a zero value report different
// violations.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"notblank,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Stock       *int     `json:"stock" validate:"required,gt=0"`
}

// UpdateProductRequest is the transfer shape for a full product overwrite.
type UpdateProductRequest struct {
	Name        string   `json:"name" validate:"notblank,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Stock       *int     `json:"stock" validate:"required,gt=0"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       product.Price(),
		Stock:       product.Stock(),
		CreatedAt:   product.CreatedAt(),
	}
}
