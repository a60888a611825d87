package service

import (
	"context"
	"fmt"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/model"
	"github.com/angularstore/catalog/internal/repository"
)

type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

type UpdateProductParams struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// ProductService orchestrates entity operations over the persistence gateway.
// Transfer-level validation happens before it is called; the entity invariants
// are re-checked here as the inner defense.
type ProductService interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, params CreateProductParams) (model.Product, error)
	Update(ctx context.Context, id int64, params UpdateProductParams) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository get all: %w", err)
	}

	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get by id: %w", err)
	}

	return product, nil
}

func (s *productService) Create(ctx context.Context, params CreateProductParams) (model.Product, error) {
	product, err := model.NewProduct(params.Name, params.Description, params.Price, params.Stock)
	if err != nil {
		return model.Product{}, fmt.Errorf("new product: %w", err)
	}

	created, err := s.productRepo.Add(ctx, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository add: %w", err)
	}

	return created, nil
}

func (s *productService) Update(ctx context.Context, id int64, params UpdateProductParams) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product repository get by id: %w", err)
	}

	if err := product.Update(params.Name, params.Description, params.Price, params.Stock); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("product repository update: %w", err)
	}

	return nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	exists, err := s.productRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("product repository exists: %w", err)
	}
	if !exists {
		return apperr.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("product repository delete: %w", err)
	}

	return nil
}
