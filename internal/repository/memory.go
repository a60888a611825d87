package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/model"
)

// MemoryRepository is a mutex-guarded in-memory ProductRepository. The id
// counter belongs to the instance and is never reused, so ids stay unique for
// the lifetime of the gateway even across deletes.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	nextID   int64
}

// compile-time assertion
var _ ProductRepository = (*MemoryRepository)(nil)

// NewMemoryRepository constructs an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: make(map[int64]model.Product),
	}
}

func (s *MemoryRepository) GetAll(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID() < products[j].ID() })

	return products, nil
}

func (s *MemoryRepository) GetByID(_ context.Context, id int64) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}
	return p, nil
}

func (s *MemoryRepository) Add(_ context.Context, product model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++

	createdAt := product.CreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	stored := model.Restore(
		s.nextID,
		product.Name(),
		product.Description(),
		product.Price(),
		product.Stock(),
		createdAt,
	)
	s.products[stored.ID()] = stored

	return stored, nil
}

func (s *MemoryRepository) Update(_ context.Context, product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID()] = product
	return nil
}

func (s *MemoryRepository) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return apperr.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.products[id]
	return ok, nil
}

// IsHealthy implements the storage health check; an in-process map is always
// reachable.
func (s *MemoryRepository) IsHealthy(_ context.Context) (bool, error) {
	return true, nil
}

// Seed inserts the initial catalog rows the application ships with.
func Seed(ctx context.Context, repo ProductRepository) error {
	rows := []struct {
		name, description string
		price             float64
		stock             int
	}{
		{"Notebook", "Notebook Dell", 2500.00, 10},
		{"Mouse", "Mouse Logitech", 50.00, 25},
	}

	for _, row := range rows {
		p, err := model.NewProduct(row.name, row.description, row.price, row.stock)
		if err != nil {
			return fmt.Errorf("new product %q: %w", row.name, err)
		}
		if _, err := repo.Add(ctx, p); err != nil {
			return fmt.Errorf("add product %q: %w", row.name, err)
		}
	}

	return nil
}
