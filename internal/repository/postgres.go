package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/model"
	"github.com/angularstore/catalog/internal/storage/db"
)

// PostgresRepository is the pgx-backed ProductRepository. Identifier
// assignment is delegated to the products BIGSERIAL sequence, which is
// monotonic and never reused.
type PostgresRepository struct {
	db db.DB
}

// compile-time assertion
var _ ProductRepository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a PostgresRepository over the given client.
func NewPostgresRepository(db db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, price, stock, created_at FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, price, stock, created_at FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ErrProductNotFound
		}
		return model.Product{}, fmt.Errorf("scan product: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Add(ctx context.Context, product model.Product) (model.Product, error) {
	createdAt := product.CreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id int64
	if err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		product.Name(), product.Description(), product.Price(), product.Stock(), createdAt,
	).Scan(&id); err != nil {
		return model.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return model.Restore(id, product.Name(), product.Description(), product.Price(), product.Stock(), createdAt), nil
}

func (r *PostgresRepository) Update(ctx context.Context, product model.Product) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE products SET name = $1, description = $2, price = $3, stock = $4 WHERE id = $5`,
		product.Name(), product.Description(), product.Price(), product.Stock(), product.ID(),
	); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}

	return exists, nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		id          int64
		name        string
		description string
		price       float64
		stock       int
		createdAt   time.Time
	)
	if err := row.Scan(&id, &name, &description, &price, &stock, &createdAt); err != nil {
		return model.Product{}, err
	}

	return model.Restore(id, name, description, price, stock, createdAt), nil
}
