package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/angularstore/catalog/internal/apperr"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// Product is the catalog aggregate. Its invariants hold for every value
// obtained through NewProduct or Update; id and createdAt never change after
// construction.
type Product struct {
	id          int64
	name        string
	description string
	price       float64
	stock       int
	createdAt   time.Time
}

// NewProduct constructs a product, validating every field. The id is zero
// until the persistence gateway assigns one.
func NewProduct(name, description string, price float64, stock int) (Product, error) {
	var p Product
	if err := p.setAll(name, description, price, stock); err != nil {
		return Product{}, err
	}
	p.createdAt = time.Now().UTC()
	return p, nil
}

// Restore rebuilds a product from already-persisted fields without re-running
// invariant checks. Only storage implementations should call it.
func Restore(id int64, name, description string, price float64, stock int, createdAt time.Time) Product {
	return Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   createdAt,
	}
}

// Update replaces the four mutable fields as a unit. On a violated invariant
// no field is changed.
func (p *Product) Update(name, description string, price float64, stock int) error {
	return p.setAll(name, description, price, stock)
}

func (p *Product) setAll(name, description string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return apperr.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return apperr.ErrNameTooLong
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return apperr.ErrDescriptionTooLong
	}
	if price <= 0 {
		return apperr.ErrPriceNotPositive
	}
	if stock < 0 {
		return apperr.ErrNegativeStock
	}

	p.name = name
	p.description = description
	p.price = price
	p.stock = stock
	return nil
}

func (p Product) ID() int64            { return p.id }
func (p Product) Name() string         { return p.name }
func (p Product) Description() string  { return p.description }
func (p Product) Price() float64       { return p.price }
func (p Product) Stock() int           { return p.stock }
func (p Product) CreatedAt() time.Time { return p.createdAt }
