package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MaxNameLength is the longest product name accepted by the domain.
	MaxNameLength = 1000

	// MaxPrice is the largest price (in minor currency units) accepted by the domain.
	MaxPrice = 999_999_999
)

// ProductID identifies a persisted product. The zero value means the product
// has not been assigned an identifier by storage yet.
type ProductID int64

// NewProductID validates a raw identifier coming from the outside (path
// parameters, stored rows) into a ProductID.
func NewProductID(raw int64) (ProductID, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidID, raw)
	}
	return ProductID(raw), nil
}

// Int64 returns the underlying identifier value.
func (id ProductID) Int64() int64 { return int64(id) }

// IsZero reports whether the product has no identifier assigned yet.
func (id ProductID) IsZero() bool { return id == 0 }

// ProductName is a validated, trimmed product name.
type ProductName string

// NewProductName trims and validates a raw name.
func NewProductName(raw string) (ProductName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(trimmed) > MaxNameLength {
		return "", fmt.Errorf("%w: name cannot exceed %d characters", ErrInvalidName, MaxNameLength)
	}
	return ProductName(trimmed), nil
}

// String returns the name as plain text.
func (n ProductName) String() string { return string(n) }

// Contains reports whether the name contains text, case-insensitively.
func (n ProductName) Contains(text string) bool {
	return strings.Contains(strings.ToLower(string(n)), strings.ToLower(text))
}

// Price is a validated product price in minor currency units.
type Price int64

// NewPrice validates a raw price value.
func NewPrice(raw int64) (Price, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: price cannot be negative, got %d", ErrInvalidPrice, raw)
	}
	if raw > MaxPrice {
		return 0, fmt.Errorf("%w: price cannot exceed %d, got %d", ErrInvalidPrice, MaxPrice, raw)
	}
	return Price(raw), nil
}

// Int64 returns the underlying price value.
func (p Price) Int64() int64 { return int64(p) }

// InRange reports whether the price lies within [min, max], inclusive.
func (p Price) InRange(min, max int64) bool {
	return int64(p) >= min && int64(p) <= max
}

// Product is the sole aggregate of the service. Identity and timestamps are
// assigned by the persistence layer; Name and Price carry their own
// invariants via the value-object constructors.
type Product struct {
	ID        ProductID
	Name      ProductName
	Price     Price
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct builds an unpersisted product from raw input. The returned
// product has no ID; Save assigns one.
func NewProduct(name string, price int64) (Product, error) {
	n, err := NewProductName(name)
	if err != nil {
		return Product{}, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return Product{}, err
	}
	now := time.Now().UTC()
	return Product{
		Name:      n,
		Price:     p,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename returns a copy of the product with the name replaced and UpdatedAt
// refreshed.
func (p Product) Rename(name string) (Product, error) {
	n, err := NewProductName(name)
	if err != nil {
		return Product{}, err
	}
	p.Name = n
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

// Reprice returns a copy of the product with the price replaced and UpdatedAt
// refreshed.
func (p Product) Reprice(price int64) (Product, error) {
	v, err := NewPrice(price)
	if err != nil {
		return Product{}, err
	}
	p.Price = v
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}
