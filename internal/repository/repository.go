package repository

import (
	"context"

	"github.com/prodcat/product-api/internal/domain"
)

// ProductRepository defines the persistence capability the use cases depend
// on. Absence is reported as a neutral boolean, never as an error, so callers
// can tell "missing" from "failed". Storage failures come back wrapped in
// *domain.PersistenceError.
type ProductRepository interface {
	// Save inserts an unpersisted product and returns it with the assigned
	// ID and server-managed timestamps.
	Save(ctx context.Context, product domain.Product) (domain.Product, error)

	// FindByID returns the stored product, or found=false when the ID has
	// no row.
	FindByID(ctx context.Context, id domain.ProductID) (domain.Product, bool, error)

	// Search returns products matching the filter, ordered by ID ascending.
	Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error)

	// Update applies a partial patch, refreshes updated_at, and returns the
	// updated product, or found=false when the ID has no row.
	Update(ctx context.Context, id domain.ProductID, patch ProductPatch) (domain.Product, bool, error)

	// Delete removes the row and reports whether one existed.
	Delete(ctx context.Context, id domain.ProductID) (bool, error)
}

// ProductPatch carries the optional fields of a partial update. Nil means
// "leave unchanged".
type ProductPatch struct {
	Name  *domain.ProductName
	Price *domain.Price
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
