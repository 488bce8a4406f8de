// Package memory provides an in-memory ProductRepository. It backs the
// use-case and HTTP tests and is substitutable for the SQL adapter anywhere
// a throwaway store is enough.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/repository"
)

// ProductRepository keeps products in a map guarded by a RWMutex and assigns
// IDs from a monotonically increasing counter, mirroring a BIGSERIAL column.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[domain.ProductID]domain.Product
	nextID   int64
}

// NewProductRepository creates an empty in-memory repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[domain.ProductID]domain.Product),
	}
}

// Save stores a new product and assigns the next ID and fresh timestamps.
func (r *ProductRepository) Save(_ context.Context, product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	product.ID = domain.ProductID(r.nextID)
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = product
	return product, nil
}

// FindByID returns the stored product, or found=false when absent.
func (r *ProductRepository) FindByID(_ context.Context, id domain.ProductID) (domain.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	return product, ok, nil
}

// Search filters, orders by ID ascending, and applies offset pagination.
func (r *ProductRepository) Search(_ context.Context, filter repository.SearchFilter) ([]domain.Product, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if filter.Matches(product) {
			matched = append(matched, product)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Skip >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Skip:]
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Update applies the patch and refreshes UpdatedAt.
func (r *ProductRepository) Update(_ context.Context, id domain.ProductID, patch repository.ProductPatch) (domain.Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return domain.Product{}, false, nil
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	product.UpdatedAt = time.Now().UTC()
	r.products[id] = product
	return product, true, nil
}

// Delete removes the product and reports whether it existed.
func (r *ProductRepository) Delete(_ context.Context, id domain.ProductID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	delete(r.products, id)
	return ok, nil
}
