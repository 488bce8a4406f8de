package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/metrics"
	"github.com/prodcat/product-api/internal/repository"
)

// UpdateProduct applies a partial change to an existing product. Nil fields
// are left untouched.
type UpdateProduct struct {
	repo repository.ProductRepository
}

// NewUpdateProduct creates the use case with its repository dependency.
func NewUpdateProduct(repo repository.ProductRepository) *UpdateProduct {
	return &UpdateProduct{repo: repo}
}

// Execute validates the id and the supplied fields, then patches the row.
// A request with neither field fails with ErrInvalidRequest.
func (uc *UpdateProduct) Execute(ctx context.Context, rawID int64, name *string, price *int64) (domain.Product, error) {
	id, err := domain.NewProductID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	if name == nil && price == nil {
		return domain.Product{}, fmt.Errorf("%w: at least one of name or price must be provided", domain.ErrInvalidRequest)
	}

	var patch repository.ProductPatch
	if name != nil {
		n, err := domain.NewProductName(*name)
		if err != nil {
			return domain.Product{}, err
		}
		patch.Name = &n
	}
	if price != nil {
		p, err := domain.NewPrice(*price)
		if err != nil {
			return domain.Product{}, err
		}
		patch.Price = &p
	}

	updated, found, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Product{}, err
	}
	if !found {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, rawID)
	}

	metrics.ProductsUpdated.Inc()
	slog.Info("product updated", slog.Int64("id", updated.ID.Int64()))
	return updated, nil
}
