// Package usecase contains the application operations. Each use case is a
// stateless struct composing domain validation with a single repository call;
// validation errors and persistence errors propagate to the caller unchanged.
package usecase

import (
	"context"
	"log/slog"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/metrics"
	"github.com/prodcat/product-api/internal/repository"
)

// CreateProduct persists a new product built from raw input.
type CreateProduct struct {
	repo repository.ProductRepository
}

// NewCreateProduct creates the use case with its repository dependency.
func NewCreateProduct(repo repository.ProductRepository) *CreateProduct {
	return &CreateProduct{repo: repo}
}

// Execute validates the input via the domain constructors and saves the
// product. The returned entity carries the storage-assigned ID.
func (uc *CreateProduct) Execute(ctx context.Context, name string, price int64) (domain.Product, error) {
	product, err := domain.NewProduct(name, price)
	if err != nil {
		return domain.Product{}, err
	}

	created, err := uc.repo.Save(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product created", slog.Int64("id", created.ID.Int64()), slog.String("name", created.Name.String()))
	return created, nil
}
