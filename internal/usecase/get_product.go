package usecase

import (
	"context"
	"fmt"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/repository"
)

// GetProduct fetches a single product by its identifier.
type GetProduct struct {
	repo repository.ProductRepository
}

// NewGetProduct creates the use case with its repository dependency.
func NewGetProduct(repo repository.ProductRepository) *GetProduct {
	return &GetProduct{repo: repo}
}

// Execute validates the raw identifier and looks the product up. Absence is
// surfaced as ErrProductNotFound carrying the offending id.
func (uc *GetProduct) Execute(ctx context.Context, rawID int64) (domain.Product, error) {
	id, err := domain.NewProductID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	product, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !found {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, rawID)
	}

	return product, nil
}
