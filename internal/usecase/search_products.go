package usecase

import (
	"context"
	"fmt"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/metrics"
	"github.com/prodcat/product-api/internal/repository"
)

// SearchProducts lists products matching an optional name substring and
// price range, with offset pagination.
type SearchProducts struct {
	repo repository.ProductRepository
}

// NewSearchProducts creates the use case with its repository dependency.
func NewSearchProducts(repo repository.ProductRepository) *SearchProducts {
	return &SearchProducts{repo: repo}
}

// Execute checks the price bounds and delegates to the repository. A filter
// with min above max fails with ErrInvalidRange naming both bounds.
func (uc *SearchProducts) Execute(ctx context.Context, filter repository.SearchFilter) ([]domain.Product, error) {
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return nil, fmt.Errorf("%w: min_price cannot be negative, got %d", domain.ErrInvalidPrice, *filter.MinPrice)
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, fmt.Errorf("%w: max_price cannot be negative, got %d", domain.ErrInvalidPrice, *filter.MaxPrice)
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%w: min_price %d is greater than max_price %d",
			domain.ErrInvalidRange, *filter.MinPrice, *filter.MaxPrice)
	}

	products, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	metrics.ProductSearches.Inc()
	return products, nil
}
