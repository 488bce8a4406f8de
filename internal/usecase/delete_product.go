package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/metrics"
	"github.com/prodcat/product-api/internal/repository"
)

// DeleteProduct hard-deletes a product by its identifier.
type DeleteProduct struct {
	repo repository.ProductRepository
}

// NewDeleteProduct creates the use case with its repository dependency.
func NewDeleteProduct(repo repository.ProductRepository) *DeleteProduct {
	return &DeleteProduct{repo: repo}
}

// Execute deletes the row. Deleting an id with no row fails with
// ErrProductNotFound, so a second delete of the same id fails the same way.
func (uc *DeleteProduct) Execute(ctx context.Context, rawID int64) error {
	id, err := domain.NewProductID(rawID)
	if err != nil {
		return err
	}

	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, rawID)
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.Int64("id", rawID))
	return nil
}
