package usecase_test

import (
	"context"
	"testing"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/repository"
	"github.com/prodcat/product-api/internal/repository/memory"
	"github.com/prodcat/product-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of repository.ProductRepository
// used where a test needs to force a specific repository outcome. Happy
// paths use the in-memory repository instead.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id domain.ProductID) (domain.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Bool(1), args.Error(2)
}

func (m *MockRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id domain.ProductID, patch repository.ProductPatch) (domain.Product, bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Bool(1), args.Error(2)
}

func (m *MockRepository) Delete(ctx context.Context, id domain.ProductID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input yields a persisted product with positive id", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewCreateProduct(repo)

		created, err := uc.Execute(ctx, "Laptop", 150000)
		require.NoError(t, err)

		assert.Positive(t, created.ID.Int64())
		assert.Equal(t, "Laptop", created.Name.String())
		assert.Equal(t, int64(150000), created.Price.Int64())
	})

	t.Run("name is trimmed before saving", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewCreateProduct(repo)

		created, err := uc.Execute(ctx, "  Laptop  ", 100)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", created.Name.String())
	})

	t.Run("negative price fails with the price validation error", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewCreateProduct(repo)

		_, err := uc.Execute(ctx, "Laptop", -1)
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("whitespace name fails with the name validation error", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewCreateProduct(repo)

		_, err := uc.Execute(ctx, "   ", 100)
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("persistence errors propagate unchanged", func(t *testing.T) {
		mockRepo := new(MockRepository)
		wrapped := domain.NewPersistenceError("save", assert.AnError)
		mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Product")).Return(domain.Product{}, wrapped)

		uc := usecase.NewCreateProduct(mockRepo)
		_, err := uc.Execute(ctx, "Laptop", 100)

		var persistErr *domain.PersistenceError
		assert.ErrorAs(t, err, &persistErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored product", func(t *testing.T) {
		repo := memory.NewProductRepository()
		created, err := usecase.NewCreateProduct(repo).Execute(ctx, "Laptop", 150000)
		require.NoError(t, err)

		uc := usecase.NewGetProduct(repo)
		found, err := uc.Execute(ctx, created.ID.Int64())
		require.NoError(t, err)

		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Price, found.Price)
	})

	t.Run("missing id fails with not found", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewGetProduct(repo)

		_, err := uc.Execute(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("non-positive id fails validation before the repository", func(t *testing.T) {
		uc := usecase.NewGetProduct(new(MockRepository))

		_, err := uc.Execute(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *memory.ProductRepository {
		t.Helper()
		repo := memory.NewProductRepository()
		create := usecase.NewCreateProduct(repo)
		for _, p := range []struct {
			name  string
			price int64
		}{
			{"Gaming Laptop", 180},
			{"Office Laptop", 150},
			{"Mouse", 30},
		} {
			_, err := create.Execute(ctx, p.name, p.price)
			require.NoError(t, err)
		}
		return repo
	}

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		uc := usecase.NewSearchProducts(seed(t))

		products, err := uc.Execute(ctx, repository.SearchFilter{NameContains: "laptop"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.True(t, p.Name.Contains("laptop"))
		}
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		uc := usecase.NewSearchProducts(seed(t))

		products, err := uc.Execute(ctx, repository.SearchFilter{
			MinPrice: int64Ptr(150),
			MaxPrice: int64Ptr(180),
		})
		require.NoError(t, err)
		require.Len(t, products, 2)
	})

	t.Run("min above max fails with the range error", func(t *testing.T) {
		uc := usecase.NewSearchProducts(new(MockRepository))

		_, err := uc.Execute(ctx, repository.SearchFilter{
			MinPrice: int64Ptr(200),
			MaxPrice: int64Ptr(100),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		assert.Contains(t, err.Error(), "200")
		assert.Contains(t, err.Error(), "100")
	})

	t.Run("negative bound fails validation", func(t *testing.T) {
		uc := usecase.NewSearchProducts(new(MockRepository))

		_, err := uc.Execute(ctx, repository.SearchFilter{MinPrice: int64Ptr(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("no criteria lists everything", func(t *testing.T) {
		uc := usecase.NewSearchProducts(seed(t))

		products, err := uc.Execute(ctx, repository.SearchFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("renaming leaves the price unchanged", func(t *testing.T) {
		repo := memory.NewProductRepository()
		created, err := usecase.NewCreateProduct(repo).Execute(ctx, "Laptop", 150000)
		require.NoError(t, err)

		uc := usecase.NewUpdateProduct(repo)
		updated, err := uc.Execute(ctx, created.ID.Int64(), strPtr("New Laptop"), nil)
		require.NoError(t, err)

		assert.Equal(t, "New Laptop", updated.Name.String())
		assert.Equal(t, created.Price, updated.Price)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("repricing leaves the name unchanged", func(t *testing.T) {
		repo := memory.NewProductRepository()
		created, err := usecase.NewCreateProduct(repo).Execute(ctx, "Laptop", 150000)
		require.NoError(t, err)

		uc := usecase.NewUpdateProduct(repo)
		updated, err := uc.Execute(ctx, created.ID.Int64(), nil, int64Ptr(140000))
		require.NoError(t, err)

		assert.Equal(t, int64(140000), updated.Price.Int64())
		assert.Equal(t, created.Name, updated.Name)
	})

	t.Run("empty patch fails with invalid request", func(t *testing.T) {
		uc := usecase.NewUpdateProduct(new(MockRepository))

		_, err := uc.Execute(ctx, 1, nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("invalid supplied field fails validation", func(t *testing.T) {
		uc := usecase.NewUpdateProduct(new(MockRepository))

		_, err := uc.Execute(ctx, 1, strPtr("  "), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidName)

		_, err = uc.Execute(ctx, 1, nil, int64Ptr(-5))
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("missing id fails with not found", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewUpdateProduct(repo)

		_, err := uc.Execute(ctx, 42, strPtr("New"), nil)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting an existing product succeeds once", func(t *testing.T) {
		repo := memory.NewProductRepository()
		created, err := usecase.NewCreateProduct(repo).Execute(ctx, "Laptop", 150000)
		require.NoError(t, err)

		uc := usecase.NewDeleteProduct(repo)
		require.NoError(t, uc.Execute(ctx, created.ID.Int64()))

		// second delete of the same id
		err = uc.Execute(ctx, created.ID.Int64())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("deleting a missing id fails with not found", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := usecase.NewDeleteProduct(repo)

		err := uc.Execute(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("persistence errors propagate unchanged", func(t *testing.T) {
		mockRepo := new(MockRepository)
		wrapped := domain.NewPersistenceError("delete", assert.AnError)
		mockRepo.On("Delete", ctx, domain.ProductID(1)).Return(false, wrapped)

		uc := usecase.NewDeleteProduct(mockRepo)
		err := uc.Execute(ctx, 1)

		var persistErr *domain.PersistenceError
		assert.ErrorAs(t, err, &persistErr)
		mockRepo.AssertExpectations(t)
	})
}
