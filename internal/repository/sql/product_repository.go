package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/repository"
)

// ProductRepository implements repository.ProductRepository on top of a
// PostgreSQL products table.
type ProductRepository struct {
	db  *sql.DB
	txn *sql.Tx
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// getExecutor returns the active executor (transaction if exists, otherwise db)
func (r *ProductRepository) getExecutor() dbExecutor {
	if r.txn != nil {
		return r.txn
	}
	return r.db
}

// WithinTransaction executes a function against a repository bound to a
// single database transaction.
func (r *ProductRepository) WithinTransaction(ctx context.Context, fn func(repo repository.ProductRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txRepo := &ProductRepository{
		db:  r.db,
		txn: tx,
	}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Save inserts a new product row. ID and timestamps come back from the
// database so the returned entity reflects what was stored.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	query := `INSERT INTO products (name, price)
	          VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return domain.Product{}, domain.NewPersistenceError("save", fmt.Errorf("failed to prepare insert statement: %w", err))
	}
	defer stmt.Close()

	var id int64
	err = stmt.QueryRowContext(ctx, product.Name.String(), product.Price.Int64()).
		Scan(&id, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return domain.Product{}, domain.NewPersistenceError("save", fmt.Errorf("failed to insert product: %w", err))
	}

	product.ID = domain.ProductID(id)
	return product, nil
}

// FindByID retrieves a single product by ID. Absence is reported through the
// boolean, not an error.
func (r *ProductRepository) FindByID(ctx context.Context, id domain.ProductID) (domain.Product, bool, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM products WHERE id = $1`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return domain.Product{}, false, domain.NewPersistenceError("find", fmt.Errorf("failed to prepare select statement: %w", err))
	}
	defer stmt.Close()

	product, err := scanProduct(stmt.QueryRowContext(ctx, id.Int64()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, domain.NewPersistenceError("find", fmt.Errorf("failed to query product: %w", err))
	}

	return product, true, nil
}

// Search retrieves products matching the filter, ordered by id ascending for
// deterministic offset pagination.
func (r *ProductRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]domain.Product, error) {
	filter = filter.Normalize()

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT id, name, price, created_at, updated_at FROM products WHERE 1=1")

	var args []interface{}
	argIndex := 1

	if filter.NameContains != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.NameContains)
		argIndex++
	}
	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND price >= $%d", argIndex))
		args = append(args, *filter.MinPrice)
		argIndex++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND price <= $%d", argIndex))
		args = append(args, *filter.MaxPrice)
		argIndex++
	}

	queryBuilder.WriteString(" ORDER BY id ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1))
	args = append(args, filter.Limit, filter.Skip)

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, queryBuilder.String())
	if err != nil {
		return nil, domain.NewPersistenceError("search", fmt.Errorf("failed to prepare select statement: %w", err))
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("search", fmt.Errorf("failed to query products: %w", err))
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("search", fmt.Errorf("failed to scan product: %w", err))
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("search", fmt.Errorf("error iterating rows: %w", err))
	}

	return products, nil
}

// Update applies the non-nil patch fields and refreshes updated_at in a
// single statement.
func (r *ProductRepository) Update(ctx context.Context, id domain.ProductID, patch repository.ProductPatch) (domain.Product, bool, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("UPDATE products SET updated_at = now()")

	var args []interface{}
	argIndex := 1

	if patch.Name != nil {
		queryBuilder.WriteString(fmt.Sprintf(", name = $%d", argIndex))
		args = append(args, patch.Name.String())
		argIndex++
	}
	if patch.Price != nil {
		queryBuilder.WriteString(fmt.Sprintf(", price = $%d", argIndex))
		args = append(args, patch.Price.Int64())
		argIndex++
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d", argIndex))
	args = append(args, id.Int64())
	queryBuilder.WriteString(" RETURNING id, name, price, created_at, updated_at")

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, queryBuilder.String())
	if err != nil {
		return domain.Product{}, false, domain.NewPersistenceError("update", fmt.Errorf("failed to prepare update statement: %w", err))
	}
	defer stmt.Close()

	product, err := scanProduct(stmt.QueryRowContext(ctx, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, domain.NewPersistenceError("update", fmt.Errorf("failed to update product: %w", err))
	}

	return product, true, nil
}

// Delete removes a product row and reports whether one existed.
func (r *ProductRepository) Delete(ctx context.Context, id domain.ProductID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return false, domain.NewPersistenceError("delete", fmt.Errorf("failed to prepare delete statement: %w", err))
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id.Int64())
	if err != nil {
		return false, domain.NewPersistenceError("delete", fmt.Errorf("failed to delete product: %w", err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, domain.NewPersistenceError("delete", fmt.Errorf("failed to get rows affected: %w", err))
	}

	return rowsAffected > 0, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		product domain.Product
		id      int64
		name    string
		price   int64
	)
	err := row.Scan(&id, &name, &price, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = domain.ProductID(id)
	product.Name = domain.ProductName(name)
	product.Price = domain.Price(price)
	return product, nil
}
