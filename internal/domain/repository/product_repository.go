package repository

import (
	"context"

	"opinator/internal/domain/entity"
	"opinator/internal/errors"
)

// ErrProductNotFound is returned when a product id does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product-related database operations.
type ProductRepository interface {
	// FindAll retrieves every product in storage order.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindAllPaged retrieves one page of products ordered by the query.
	FindAllPaged(ctx context.Context, q PageQuery) ([]*entity.Product, error)

	// FindByID retrieves a single product, returning ErrProductNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// CountByName counts products holding the given name, excluding the row
	// with excludeID (pass 0 on create paths).
	CountByName(ctx context.Context, name string, excludeID int64) (int64, error)

	// CountByCategory counts the products belonging to a category. Used by the
	// category delete guard.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// Save inserts a new product and fills in the generated id.
	Save(ctx context.Context, product *entity.Product) error

	// Update persists the mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DeleteByID removes a product, reporting whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
