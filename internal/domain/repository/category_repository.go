package repository

import (
	"context"

	"opinator/internal/domain/entity"
	"opinator/internal/errors"
)

// ErrCategoryNotFound is returned when a category id does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines category-related database operations.
type CategoryRepository interface {
	// FindAll retrieves every category in storage order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindAllPaged retrieves one page of categories ordered by the query.
	FindAllPaged(ctx context.Context, q PageQuery) ([]*entity.Category, error)

	// FindByID retrieves a single category, returning ErrCategoryNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// CountByName counts categories holding the given name, excluding the row
	// with excludeID (pass 0 on create paths).
	CountByName(ctx context.Context, name string, excludeID int64) (int64, error)

	// Save inserts a new category and fills in the generated id.
	Save(ctx context.Context, category *entity.Category) error

	// Update persists the mutable fields of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// DeleteByID removes a category, reporting whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
