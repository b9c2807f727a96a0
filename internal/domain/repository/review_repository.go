package repository

import (
	"context"

	"opinator/internal/domain/entity"
	"opinator/internal/errors"
)

// ErrReviewNotFound is returned when a review id does not resolve.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines review-related database operations.
type ReviewRepository interface {
	// FindAll retrieves every review in storage order.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindAllPaged retrieves one page of reviews ordered by the query.
	FindAllPaged(ctx context.Context, q PageQuery) ([]*entity.Review, error)

	// FindByID retrieves a single review, returning ErrReviewNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// CountByProductAndEmail counts reviews by one author on one product.
	// Used by the one-review-per-user guard.
	CountByProductAndEmail(ctx context.Context, productID int64, email string) (int64, error)

	// CountByProduct counts the reviews attached to a product. Used by the
	// product delete guard.
	CountByProduct(ctx context.Context, productID int64) (int64, error)

	// Save inserts a new review and fills in the generated id.
	Save(ctx context.Context, review *entity.Review) error

	// Update persists the mutable fields of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// DeleteByID removes a review, reporting whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
