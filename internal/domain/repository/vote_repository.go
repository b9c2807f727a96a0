package repository

import (
	"context"

	"opinator/internal/domain/entity"
	"opinator/internal/errors"
)

// ErrVoteNotFound is returned when a vote id does not resolve.
var ErrVoteNotFound = errors.New("vote not found")

// VoteRepository defines vote-related database operations.
type VoteRepository interface {
	// FindAll retrieves every vote in storage order.
	FindAll(ctx context.Context) ([]*entity.Vote, error)

	// FindAllPaged retrieves one page of votes ordered by the query.
	FindAllPaged(ctx context.Context, q PageQuery) ([]*entity.Vote, error)

	// FindByID retrieves a single vote, returning ErrVoteNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Vote, error)

	// CountByReviewAndEmail counts votes by one voter on one review.
	// Used by the one-vote-per-user guard.
	CountByReviewAndEmail(ctx context.Context, reviewID int64, email string) (int64, error)

	// CountByReview counts the votes attached to a review. Used by the review
	// delete guard.
	CountByReview(ctx context.Context, reviewID int64) (int64, error)

	// Save inserts a new vote and fills in the generated id.
	Save(ctx context.Context, vote *entity.Vote) error

	// Update persists the mutable fields of an existing vote.
	Update(ctx context.Context, vote *entity.Vote) error

	// DeleteByID removes a vote, reporting whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
