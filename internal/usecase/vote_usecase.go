package usecase

import (
	"context"

	"opinator/internal/domain/entity"
)

// VoteUsecase defines the interface for vote-related business operations.
// The voter email is never part of the inputs: create stamps it from the
// verified token and update/delete assert ownership against the stored row.
type VoteUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Vote, error)
	FindAllPaged(ctx context.Context, query ListQuery) ([]*entity.Vote, error)
	FindByID(ctx context.Context, id int64) (*entity.Vote, error)
	Save(ctx context.Context, input *SaveVoteInput) (*entity.Vote, error)
	Update(ctx context.Context, input *UpdateVoteInput) (*entity.Vote, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// SaveVoteInput defines the data required to create a vote.
type SaveVoteInput struct {
	ReviewID int64 `json:"reviewId" validate:"required,gt=0"`
	Useful   bool  `json:"useful"`
}

// UpdateVoteInput defines the data required to update a vote.
type UpdateVoteInput struct {
	VoteID int64 `json:"voteId" validate:"required,gt=0"`
	Useful bool  `json:"useful"`
}
