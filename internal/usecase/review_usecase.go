package usecase

import (
	"context"

	"opinator/internal/domain/entity"
)

// ReviewUsecase defines the interface for review-related business operations.
// The author email is never part of the inputs: create stamps it from the
// verified token and update/delete assert ownership against the stored row.
type ReviewUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindAllPaged(ctx context.Context, query ListQuery) ([]*entity.Review, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	Save(ctx context.Context, input *SaveReviewInput) (*entity.Review, error)
	Update(ctx context.Context, input *UpdateReviewInput) (*entity.Review, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// SaveReviewInput defines the data required to create a review.
type SaveReviewInput struct {
	ProductID  int64  `json:"productId" validate:"required,gt=0"`
	ReviewText string `json:"reviewText" validate:"required,freetext"`
	Rating     int    `json:"rating" validate:"gte=0"`
}

// UpdateReviewInput defines the data required to update a review.
type UpdateReviewInput struct {
	ReviewID   int64  `json:"reviewId" validate:"required,gt=0"`
	ReviewText string `json:"reviewText" validate:"required,freetext"`
	Rating     int    `json:"rating" validate:"gte=0"`
}
