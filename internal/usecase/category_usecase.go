package usecase

import (
	"context"

	"opinator/internal/domain/entity"
)

// CategoryUsecase defines the interface for category-related business operations.
type CategoryUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindAllPaged(ctx context.Context, query ListQuery) ([]*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	Save(ctx context.Context, input *SaveCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// SaveCategoryInput defines the data required to create a category.
type SaveCategoryInput struct {
	CategoryName string `json:"categoryName" validate:"required,objname"`
}

// UpdateCategoryInput defines the data required to update a category.
type UpdateCategoryInput struct {
	CategoryID   int64  `json:"categoryId" validate:"required,gt=0"`
	CategoryName string `json:"categoryName" validate:"required,objname"`
}
