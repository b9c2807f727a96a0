package usecase

import (
	"context"

	"opinator/internal/domain/entity"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindAllPaged(ctx context.Context, query ListQuery) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Save(ctx context.Context, input *SaveProductInput) (*entity.Product, error)
	Update(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// SaveProductInput defines the data required to create a product.
type SaveProductInput struct {
	ProductName        string `json:"productName" validate:"required,objname"`
	ProductDescription string `json:"productDescription" validate:"omitempty,freetext"`
	CategoryID         int64  `json:"categoryId" validate:"required,gt=0"`
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	ProductID          int64  `json:"productId" validate:"required,gt=0"`
	ProductName        string `json:"productName" validate:"required,objname"`
	ProductDescription string `json:"productDescription" validate:"omitempty,freetext"`
	CategoryID         int64  `json:"categoryId" validate:"required,gt=0"`
}
