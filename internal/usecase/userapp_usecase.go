package usecase

import (
	"context"

	"opinator/internal/domain/entity"
)

// UserAppUsecase defines the interface for user-profile business operations.
// There is deliberately no FindByID: profiles are only listed or addressed
// through mutations. Create stamps the email from the verified token; update
// refuses any email change and only the profile owner may apply it.
type UserAppUsecase interface {
	FindAll(ctx context.Context) ([]*entity.UserApp, error)
	FindAllPaged(ctx context.Context, query ListQuery) ([]*entity.UserApp, error)
	Save(ctx context.Context, input *SaveUserAppInput) (*entity.UserApp, error)
	Update(ctx context.Context, input *UpdateUserAppInput) (*entity.UserApp, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// SaveUserAppInput defines the data required to create a user profile.
// The email comes from the verified token, not from the client.
type SaveUserAppInput struct {
	Name     string `json:"name" validate:"required,objname"`
	Lastname string `json:"lastname" validate:"required,objname"`
}

// UpdateUserAppInput defines the data required to update a user profile.
// Email is carried only so the immutability check can compare it against the
// stored row; it is never written.
type UpdateUserAppInput struct {
	UserAppID int64  `json:"userAppId" validate:"required,gt=0"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,objname"`
	Lastname  string `json:"lastname" validate:"required,objname"`
}
