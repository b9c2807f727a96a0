package repository

import (
	"context"

	"opinator/internal/domain/entity"
	"opinator/internal/errors"
)

// ErrUserAppNotFound is returned when a user id does not resolve.
var ErrUserAppNotFound = errors.New("user not found")

// UserAppRepository defines user-profile database operations.
type UserAppRepository interface {
	// FindAll retrieves every user in storage order.
	FindAll(ctx context.Context) ([]*entity.UserApp, error)

	// FindAllPaged retrieves one page of users ordered by the query.
	FindAllPaged(ctx context.Context, q PageQuery) ([]*entity.UserApp, error)

	// FindByID retrieves a single user, returning ErrUserAppNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.UserApp, error)

	// CountByEmail counts users holding the given email.
	CountByEmail(ctx context.Context, email string) (int64, error)

	// Save inserts a user when UserAppID is zero and fills in the generated
	// id; with a non-zero id it merges the row instead.
	Save(ctx context.Context, user *entity.UserApp) error

	// DeleteByID removes a user, reporting whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
