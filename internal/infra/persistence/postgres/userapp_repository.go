package postgres

import (
	"context"

	"opinator/internal/domain/entity"
	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/repository"
	"opinator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userAppSortColumns maps logical sort keys to physical columns.
var userAppSortColumns = map[string]string{
	"userAppId": "id",
	"email":     "email",
	"name":      "name",
	"lastname":  "lastname",
}

// userAppRepository implements the repository.UserAppRepository interface.
type userAppRepository struct {
	db *gorm.DB
}

// NewUserAppRepository is the constructor for userAppRepository.
func NewUserAppRepository(db *gorm.DB) repository.UserAppRepository {
	return &userAppRepository{
		db: db,
	}
}

// FindAll retrieves every user in storage order.
func (repo *userAppRepository) FindAll(ctx context.Context) ([]*entity.UserApp, error) {
	var userModels []*model.UserAppModel

	if err := repo.db.WithContext(ctx).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return toUserAppDomainSlice(userModels), nil
}

// FindAllPaged retrieves one page of users ordered by the query.
func (repo *userAppRepository) FindAllPaged(ctx context.Context, q repository.PageQuery) ([]*entity.UserApp, error) {
	var userModels []*model.UserAppModel

	if err := repo.db.WithContext(ctx).
		Order(orderClause(userAppSortColumns, q, "id")).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users page")
	}

	return toUserAppDomainSlice(userModels), nil
}

// FindByID retrieves a single user by its id.
func (repo *userAppRepository) FindByID(ctx context.Context, id int64) (*entity.UserApp, error) {
	var userM model.UserAppModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserAppDomain(&userM), nil
}

// CountByEmail counts users holding the given email.
func (repo *userAppRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserAppModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by email")
	}

	return count, nil
}

// Save inserts a user when the id is zero and merges the row otherwise.
// The email column is written on insert only; it never changes after creation.
func (repo *userAppRepository) Save(ctx context.Context, user *entity.UserApp) error {
	if user.UserAppID == 0 {
		userM := fromUserAppDomain(user)

		if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
			// The unique index is the backstop for concurrent creators.
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrUniqueValue.WrapMessage("email already in use")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}

		user.UserAppID = userM.ID

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserAppModel{}).
		Where("id = ?", user.UserAppID).
		Updates(map[string]any{
			"name":     user.Name,
			"lastname": user.Lastname,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserAppNotFound
	}

	return nil
}

// DeleteByID removes a user, reporting whether a row was removed.
func (repo *userAppRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.UserAppModel{}, id)
	if err := result.Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// toUserAppDomain maps a GORM model to the domain entity.
func toUserAppDomain(userM *model.UserAppModel) *entity.UserApp {
	return &entity.UserApp{
		UserAppID: userM.ID,
		Email:     userM.Email,
		Name:      userM.Name,
		Lastname:  userM.Lastname,
	}
}

func toUserAppDomainSlice(userModels []*model.UserAppModel) []*entity.UserApp {
	users := make([]*entity.UserApp, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserAppDomain(userM))
	}

	return users
}

// fromUserAppDomain maps a domain entity to its GORM model.
func fromUserAppDomain(user *entity.UserApp) *model.UserAppModel {
	return &model.UserAppModel{
		ID:       user.UserAppID,
		Email:    user.Email,
		Name:     user.Name,
		Lastname: user.Lastname,
	}
}
