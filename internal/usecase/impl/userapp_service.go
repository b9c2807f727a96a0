package impl

import (
	"context"
	"log/slog"
	"strconv"

	"opinator/internal/domain/entity"
	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/repository"
	"opinator/internal/domain/service"
	"opinator/internal/usecase"
	"opinator/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userAppService struct {
	userRepo  repository.UserAppRepository
	txManager repository.TransactionManager
	identity  service.IdentitySource
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// UserAppServiceParams holds dependencies for UserAppService, injected by Fx.
type UserAppServiceParams struct {
	fx.In

	UserRepo  repository.UserAppRepository
	TxManager repository.TransactionManager
	Identity  service.IdentitySource
	Publisher service.EventPublisher
	Validate  *validator.Validate
	Logger    *slog.Logger
}

// NewUserAppService creates a new user profile service instance
func NewUserAppService(params UserAppServiceParams) usecase.UserAppUsecase {
	return &userAppService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		identity:  params.Identity,
		publisher: params.Publisher,
		validate:  params.Validate,
		logger:    params.Logger,
	}
}

// FindAll returns every user profile.
func (s *userAppService) FindAll(ctx context.Context) ([]*entity.UserApp, error) {
	return s.userRepo.FindAll(ctx)
}

// FindAllPaged returns one page of user profiles after normalizing the query.
// The page is read on a read-only transaction.
func (s *userAppService) FindAllPaged(ctx context.Context, query usecase.ListQuery) ([]*entity.UserApp, error) {
	pageQuery := normalizePageQuery(query, entity.UserAppSortableFields, entity.DefaultUserAppSort)

	var users []*entity.UserApp
	err := s.txManager.ExecuteReadOnly(ctx, func(f repository.RepositoryFactory) error {
		var err error
		users, err = f.UserAppRepo().FindAllPaged(ctx, pageQuery)

		return err
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Save creates a profile for the caller. The email comes from the verified
// token, and only one profile may exist per email.
func (s *userAppService) Save(ctx context.Context, input *usecase.SaveUserAppInput) (*entity.UserApp, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var created *entity.UserApp
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserAppRepo()

		count, err := repo.CountByEmail(ctx, email)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrUniqueValue.WithDetails("email " + email)
		}

		user := &entity.UserApp{
			Email:    email,
			Name:     input.Name,
			Lastname: input.Lastname,
		}
		if err := repo.Save(ctx, user); err != nil {
			return err
		}
		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("user create yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryUserApp, entity.EventTypeCreated, created)

	return created, nil
}

// Update rewrites the name fields of the caller's own profile. The email can
// never change: an input email differing from the stored one is rejected
// before the ownership check, so the immutability error wins regardless of
// who the caller is.
func (s *userAppService) Update(ctx context.Context, input *usecase.UpdateUserAppInput) (*entity.UserApp, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.UserApp
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserAppRepo()

		existing, err := repo.FindByID(ctx, input.UserAppID)
		if err != nil {
			if errors.Is(err, repository.ErrUserAppNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("user " + strconv.FormatInt(input.UserAppID, 10))
			}

			return err
		}

		if input.Email != existing.Email {
			return domainerrors.ErrEmailImmutable
		}

		if existing.Email != email {
			return domainerrors.ErrOwnershipViolation
		}

		user := &entity.UserApp{
			UserAppID: input.UserAppID,
			Email:     existing.Email,
			Name:      input.Name,
			Lastname:  input.Lastname,
		}
		if err := repo.Save(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("user update yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryUserApp, entity.EventTypeUpdated, updated)

	return updated, nil
}

// DeleteByID removes a user profile. Profiles have no dependent children.
func (s *userAppService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("user id must be positive")
	}

	var removed bool
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserAppRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserAppNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("user " + strconv.FormatInt(id, 10))
			}

			return err
		}

		var err error
		removed, err = repo.DeleteByID(ctx, id)

		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryUserApp, entity.EventTypeDeleted, &entity.UserApp{UserAppID: id})
	}

	return removed, nil
}
