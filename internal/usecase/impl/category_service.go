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

type categoryService struct {
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	validate     *validator.Validate
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	TxManager    repository.TransactionManager
	Publisher    service.EventPublisher
	Validate     *validator.Validate
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		validate:     params.Validate,
		logger:       params.Logger,
	}
}

// FindAll returns every category.
func (s *categoryService) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

// FindAllPaged returns one page of categories after normalizing the query.
// The page is read on a read-only transaction.
func (s *categoryService) FindAllPaged(ctx context.Context, query usecase.ListQuery) ([]*entity.Category, error) {
	pageQuery := normalizePageQuery(query, entity.CategorySortableFields, entity.DefaultCategorySort)

	var categories []*entity.Category
	err := s.txManager.ExecuteReadOnly(ctx, func(f repository.RepositoryFactory) error {
		var err error
		categories, err = f.CategoryRepo().FindAllPaged(ctx, pageQuery)

		return err
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// FindByID returns a single category.
func (s *categoryService) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category id must be positive")
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WithDetails("category " + strconv.FormatInt(id, 10))
		}

		return nil, err
	}

	return category, nil
}

// Save creates a category after checking the name is unused.
func (s *categoryService) Save(ctx context.Context, input *usecase.SaveCategoryInput) (*entity.Category, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	var created *entity.Category
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.CategoryRepo()

		count, err := repo.CountByName(ctx, input.CategoryName, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrUniqueValue.WithDetails("category name " + input.CategoryName)
		}

		category := &entity.Category{CategoryName: input.CategoryName}
		if err := repo.Save(ctx, category); err != nil {
			return err
		}
		created = category

		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("category create yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryCategory, entity.EventTypeCreated, created)

	return created, nil
}

// Update renames a category after re-checking name uniqueness.
func (s *categoryService) Update(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	var updated *entity.Category
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.CategoryRepo()

		if _, err := repo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("category " + strconv.FormatInt(input.CategoryID, 10))
			}

			return err
		}

		// Another row holding the name is a conflict; the row itself is not.
		count, err := repo.CountByName(ctx, input.CategoryName, input.CategoryID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrUniqueValue.WithDetails("category name " + input.CategoryName)
		}

		category := &entity.Category{
			CategoryID:   input.CategoryID,
			CategoryName: input.CategoryName,
		}
		if err := repo.Update(ctx, category); err != nil {
			return err
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("category update yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryCategory, entity.EventTypeUpdated, updated)

	return updated, nil
}

// DeleteByID removes a category once it owns no products. A delete that did
// not verifiably remove a row reports false without failing.
func (s *categoryService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("category id must be positive")
	}

	var removed bool
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.CategoryRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("category " + strconv.FormatInt(id, 10))
			}

			return err
		}

		productCount, err := f.ProductRepo().CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if productCount > 0 {
			return domainerrors.ErrEntityAssociated.WithDetails("category still owns products")
		}

		removed, err = repo.DeleteByID(ctx, id)

		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		// The deleted event carries a sentinel view: the id with zeroed fields.
		publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryCategory, entity.EventTypeDeleted, &entity.Category{CategoryID: id})
	}

	return removed, nil
}
