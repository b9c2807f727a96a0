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

type productService struct {
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	validate    *validator.Validate
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
	Publisher   service.EventPublisher
	Validate    *validator.Validate
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		validate:    params.Validate,
		logger:      params.Logger,
	}
}

// FindAll returns every product.
func (s *productService) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// FindAllPaged returns one page of products after normalizing the query.
// The page is read on a read-only transaction.
func (s *productService) FindAllPaged(ctx context.Context, query usecase.ListQuery) ([]*entity.Product, error) {
	pageQuery := normalizePageQuery(query, entity.ProductSortableFields, entity.DefaultProductSort)

	var products []*entity.Product
	err := s.txManager.ExecuteReadOnly(ctx, func(f repository.RepositoryFactory) error {
		var err error
		products, err = f.ProductRepo().FindAllPaged(ctx, pageQuery)

		return err
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindByID returns a single product.
func (s *productService) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WithDetails("product " + strconv.FormatInt(id, 10))
		}

		return nil, err
	}

	return product, nil
}

// Save creates a product once the name is unused and the parent category exists.
func (s *productService) Save(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	var created *entity.Product
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProductRepo()

		count, err := repo.CountByName(ctx, input.ProductName, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrUniqueValue.WithDetails("product name " + input.ProductName)
		}

		if _, err := f.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("category " + strconv.FormatInt(input.CategoryID, 10))
			}

			return err
		}

		product := &entity.Product{
			ProductName:        input.ProductName,
			ProductDescription: input.ProductDescription,
			CategoryID:         input.CategoryID,
		}
		if err := repo.Save(ctx, product); err != nil {
			return err
		}
		created = product

		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("product create yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryProduct, entity.EventTypeCreated, created)

	return created, nil
}

// Update rewrites the mutable fields of an existing product.
func (s *productService) Update(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProductRepo()

		if _, err := repo.FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("product " + strconv.FormatInt(input.ProductID, 10))
			}

			return err
		}

		count, err := repo.CountByName(ctx, input.ProductName, input.ProductID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrUniqueValue.WithDetails("product name " + input.ProductName)
		}

		if _, err := f.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("category " + strconv.FormatInt(input.CategoryID, 10))
			}

			return err
		}

		product := &entity.Product{
			ProductID:          input.ProductID,
			ProductName:        input.ProductName,
			ProductDescription: input.ProductDescription,
			CategoryID:         input.CategoryID,
		}
		if err := repo.Update(ctx, product); err != nil {
			return err
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("product update yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryProduct, entity.EventTypeUpdated, updated)

	return updated, nil
}

// DeleteByID removes a product once it owns no reviews.
func (s *productService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("product id must be positive")
	}

	var removed bool
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProductRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("product " + strconv.FormatInt(id, 10))
			}

			return err
		}

		reviewCount, err := f.ReviewRepo().CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		if reviewCount > 0 {
			return domainerrors.ErrEntityAssociated.WithDetails("product still owns reviews")
		}

		removed, err = repo.DeleteByID(ctx, id)

		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryProduct, entity.EventTypeDeleted, &entity.Product{ProductID: id})
	}

	return removed, nil
}
