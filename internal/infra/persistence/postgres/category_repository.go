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

// categorySortColumns maps logical sort keys to physical columns.
var categorySortColumns = map[string]string{
	"categoryId":   "id",
	"categoryName": "category_name",
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindAll retrieves every category in storage order.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// FindAllPaged retrieves one page of categories ordered by the query.
func (repo *categoryRepository) FindAllPaged(ctx context.Context, q repository.PageQuery) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order(orderClause(categorySortColumns, q, "id")).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories page")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// FindByID retrieves a single category by its id.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// CountByName counts categories holding the given name, excluding one row.
func (repo *categoryRepository) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("category_name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories by name")
	}

	return count, nil
}

// Save persists a new category.
func (repo *categoryRepository) Save(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		// The unique index is the backstop for concurrent creators that both
		// passed the service-level check.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUniqueValue.WrapMessage("category name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	// Update the entity with the generated id
	category.CategoryID = categoryM.ID

	return nil
}

// Update persists the mutable fields of an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.CategoryID).
		Update("category_name", category.CategoryName)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUniqueValue.WrapMessage("category name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteByID removes a category, reporting whether a row was removed.
func (repo *categoryRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.CategoryModel{}, id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, domainerrors.ErrEntityAssociated.WrapMessage("category still owns products")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}

	return result.RowsAffected > 0, nil
}

// toCategoryDomain maps a GORM model to the domain entity.
func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		CategoryID:   categoryM.ID,
		CategoryName: categoryM.Name,
	}
}

func toCategoryDomainSlice(categoryModels []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

// fromCategoryDomain maps a domain entity to its GORM model.
func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:   category.CategoryID,
		Name: category.CategoryName,
	}
}
