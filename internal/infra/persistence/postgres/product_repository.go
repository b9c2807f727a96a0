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

// productSortColumns maps logical sort keys to physical columns.
var productSortColumns = map[string]string{
	"productId":          "id",
	"productName":        "product_name",
	"productDescription": "product_description",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindAll retrieves every product in storage order.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindAllPaged retrieves one page of products ordered by the query.
func (repo *productRepository) FindAllPaged(ctx context.Context, q repository.PageQuery) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order(orderClause(productSortColumns, q, "id")).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products page")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByID retrieves a single product by its id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// CountByName counts products holding the given name, excluding one row.
func (repo *productRepository) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by name")
	}

	return count, nil
}

// CountByCategory counts the products belonging to a category.
func (repo *productRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

// Save persists a new product.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUniqueValue.WrapMessage("product name already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with the generated id
	product.ProductID = productM.ID

	return nil
}

// Update persists the mutable fields of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ProductID).
		Updates(map[string]any{
			"product_name":        product.ProductName,
			"product_description": product.ProductDescription,
			"category_id":         product.CategoryID,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUniqueValue.WrapMessage("product name already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteByID removes a product, reporting whether a row was removed.
func (repo *productRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.ProductModel{}, id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, domainerrors.ErrEntityAssociated.WrapMessage("product still owns reviews")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return result.RowsAffected > 0, nil
}

// toProductDomain maps a GORM model to the domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ProductID:          productM.ID,
		ProductName:        productM.Name,
		ProductDescription: productM.Description,
		CategoryID:         productM.CategoryID,
	}
}

func toProductDomainSlice(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain maps a domain entity to its GORM model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ProductID,
		Name:        product.ProductName,
		Description: product.ProductDescription,
		CategoryID:  product.CategoryID,
	}
}
