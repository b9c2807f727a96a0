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

// reviewSortColumns maps logical sort keys to physical columns.
var reviewSortColumns = map[string]string{
	"reviewId":   "id",
	"email":      "email",
	"reviewText": "review_text",
	"rating":     "rating",
}

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindAll retrieves every review in storage order.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindAllPaged retrieves one page of reviews ordered by the query.
func (repo *reviewRepository) FindAllPaged(ctx context.Context, q repository.PageQuery) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Order(orderClause(reviewSortColumns, q, "id")).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews page")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindByID retrieves a single review by its id.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// CountByProductAndEmail counts reviews by one author on one product.
func (repo *reviewRepository) CountByProductAndEmail(ctx context.Context, productID int64, email string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ? AND email = ?", productID, email).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews by product and email")
	}

	return count, nil
}

// CountByProduct counts the reviews attached to a product.
func (repo *reviewRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews by product")
	}

	return count, nil
}

// Save persists a new review.
func (repo *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// The composite unique index backstops the one-review-per-user rule.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOnlyOneReviewPerUser
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with the generated id
	review.ReviewID = reviewM.ID

	return nil
}

// Update persists the mutable fields of an existing review. The author email
// and product id are fixed at creation.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ReviewID).
		Updates(map[string]any{
			"review_text": review.ReviewText,
			"rating":      review.Rating,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByID removes a review, reporting whether a row was removed.
func (repo *reviewRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.ReviewModel{}, id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, domainerrors.ErrEntityAssociated.WrapMessage("review still owns votes")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}

	return result.RowsAffected > 0, nil
}

// toReviewDomain maps a GORM model to the domain entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ReviewID:   reviewM.ID,
		Email:      reviewM.Email,
		ProductID:  reviewM.ProductID,
		ReviewText: reviewM.ReviewText,
		Rating:     reviewM.Rating,
	}
}

func toReviewDomainSlice(reviewModels []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain maps a domain entity to its GORM model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         review.ReviewID,
		Email:      review.Email,
		ProductID:  review.ProductID,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
	}
}
