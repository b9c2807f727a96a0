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

type reviewService struct {
	reviewRepo repository.ReviewRepository
	txManager  repository.TransactionManager
	identity   service.IdentitySource
	publisher  service.EventPublisher
	validate   *validator.Validate
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	TxManager  repository.TransactionManager
	Identity   service.IdentitySource
	Publisher  service.EventPublisher
	Validate   *validator.Validate
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		txManager:  params.TxManager,
		identity:   params.Identity,
		publisher:  params.Publisher,
		validate:   params.Validate,
		logger:     params.Logger,
	}
}

// FindAll returns every review.
func (s *reviewService) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}

// FindAllPaged returns one page of reviews after normalizing the query.
// The page is read on a read-only transaction.
func (s *reviewService) FindAllPaged(ctx context.Context, query usecase.ListQuery) ([]*entity.Review, error) {
	pageQuery := normalizePageQuery(query, entity.ReviewSortableFields, entity.DefaultReviewSort)

	var reviews []*entity.Review
	err := s.txManager.ExecuteReadOnly(ctx, func(f repository.RepositoryFactory) error {
		var err error
		reviews, err = f.ReviewRepo().FindAllPaged(ctx, pageQuery)

		return err
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// FindByID returns a single review.
func (s *reviewService) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review id must be positive")
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WithDetails("review " + strconv.FormatInt(id, 10))
		}

		return nil, err
	}

	return review, nil
}

// Save creates a review authored by the caller. The author email is stamped
// from the verified token, never from client input, and an author may review
// a given product at most once.
func (s *reviewService) Save(ctx context.Context, input *usecase.SaveReviewInput) (*entity.Review, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var created *entity.Review
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ReviewRepo()

		if _, err := f.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("product " + strconv.FormatInt(input.ProductID, 10))
			}

			return err
		}

		count, err := repo.CountByProductAndEmail(ctx, input.ProductID, email)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrOnlyOneReviewPerUser
		}

		review := &entity.Review{
			Email:      email,
			ProductID:  input.ProductID,
			ReviewText: input.ReviewText,
			Rating:     input.Rating,
		}
		if err := repo.Save(ctx, review); err != nil {
			return err
		}
		created = review

		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("review create yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryReview, entity.EventTypeCreated, created)

	return created, nil
}

// Update rewrites the text and rating of a review the caller owns.
func (s *reviewService) Update(ctx context.Context, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.Review
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ReviewRepo()

		existing, err := repo.FindByID(ctx, input.ReviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("review " + strconv.FormatInt(input.ReviewID, 10))
			}

			return err
		}

		// Ownership comes before anything else touches the row.
		if existing.Email != email {
			return domainerrors.ErrOwnershipViolation
		}

		review := &entity.Review{
			ReviewID:   input.ReviewID,
			Email:      existing.Email,
			ProductID:  existing.ProductID,
			ReviewText: input.ReviewText,
			Rating:     input.Rating,
		}
		if err := repo.Update(ctx, review); err != nil {
			return err
		}
		updated = review

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("review update yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryReview, entity.EventTypeUpdated, updated)

	return updated, nil
}

// DeleteByID removes a review the caller owns once it has no votes.
func (s *reviewService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("review id must be positive")
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return false, err
	}

	var removed bool
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ReviewRepo()

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("review " + strconv.FormatInt(id, 10))
			}

			return err
		}

		if existing.Email != email {
			return domainerrors.ErrOwnershipViolation
		}

		voteCount, err := f.VoteRepo().CountByReview(ctx, id)
		if err != nil {
			return err
		}
		if voteCount > 0 {
			return domainerrors.ErrEntityAssociated.WithDetails("review still owns votes")
		}

		removed, err = repo.DeleteByID(ctx, id)

		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryReview, entity.EventTypeDeleted, &entity.Review{ReviewID: id})
	}

	return removed, nil
}
