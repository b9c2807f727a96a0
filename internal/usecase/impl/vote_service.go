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

type voteService struct {
	voteRepo  repository.VoteRepository
	txManager repository.TransactionManager
	identity  service.IdentitySource
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// VoteServiceParams holds dependencies for VoteService, injected by Fx.
type VoteServiceParams struct {
	fx.In

	VoteRepo  repository.VoteRepository
	TxManager repository.TransactionManager
	Identity  service.IdentitySource
	Publisher service.EventPublisher
	Validate  *validator.Validate
	Logger    *slog.Logger
}

// NewVoteService creates a new vote service instance
func NewVoteService(params VoteServiceParams) usecase.VoteUsecase {
	return &voteService{
		voteRepo:  params.VoteRepo,
		txManager: params.TxManager,
		identity:  params.Identity,
		publisher: params.Publisher,
		validate:  params.Validate,
		logger:    params.Logger,
	}
}

// FindAll returns every vote.
func (s *voteService) FindAll(ctx context.Context) ([]*entity.Vote, error) {
	return s.voteRepo.FindAll(ctx)
}

// FindAllPaged returns one page of votes after normalizing the query.
// The page is read on a read-only transaction.
func (s *voteService) FindAllPaged(ctx context.Context, query usecase.ListQuery) ([]*entity.Vote, error) {
	pageQuery := normalizePageQuery(query, entity.VoteSortableFields, entity.DefaultVoteSort)

	var votes []*entity.Vote
	err := s.txManager.ExecuteReadOnly(ctx, func(f repository.RepositoryFactory) error {
		var err error
		votes, err = f.VoteRepo().FindAllPaged(ctx, pageQuery)

		return err
	})
	if err != nil {
		return nil, err
	}

	return votes, nil
}

// FindByID returns a single vote.
func (s *voteService) FindByID(ctx context.Context, id int64) (*entity.Vote, error) {
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vote id must be positive")
	}

	vote, err := s.voteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVoteNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WithDetails("vote " + strconv.FormatInt(id, 10))
		}

		return nil, err
	}

	return vote, nil
}

// Save creates a vote cast by the caller. The voter email is stamped from the
// verified token and a voter may vote on a given review at most once.
func (s *voteService) Save(ctx context.Context, input *usecase.SaveVoteInput) (*entity.Vote, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var created *entity.Vote
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.VoteRepo()

		if _, err := f.ReviewRepo().FindByID(ctx, input.ReviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("review " + strconv.FormatInt(input.ReviewID, 10))
			}

			return err
		}

		count, err := repo.CountByReviewAndEmail(ctx, input.ReviewID, email)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrOnlyOneVotePerUser
		}

		vote := &entity.Vote{
			Email:    email,
			ReviewID: input.ReviewID,
			Useful:   input.Useful,
		}
		if err := repo.Save(ctx, vote); err != nil {
			return err
		}
		created = vote

		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("vote create yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryVote, entity.EventTypeCreated, created)

	return created, nil
}

// Update flips the usefulness flag on a vote the caller owns.
func (s *voteService) Update(ctx context.Context, input *usecase.UpdateVoteInput) (*entity.Vote, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.Vote
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.VoteRepo()

		existing, err := repo.FindByID(ctx, input.VoteID)
		if err != nil {
			if errors.Is(err, repository.ErrVoteNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("vote " + strconv.FormatInt(input.VoteID, 10))
			}

			return err
		}

		// Ownership comes before anything else touches the row.
		if existing.Email != email {
			return domainerrors.ErrOwnershipViolation
		}

		vote := &entity.Vote{
			VoteID:   input.VoteID,
			Email:    existing.Email,
			ReviewID: existing.ReviewID,
			Useful:   input.Useful,
		}
		if err := repo.Update(ctx, vote); err != nil {
			return err
		}
		updated = vote

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.ErrEmptyResponse.WithDetails("vote update yielded no row")
	}

	publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryVote, entity.EventTypeUpdated, updated)

	return updated, nil
}

// DeleteByID removes a vote the caller owns. Votes have no dependents, so
// once ownership holds the row is removed unconditionally.
func (s *voteService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("vote id must be positive")
	}

	email, err := s.identity.CurrentSubject(ctx)
	if err != nil {
		return false, err
	}

	var removed bool
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.VoteRepo()

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrVoteNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("vote " + strconv.FormatInt(id, 10))
			}

			return err
		}

		if existing.Email != email {
			return domainerrors.ErrOwnershipViolation
		}

		removed, err = repo.DeleteByID(ctx, id)

		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		publishChangeEvent(ctx, s.logger, s.publisher, entity.EventCategoryVote, entity.EventTypeDeleted, &entity.Vote{VoteID: id})
	}

	return removed, nil
}
