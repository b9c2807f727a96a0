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

// voteSortColumns maps logical sort keys to physical columns.
var voteSortColumns = map[string]string{
	"voteId": "id",
	"email":  "email",
	"useful": "useful",
}

// voteRepository implements the repository.VoteRepository interface.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// FindAll retrieves every vote in storage order.
func (repo *voteRepository) FindAll(ctx context.Context) ([]*entity.Vote, error) {
	var voteModels []*model.VoteModel

	if err := repo.db.WithContext(ctx).
		Find(&voteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find votes")
	}

	return toVoteDomainSlice(voteModels), nil
}

// FindAllPaged retrieves one page of votes ordered by the query.
func (repo *voteRepository) FindAllPaged(ctx context.Context, q repository.PageQuery) ([]*entity.Vote, error) {
	var voteModels []*model.VoteModel

	if err := repo.db.WithContext(ctx).
		Order(orderClause(voteSortColumns, q, "id")).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&voteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find votes page")
	}

	return toVoteDomainSlice(voteModels), nil
}

// FindByID retrieves a single vote by its id.
func (repo *voteRepository) FindByID(ctx context.Context, id int64) (*entity.Vote, error) {
	var voteM model.VoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&voteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find vote by ID")
	}

	return toVoteDomain(&voteM), nil
}

// CountByReviewAndEmail counts votes by one voter on one review.
func (repo *voteRepository) CountByReviewAndEmail(ctx context.Context, reviewID int64, email string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Where("review_id = ? AND email = ?", reviewID, email).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count votes by review and email")
	}

	return count, nil
}

// CountByReview counts the votes attached to a review.
func (repo *voteRepository) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count votes by review")
	}

	return count, nil
}

// Save persists a new vote.
func (repo *voteRepository) Save(ctx context.Context, vote *entity.Vote) error {
	voteM := fromVoteDomain(vote)

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		// The composite unique index backstops the one-vote-per-user rule.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOnlyOneVotePerUser
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vote")
	}

	// Update the entity with the generated id
	vote.VoteID = voteM.ID

	return nil
}

// Update persists the mutable fields of an existing vote. The voter email and
// review id are fixed at creation.
func (repo *voteRepository) Update(ctx context.Context, vote *entity.Vote) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Where("id = ?", vote.VoteID).
		// Updates with a map so a false value is still written.
		Updates(map[string]any{
			"useful": vote.Useful,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoteNotFound
	}

	return nil
}

// DeleteByID removes a vote, reporting whether a row was removed.
func (repo *voteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Delete(&model.VoteModel{}, id)
	if err := result.Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete vote")
	}

	return result.RowsAffected > 0, nil
}

// toVoteDomain maps a GORM model to the domain entity.
func toVoteDomain(voteM *model.VoteModel) *entity.Vote {
	return &entity.Vote{
		VoteID:   voteM.ID,
		Email:    voteM.Email,
		ReviewID: voteM.ReviewID,
		Useful:   voteM.Useful,
	}
}

func toVoteDomainSlice(voteModels []*model.VoteModel) []*entity.Vote {
	votes := make([]*entity.Vote, 0, len(voteModels))
	for _, voteM := range voteModels {
		votes = append(votes, toVoteDomain(voteM))
	}

	return votes
}

// fromVoteDomain maps a domain entity to its GORM model.
func fromVoteDomain(vote *entity.Vote) *model.VoteModel {
	return &model.VoteModel{
		ID:       vote.VoteID,
		Email:    vote.Email,
		ReviewID: vote.ReviewID,
		Useful:   vote.Useful,
	}
}
