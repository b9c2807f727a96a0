package impl

import (
	"context"
	"testing"

	"opinator/internal/domain/entity"
	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/repository"
	mockRepo "opinator/internal/mocks/repository"
	mockSvc "opinator/internal/mocks/service"
	"opinator/internal/usecase"
	"opinator/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVoteService(t *testing.T, voteRepo *mockRepo.MockVoteRepository, txManager *mockRepo.MockTransactionManager, identity *mockSvc.MockIdentitySource, publisher *mockSvc.MockEventPublisher) usecase.VoteUsecase {
	t.Helper()

	if txManager == nil {
		txManager = mockRepo.NewMockTransactionManager(t)
	}
	if identity == nil {
		identity = mockSvc.NewMockIdentitySource(t)
	}
	if publisher == nil {
		publisher = mockSvc.NewMockEventPublisher(t)
	}

	return NewVoteService(VoteServiceParams{
		VoteRepo:  voteRepo,
		TxManager: txManager,
		Identity:  identity,
		Publisher: publisher,
		Validate:  validation.New(),
		Logger:    testLogger(),
	})
}

func TestVoteService_Save_StampsVoterFromToken(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "b@x.io"), publisher)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io"}, nil)
	voteRepo.EXPECT().
		CountByReviewAndEmail(ctx, int64(1), "b@x.io").
		Return(0, nil)
	voteRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Vote")).
		RunAndReturn(func(_ context.Context, vote *entity.Vote) error {
			assert.Equal(t, "b@x.io", vote.Email)
			vote.VoteID = 1

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	vote, err := service.Save(ctx, &usecase.SaveVoteInput{ReviewID: 1, Useful: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), vote.VoteID)
	assert.True(t, vote.Useful)
}

func TestVoteService_Save_SecondVoteSameVoterConflicts(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "b@x.io"), nil)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1}, nil)
	voteRepo.EXPECT().
		CountByReviewAndEmail(ctx, int64(1), "b@x.io").
		Return(1, nil)

	vote, err := service.Save(ctx, &usecase.SaveVoteInput{ReviewID: 1, Useful: false})
	assert.Nil(t, vote)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ONLY_ONE_VOTE_PER_USER", appErr.ErrorCode())
}

func TestVoteService_Save_MissingReview(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().VoteRepo().Return(voteRepo).Maybe()
	txManager := passthroughTxManager(t, factory)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "b@x.io"), nil)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(nil, repository.ErrReviewNotFound)

	vote, err := service.Save(ctx, &usecase.SaveVoteInput{ReviewID: 42, Useful: true})
	assert.Nil(t, vote)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestVoteService_Update_OwnershipEnforced(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "c@x.io"), nil)

	ctx := context.Background()
	voteRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Vote{VoteID: 1, Email: "b@x.io", ReviewID: 1, Useful: true}, nil)

	vote, err := service.Update(ctx, &usecase.UpdateVoteInput{VoteID: 1, Useful: false})
	assert.Nil(t, vote)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OWNERSHIP_VIOLATION", appErr.ErrorCode())
}

func TestVoteService_Update_OwnerFlipsUseful(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "b@x.io"), publisher)

	ctx := context.Background()
	voteRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Vote{VoteID: 1, Email: "b@x.io", ReviewID: 1, Useful: true}, nil)
	voteRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vote")).
		Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	vote, err := service.Update(ctx, &usecase.UpdateVoteInput{VoteID: 1, Useful: false})
	require.NoError(t, err)
	assert.False(t, vote.Useful)
	assert.Equal(t, "b@x.io", vote.Email)
}

func TestVoteService_DeleteByID_OwnerDeletesUnconditionally(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "b@x.io"), publisher)

	ctx := context.Background()
	voteRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Vote{VoteID: 1, Email: "b@x.io"}, nil)
	voteRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(true, nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestVoteService_DeleteByID_NonOwnerRejected(t *testing.T) {
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	service := newVoteService(t, voteRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	voteRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Vote{VoteID: 1, Email: "b@x.io"}, nil)

	removed, err := service.DeleteByID(ctx, 1)
	assert.False(t, removed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OWNERSHIP_VIOLATION", appErr.ErrorCode())
}
