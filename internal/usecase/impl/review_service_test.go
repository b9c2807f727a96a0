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

func identityReturning(t *testing.T, email string) *mockSvc.MockIdentitySource {
	t.Helper()

	identity := mockSvc.NewMockIdentitySource(t)
	identity.EXPECT().CurrentSubject(mock.Anything).Return(email, nil)

	return identity
}

func identityMissing(t *testing.T) *mockSvc.MockIdentitySource {
	t.Helper()

	identity := mockSvc.NewMockIdentitySource(t)
	identity.EXPECT().CurrentSubject(mock.Anything).Return("", domainerrors.ErrUnauthenticated)

	return identity
}

func newReviewService(t *testing.T, reviewRepo *mockRepo.MockReviewRepository, txManager *mockRepo.MockTransactionManager, identity *mockSvc.MockIdentitySource, publisher *mockSvc.MockEventPublisher) usecase.ReviewUsecase {
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

	return NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		TxManager:  txManager,
		Identity:   identity,
		Publisher:  publisher,
		Validate:   validation.New(),
		Logger:     testLogger(),
	})
}

func TestReviewService_Save_StampsAuthorFromToken(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), publisher)

	ctx := context.Background()
	productRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Product{ProductID: 1, ProductName: "Tomatoes", CategoryID: 1}, nil)
	reviewRepo.EXPECT().
		CountByProductAndEmail(ctx, int64(1), "a@x.io").
		Return(0, nil)
	reviewRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			assert.Equal(t, "a@x.io", review.Email)
			review.ReviewID = 1

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	review, err := service.Save(ctx, &usecase.SaveReviewInput{ProductID: 1, ReviewText: "Excellent", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ReviewID)
	assert.Equal(t, "a@x.io", review.Email)
}

func TestReviewService_Save_SecondReviewSameAuthorConflicts(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	productRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Product{ProductID: 1}, nil)
	reviewRepo.EXPECT().
		CountByProductAndEmail(ctx, int64(1), "a@x.io").
		Return(1, nil)

	review, err := service.Save(ctx, &usecase.SaveReviewInput{ProductID: 1, ReviewText: "Again", Rating: 3})
	assert.Nil(t, review)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ONLY_ONE_REVIEW_PER_USER", appErr.ErrorCode())
}

func TestReviewService_Save_MissingProduct(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo).Maybe()
	txManager := passthroughTxManager(t, factory)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	productRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrProductNotFound)

	review, err := service.Save(ctx, &usecase.SaveReviewInput{ProductID: 99, ReviewText: "Ghost", Rating: 1})
	assert.Nil(t, review)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestReviewService_Save_NoIdentity(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newReviewService(t, reviewRepo, nil, identityMissing(t), nil)

	review, err := service.Save(context.Background(), &usecase.SaveReviewInput{ProductID: 1, ReviewText: "Excellent", Rating: 5})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestReviewService_Update_OwnershipEnforced(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "b@x.io"), nil)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io", ProductID: 1}, nil)

	review, err := service.Update(ctx, &usecase.UpdateReviewInput{ReviewID: 1, ReviewText: "Hijack", Rating: 1})
	assert.Nil(t, review)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OWNERSHIP_VIOLATION", appErr.ErrorCode())
}

func TestReviewService_Update_OwnerSucceeds(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), publisher)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io", ProductID: 1, ReviewText: "Old", Rating: 2}, nil)
	reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	review, err := service.Update(ctx, &usecase.UpdateReviewInput{ReviewID: 1, ReviewText: "Better", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, "Better", review.ReviewText)
	assert.Equal(t, 4, review.Rating)
	// Stored author and product survive the update untouched.
	assert.Equal(t, "a@x.io", review.Email)
	assert.Equal(t, int64(1), review.ProductID)
}

func TestReviewService_DeleteByID_BlockedByVotes(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io"}, nil)
	voteRepo.EXPECT().
		CountByReview(ctx, int64(1)).
		Return(3, nil)

	removed, err := service.DeleteByID(ctx, 1)
	assert.False(t, removed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ENTITY_ASSOCIATED", appErr.ErrorCode())
}

func TestReviewService_DeleteByID_OwnerWithoutVotesSucceeds(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	voteRepo := mockRepo.NewMockVoteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().VoteRepo().Return(voteRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "a@x.io"), publisher)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io"}, nil)
	voteRepo.EXPECT().
		CountByReview(ctx, int64(1)).
		Return(0, nil)
	reviewRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(true, nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestReviewService_DeleteByID_NonOwnerRejected(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	service := newReviewService(t, reviewRepo, txManager, identityReturning(t, "b@x.io"), nil)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ReviewID: 1, Email: "a@x.io"}, nil)

	removed, err := service.DeleteByID(ctx, 1)
	assert.False(t, removed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OWNERSHIP_VIOLATION", appErr.ErrorCode())
}
