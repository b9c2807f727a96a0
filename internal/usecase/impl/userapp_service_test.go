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

func newUserAppService(t *testing.T, userRepo *mockRepo.MockUserAppRepository, txManager *mockRepo.MockTransactionManager, identity *mockSvc.MockIdentitySource, publisher *mockSvc.MockEventPublisher) usecase.UserAppUsecase {
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

	return NewUserAppService(UserAppServiceParams{
		UserRepo:  userRepo,
		TxManager: txManager,
		Identity:  identity,
		Publisher: publisher,
		Validate:  validation.New(),
		Logger:    testLogger(),
	})
}

func TestUserAppService_Save_StampsEmailFromToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "a@x.io"), publisher)

	ctx := context.Background()
	userRepo.EXPECT().
		CountByEmail(ctx, "a@x.io").
		Return(0, nil)
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.UserApp")).
		RunAndReturn(func(_ context.Context, user *entity.UserApp) error {
			assert.Equal(t, "a@x.io", user.Email)
			user.UserAppID = 1

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	user, err := service.Save(ctx, &usecase.SaveUserAppInput{Name: "Ana", Lastname: "Diaz"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserAppID)
	assert.Equal(t, "a@x.io", user.Email)
}

func TestUserAppService_Save_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	userRepo.EXPECT().
		CountByEmail(ctx, "a@x.io").
		Return(1, nil)

	user, err := service.Save(ctx, &usecase.SaveUserAppInput{Name: "Ana", Lastname: "Diaz"})
	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNIQUE_VALUE", appErr.ErrorCode())
}

func TestUserAppService_Save_NoIdentity(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	service := newUserAppService(t, userRepo, nil, identityMissing(t), nil)

	user, err := service.Save(context.Background(), &usecase.SaveUserAppInput{Name: "Ana", Lastname: "Diaz"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserAppService_Update_EmailImmutableWinsOverOwnership(t *testing.T) {
	// The caller's token matches the NEW email, not the stored one. If
	// ownership were checked first this would read as a stolen profile; the
	// immutability rule must fire instead.
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "new@x.io"), nil)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.UserApp{UserAppID: 1, Email: "old@x.io", Name: "Ana"}, nil)

	user, err := service.Update(ctx, &usecase.UpdateUserAppInput{UserAppID: 1, Email: "new@x.io", Name: "Ana", Lastname: "Diaz"})
	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMAIL_IMMUTABLE", appErr.ErrorCode())
}

func TestUserAppService_Update_OwnershipEnforced(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "b@x.io"), nil)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.UserApp{UserAppID: 1, Email: "a@x.io", Name: "Ana"}, nil)

	user, err := service.Update(ctx, &usecase.UpdateUserAppInput{UserAppID: 1, Email: "a@x.io", Name: "Mallory", Lastname: "Evans"})
	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OWNERSHIP_VIOLATION", appErr.ErrorCode())
}

func TestUserAppService_Update_OwnerRenames(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "a@x.io"), publisher)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.UserApp{UserAppID: 1, Email: "a@x.io", Name: "Ana", Lastname: "Diaz"}, nil)
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.UserApp")).
		Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	user, err := service.Update(ctx, &usecase.UpdateUserAppInput{UserAppID: 1, Email: "a@x.io", Name: "Anna", Lastname: "Diaz"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, "a@x.io", user.Email)
}

func TestUserAppService_Update_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	service := newUserAppService(t, userRepo, txManager, identityReturning(t, "a@x.io"), nil)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrUserAppNotFound)

	user, err := service.Update(ctx, &usecase.UpdateUserAppInput{UserAppID: 99, Email: "a@x.io", Name: "Ana", Lastname: "Diaz"})
	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestUserAppService_DeleteByID_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newUserAppService(t, userRepo, txManager, nil, publisher)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.UserApp{UserAppID: 1, Email: "a@x.io"}, nil)
	userRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(true, nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestUserAppService_DeleteByID_NotVerifiablyRemoved(t *testing.T) {
	userRepo := mockRepo.NewMockUserAppRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserAppRepo().Return(userRepo)
	txManager := passthroughTxManager(t, factory)
	service := newUserAppService(t, userRepo, txManager, nil, nil)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.UserApp{UserAppID: 1, Email: "a@x.io"}, nil)
	userRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(false, nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}
