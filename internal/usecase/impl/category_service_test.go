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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T, categoryRepo *mockRepo.MockCategoryRepository, txManager *mockRepo.MockTransactionManager, publisher *mockSvc.MockEventPublisher) usecase.CategoryUsecase {
	t.Helper()

	if txManager == nil {
		txManager = mockRepo.NewMockTransactionManager(t)
	}
	if publisher == nil {
		publisher = mockSvc.NewMockEventPublisher(t)
	}

	return NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		TxManager:    txManager,
		Publisher:    publisher,
		Validate:     validation.New(),
		Logger:       testLogger(),
	})
}

func TestCategoryService_FindAllPaged_NormalizesQuery(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := newCategoryService(t, categoryRepo, readOnlyTxManager(t, factory), nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindAllPaged(ctx, repository.PageQuery{Page: 0, Size: 100, SortBy: "categoryId", SortDir: "ASC"}).
		Return([]*entity.Category{{CategoryID: 1, CategoryName: "Vegetables"}}, nil)

	categories, err := service.FindAllPaged(ctx, usecase.ListQuery{Page: -5, Size: 0, SortBy: "nonexistent", SortDir: "sideways"})
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCategoryService_FindByID_NotFound(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(t, categoryRepo, nil, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := service.FindByID(ctx, 9)
	assert.Nil(t, category)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestCategoryService_Save_Success(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newCategoryService(t, categoryRepo, txManager, publisher)

	ctx := context.Background()
	categoryRepo.EXPECT().
		CountByName(ctx, "Vegetables", int64(0)).
		Return(0, nil)
	categoryRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			category.CategoryID = 1

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	category, err := service.Save(ctx, &usecase.SaveCategoryInput{CategoryName: "Vegetables"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), category.CategoryID)
	assert.Equal(t, "Vegetables", category.CategoryName)
}

func TestCategoryService_Save_DuplicateName(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	service := newCategoryService(t, categoryRepo, txManager, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		CountByName(ctx, "Vegetables", int64(0)).
		Return(1, nil)

	category, err := service.Save(ctx, &usecase.SaveCategoryInput{CategoryName: "Vegetables"})
	assert.Nil(t, category)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNIQUE_VALUE", appErr.ErrorCode())
}

func TestCategoryService_Save_ValidationFailed(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(t, categoryRepo, nil, nil)

	category, err := service.Save(context.Background(), &usecase.SaveCategoryInput{CategoryName: ""})
	assert.Nil(t, category)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCategoryService_Save_PublisherFailureDoesNotFail(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newCategoryService(t, categoryRepo, txManager, publisher)

	ctx := context.Background()
	categoryRepo.EXPECT().CountByName(ctx, "Fruit", int64(0)).Return(0, nil)
	categoryRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			category.CategoryID = 2

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(errors.New("broker unavailable"))

	category, err := service.Save(ctx, &usecase.SaveCategoryInput{CategoryName: "Fruit"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), category.CategoryID)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	service := newCategoryService(t, categoryRepo, txManager, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := service.Update(ctx, &usecase.UpdateCategoryInput{CategoryID: 7, CategoryName: "Fruit"})
	assert.Nil(t, category)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestCategoryService_Update_RenameConflict(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	service := newCategoryService(t, categoryRepo, txManager, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	// Another row already holds the requested name.
	categoryRepo.EXPECT().
		CountByName(ctx, "Fruit", int64(1)).
		Return(1, nil)

	category, err := service.Update(ctx, &usecase.UpdateCategoryInput{CategoryID: 1, CategoryName: "Fruit"})
	assert.Nil(t, category)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNIQUE_VALUE", appErr.ErrorCode())
}

func TestCategoryService_Update_Success(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newCategoryService(t, categoryRepo, txManager, publisher)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	categoryRepo.EXPECT().
		CountByName(ctx, "Fruit", int64(1)).
		Return(0, nil)
	categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	category, err := service.Update(ctx, &usecase.UpdateCategoryInput{CategoryID: 1, CategoryName: "Fruit"})
	require.NoError(t, err)
	assert.Equal(t, "Fruit", category.CategoryName)
}

func TestCategoryService_DeleteByID_BlockedByProducts(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	service := newCategoryService(t, categoryRepo, txManager, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	productRepo.EXPECT().
		CountByCategory(ctx, int64(1)).
		Return(2, nil)

	removed, err := service.DeleteByID(ctx, 1)
	assert.False(t, removed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ENTITY_ASSOCIATED", appErr.ErrorCode())
}

func TestCategoryService_DeleteByID_Success(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newCategoryService(t, categoryRepo, txManager, publisher)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	productRepo.EXPECT().
		CountByCategory(ctx, int64(1)).
		Return(0, nil)
	categoryRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(true, nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestCategoryService_DeleteByID_NotVerifiablyRemoved(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	service := newCategoryService(t, categoryRepo, txManager, nil)

	ctx := context.Background()
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	productRepo.EXPECT().
		CountByCategory(ctx, int64(1)).
		Return(0, nil)
	categoryRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(false, nil)

	// Soft failure: no error, no event, just false.
	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}
