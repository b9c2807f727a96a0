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

func newProductService(t *testing.T, productRepo *mockRepo.MockProductRepository, txManager *mockRepo.MockTransactionManager, publisher *mockSvc.MockEventPublisher) usecase.ProductUsecase {
	t.Helper()

	if txManager == nil {
		txManager = mockRepo.NewMockTransactionManager(t)
	}
	if publisher == nil {
		publisher = mockSvc.NewMockEventPublisher(t)
	}

	return NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		TxManager:   txManager,
		Publisher:   publisher,
		Validate:    validation.New(),
		Logger:      testLogger(),
	})
}

func TestProductService_FindAllPaged_NormalizesQuery(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := newProductService(t, productRepo, readOnlyTxManager(t, factory), nil)

	ctx := context.Background()
	productRepo.EXPECT().
		FindAllPaged(ctx, repository.PageQuery{Page: 2, Size: 10, SortBy: "productName", SortDir: "DESC"}).
		Return(nil, nil)

	_, err := service.FindAllPaged(ctx, usecase.ListQuery{Page: 2, Size: 10, SortBy: "productName", SortDir: "desc"})
	require.NoError(t, err)
}

func TestProductService_Save_MissingCategory(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	service := newProductService(t, productRepo, txManager, nil)

	ctx := context.Background()
	productRepo.EXPECT().
		CountByName(ctx, "Tomatoes", int64(0)).
		Return(0, nil)
	categoryRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrCategoryNotFound)

	product, err := service.Save(ctx, &usecase.SaveProductInput{ProductName: "Tomatoes", CategoryID: 99})
	assert.Nil(t, product)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
}

func TestProductService_Save_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newProductService(t, productRepo, txManager, publisher)

	ctx := context.Background()
	productRepo.EXPECT().
		CountByName(ctx, "Tomatoes", int64(0)).
		Return(0, nil)
	categoryRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Category{CategoryID: 1, CategoryName: "Vegetables"}, nil)
	productRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ProductID = 1

			return nil
		})
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	product, err := service.Save(ctx, &usecase.SaveProductInput{ProductName: "Tomatoes", ProductDescription: "Ripe", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ProductID)
}

func TestProductService_Save_DuplicateName(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	txManager := passthroughTxManager(t, factory)
	service := newProductService(t, productRepo, txManager, nil)

	ctx := context.Background()
	productRepo.EXPECT().
		CountByName(ctx, "Tomatoes", int64(0)).
		Return(1, nil)

	product, err := service.Save(ctx, &usecase.SaveProductInput{ProductName: "Tomatoes", CategoryID: 1})
	assert.Nil(t, product)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNIQUE_VALUE", appErr.ErrorCode())
}

func TestProductService_DeleteByID_BlockedByReviews(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	service := newProductService(t, productRepo, txManager, nil)

	ctx := context.Background()
	productRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Product{ProductID: 1, ProductName: "Tomatoes"}, nil)
	reviewRepo.EXPECT().
		CountByProduct(ctx, int64(1)).
		Return(1, nil)

	removed, err := service.DeleteByID(ctx, 1)
	assert.False(t, removed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ENTITY_ASSOCIATED", appErr.ErrorCode())
}

func TestProductService_DeleteByID_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	txManager := passthroughTxManager(t, factory)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := newProductService(t, productRepo, txManager, publisher)

	ctx := context.Background()
	productRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Product{ProductID: 1, ProductName: "Tomatoes"}, nil)
	reviewRepo.EXPECT().
		CountByProduct(ctx, int64(1)).
		Return(0, nil)
	productRepo.EXPECT().
		DeleteByID(ctx, int64(1)).
		Return(true, nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*service.ChangeEvent")).
		Return(nil)

	removed, err := service.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
}
