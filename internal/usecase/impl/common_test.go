package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"opinator/internal/domain/entity"
	"opinator/internal/domain/repository"
	mockRepo "opinator/internal/mocks/repository"
	"opinator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// testLogger discards output; tests only care about behavior.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager runs the transactional callback directly against the
// given factory, standing in for a real database transaction.
func passthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

// readOnlyTxManager serves read paths by running the read-only callback
// directly against the given factory.
func readOnlyTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		ExecuteReadOnly(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

func TestNormalizePageQuery_OutOfRangeValues(t *testing.T) {
	query := usecase.ListQuery{Page: -5, Size: 0, SortBy: "nonexistent", SortDir: "sideways"}

	got := normalizePageQuery(query, entity.CategorySortableFields, entity.DefaultCategorySort)

	// Must be indistinguishable from the all-defaults query.
	want := normalizePageQuery(usecase.ListQuery{Page: 0, Size: 100, SortBy: "categoryId", SortDir: "ASC"},
		entity.CategorySortableFields, entity.DefaultCategorySort)
	assert.Equal(t, want, got)
	assert.Equal(t, repository.PageQuery{Page: 0, Size: 100, SortBy: "categoryId", SortDir: "ASC"}, got)
}

func TestNormalizePageQuery_KeepsValidValues(t *testing.T) {
	query := usecase.ListQuery{Page: 3, Size: 25, SortBy: "categoryName", SortDir: "DESC"}

	got := normalizePageQuery(query, entity.CategorySortableFields, entity.DefaultCategorySort)

	assert.Equal(t, repository.PageQuery{Page: 3, Size: 25, SortBy: "categoryName", SortDir: "DESC"}, got)
}

func TestNormalizePageQuery_DirectionCaseInsensitive(t *testing.T) {
	for _, dir := range []string{"desc", "Desc", "DESC", "dEsC"} {
		got := normalizePageQuery(usecase.ListQuery{SortDir: dir}, entity.VoteSortableFields, entity.DefaultVoteSort)
		assert.Equal(t, repository.SortDesc, got.SortDir, "direction %q", dir)
	}

	for _, dir := range []string{"", "asc", "ascending", "descending", "sideways"} {
		got := normalizePageQuery(usecase.ListQuery{SortDir: dir}, entity.VoteSortableFields, entity.DefaultVoteSort)
		assert.Equal(t, repository.SortAsc, got.SortDir, "direction %q", dir)
	}
}

func TestNewChangeEvent_CarriesViewData(t *testing.T) {
	review := &entity.Review{ReviewID: 7, Email: "a@x.io", ProductID: 3, ReviewText: "Excellent", Rating: 5}

	event := newChangeEvent(entity.EventCategoryReview, entity.EventTypeCreated, review)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "review", event.Category)
	assert.Equal(t, "created", event.Type)
	assert.False(t, event.OccurredAt.IsZero())
	assert.Equal(t, "a@x.io", event.Data["email"])
	assert.Equal(t, "Excellent", event.Data["reviewText"])
	// JSON round-trip turns numbers into float64.
	assert.Equal(t, float64(7), event.Data["reviewId"])
	assert.Equal(t, float64(5), event.Data["rating"])
}

func TestNewChangeEvent_DeleteSentinelView(t *testing.T) {
	event := newChangeEvent(entity.EventCategoryCategory, entity.EventTypeDeleted, &entity.Category{CategoryID: 42})

	assert.Equal(t, float64(42), event.Data["categoryId"])
	assert.Equal(t, "", event.Data["categoryName"])
}
