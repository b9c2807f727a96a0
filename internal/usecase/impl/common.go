// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"opinator/internal/domain/repository"
	"opinator/internal/domain/service"
	"opinator/internal/usecase"

	"github.com/google/uuid"
)

// defaultPageSize is applied when a caller sends no size or a non-positive one.
const defaultPageSize = 100

// normalizePageQuery turns raw caller paging values into a safe PageQuery.
// Normalization happens here, before storage is touched: negative pages clamp
// to zero, non-positive sizes take the default, unknown sort keys fall back to
// the entity's id field and only a case-insensitive "DESC" flips the order.
func normalizePageQuery(query usecase.ListQuery, sortable map[string]struct{}, defaultSort string) repository.PageQuery {
	page := query.Page
	if page < 0 {
		page = 0
	}

	size := query.Size
	if size <= 0 {
		size = defaultPageSize
	}

	sortBy := query.SortBy
	if _, ok := sortable[sortBy]; !ok {
		sortBy = defaultSort
	}

	sortDir := repository.SortAsc
	if strings.EqualFold(query.SortDir, repository.SortDesc) {
		sortDir = repository.SortDesc
	}

	return repository.PageQuery{
		Page:    page,
		Size:    size,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
}

// viewData flattens a view struct into the generic event payload keyed by the
// entity's JSON field names.
func viewData(view any) map[string]any {
	raw, err := json.Marshal(view)
	if err != nil {
		return map[string]any{}
	}

	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return map[string]any{}
	}

	return data
}

// newChangeEvent builds a change event carrying the given view.
func newChangeEvent(category, eventType string, view any) *service.ChangeEvent {
	return &service.ChangeEvent{
		EventID:    uuid.NewString(),
		Category:   category,
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       viewData(view),
	}
}

// publishChangeEvent emits a change event after a committed mutation.
// Publishing is fire-and-forget: a failure is logged and never surfaces to
// the caller, since the data mutation has already been applied.
func publishChangeEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, category, eventType string, view any) {
	event := newChangeEvent(category, eventType, view)

	if err := publisher.PublishChangeEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "change event publish failed",
			slog.String("event_id", event.EventID),
			slog.String("category", category),
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
