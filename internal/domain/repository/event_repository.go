package repository

import (
	"context"

	"opinator/internal/domain/entity"
)

// EventRepository persists consumed change events. Events are append-only;
// nothing in the request path reads them back.
type EventRepository interface {
	// Save appends an event row and fills in the generated id.
	Save(ctx context.Context, event *entity.Event) error
}
