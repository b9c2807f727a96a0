package postgres

import (
	"context"

	"opinator/internal/domain/entity"
	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/repository"
	"opinator/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Save appends an event row.
func (repo *eventRepository) Save(ctx context.Context, event *entity.Event) error {
	eventM := &model.EventModel{
		Category:  event.Category,
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      datatypes.JSONMap(event.Data),
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store event")
	}

	event.EventID = eventM.ID

	return nil
}
