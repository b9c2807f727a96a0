package model

import (
	"time"

	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the 'events' table. Rows are
// appended by the event worker; nothing updates or deletes them.
type EventModel struct {
	ID        int64             `gorm:"primaryKey;autoIncrement"`
	Category  string            `gorm:"size:50;not null;index"`
	Type      string            `gorm:"size:50;not null"`
	Timestamp time.Time         `gorm:"not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
