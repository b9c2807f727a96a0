// Package service defines domain-level service interfaces.
package service

import (
	"context"
	"time"
)

// ChangeEvent describes one committed mutation. Data carries a generic view
// of the entity after the mutation (or a sentinel view for deletes), keyed by
// the entity's JSON field names.
type ChangeEvent struct {
	EventID    string         `json:"eventId"`
	Category   string         `json:"category"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data"`
}

// EventPublisher defines the interface for publishing change events to a
// message broker. Publishing is best-effort: callers fire it after commit and
// never fail the request on a publish error.
type EventPublisher interface {
	// PublishChangeEvent sends one change event.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases broker resources.
	Close() error
}
