package entity

import "time"

// Event category names, one per entity kind.
const (
	EventCategoryCategory = "category"
	EventCategoryProduct  = "product"
	EventCategoryReview   = "review"
	EventCategoryVote     = "vote"
	EventCategoryUserApp  = "userapp"
)

// Event type suffixes describing the mutation that produced the event.
const (
	EventTypeCreated = "created"
	EventTypeUpdated = "updated"
	EventTypeDeleted = "deleted"
)

// Event is the persisted form of a change event. Rows are written by the
// event worker only; nothing in the request path ever reads them back.
type Event struct {
	EventID   int64          `json:"eventId"`
	Category  string         `json:"category"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}
