package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the catalog service. Consumers subscribe via
// events.Bus.Subscribe(ctx, topic, handler).
const (
	TopicItemCreated = "catalog.item.created"
	TopicItemUpdated = "catalog.item.updated"
	TopicItemDeleted = "catalog.item.deleted"
)

// ItemCreatedEvent is published after a new item is stored.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after a full-record replacement.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published when a delete is acknowledged.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int       `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
