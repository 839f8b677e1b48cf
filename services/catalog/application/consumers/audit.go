// Package consumers holds the catalog event subscribers. They run in the
// API process: the event bus is in-process, so there is no separate worker
// binary to ship them in.
package consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/z5ni/catalog-api/pkg/events"
	"github.com/z5ni/catalog-api/pkg/logger"
	domainevents "github.com/z5ni/catalog-api/services/catalog/domain/events"
)

// StartAudit subscribes to all item lifecycle topics and writes one audit
// log line per event. Call before the server starts accepting requests so
// no event is missed; ctx cancellation stops the subscribers.
func StartAudit(ctx context.Context, bus *events.Bus, log logger.Logger) error {
	topics := []string{
		domainevents.TopicItemCreated,
		domainevents.TopicItemUpdated,
		domainevents.TopicItemDeleted,
	}

	for _, topic := range topics {
		errCh, err := bus.Subscribe(ctx, topic, auditHandler(log, topic))
		if err != nil {
			return fmt.Errorf("audit: subscribe %s: %w", topic, err)
		}
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "audit: subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	return nil
}

func auditHandler(log logger.Logger, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var payload map[string]any
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("audit: decode %s payload: %w", topic, err)
		}
		log.InfoContext(ctx, "item event",
			"topic", topic,
			"message_id", msg.UUID,
			"event", payload,
		)
		return nil
	}
}
