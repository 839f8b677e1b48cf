package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/z5ni/catalog-api/pkg/events"
	domainevents "github.com/z5ni/catalog-api/services/catalog/domain/events"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
	"github.com/z5ni/catalog-api/services/catalog/domain/repositories"
	domainsvcs "github.com/z5ni/catalog-api/services/catalog/domain/services"
)

// ItemService orchestrates validation, storage, and event publishing for
// catalog items. The repository holds the state; the bus (optional — nil
// disables publishing) broadcasts item lifecycle events in process.
type ItemService struct {
	repo repositories.ItemRepository
	bus  *events.Bus
}

// NewItemService returns an ItemService wired with the given repository and bus.
func NewItemService(repo repositories.ItemRepository, bus *events.Bus) *ItemService {
	return &ItemService{repo: repo, bus: bus}
}

// Create validates and stores a new item, then publishes ItemCreatedEvent.
// Validation failures surface as *validator.ValidationError with every
// violated field reported; nothing is stored in that case.
func (s *ItemService) Create(ctx context.Context, raw models.Item) (models.Record, error) {
	item, err := domainsvcs.BuildItem(raw)
	if err != nil {
		return models.Record{}, fmt.Errorf("create item: %w", err)
	}

	rec, err := s.repo.Create(ctx, item)
	if err != nil {
		return models.Record{}, fmt.Errorf("store item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     rec.ID,
		Name:       rec.Name,
		Price:      rec.Price,
		OccurredAt: time.Now().UTC(),
	})
	return rec, nil
}

// Get retrieves the record at id; domain.ErrItemNotFound when absent.
func (s *ItemService) Get(ctx context.Context, id int) (models.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return rec, nil
}

// Update validates the incoming item and replaces the record at id wholesale,
// then publishes ItemUpdatedEvent. The id is not required to pre-exist.
func (s *ItemService) Update(ctx context.Context, id int, raw models.Item) (models.Record, error) {
	item, err := domainsvcs.BuildItem(raw)
	if err != nil {
		return models.Record{}, fmt.Errorf("update item: %w", err)
	}

	rec, err := s.repo.Update(ctx, id, item)
	if err != nil {
		return models.Record{}, fmt.Errorf("store item %d: %w", id, err)
	}

	s.publish(ctx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     rec.ID,
		Name:       rec.Name,
		Price:      rec.Price,
		OccurredAt: time.Now().UTC(),
	})
	return rec, nil
}

// Delete acknowledges a delete and publishes ItemDeletedEvent. Existence is
// not checked and the store is left untouched.
func (s *ItemService) Delete(ctx context.Context, id int) error {
	s.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// List returns all stored records in id order.
func (s *ItemService) List(ctx context.Context) ([]models.Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return recs, nil
}

// publish broadcasts an event, logging nothing here: a failed in-process
// publish only happens after Close, during shutdown.
func (s *ItemService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	_ = s.bus.Publish(ctx, topic, msg)
}
