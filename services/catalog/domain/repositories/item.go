package repositories

import (
	"context"

	"github.com/z5ni/catalog-api/services/catalog/domain/models"
)

// ItemRepository is the storage interface for item records.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Get returns the record at id, or domain.ErrItemNotFound.
	Get(ctx context.Context, id int) (models.Record, error)

	// Create assigns the next id (current count + 1), stores the item, and
	// returns the new record. Duplicate content is permitted.
	Create(ctx context.Context, item models.Item) (models.Record, error)

	// Update replaces the entire record at id with the given item and
	// returns the resulting record. The id is not required to pre-exist.
	Update(ctx context.Context, id int, item models.Item) (models.Record, error)

	// List returns all records in ascending id order.
	List(ctx context.Context) ([]models.Record, error)
}
