// Package memory implements the catalog repositories against a plain
// in-process map. State is owned exclusively by the repository value and
// resets on restart; construct one per process (or per test) and inject it.
package memory

import (
	"context"
	"sort"
	"sync"

	catalogdomain "github.com/z5ni/catalog-api/services/catalog/domain"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
)

// ItemRepository implements repositories.ItemRepository on a map keyed by id.
//
// Ids are assigned as current count + 1. Since nothing ever removes entries
// from the map (deletes are acknowledged without mutating state), ids stay
// dense and monotonically increasing: creating N items yields ids 1..N.
// The mutex makes concurrent creates assign distinct ids.
type ItemRepository struct {
	mu    sync.Mutex
	items map[int]models.Item
}

// NewItemRepository returns an empty in-memory repository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[int]models.Item)}
}

// Get returns the record at id. Returns ErrItemNotFound if not present.
func (r *ItemRepository) Get(ctx context.Context, id int) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return models.Record{}, catalogdomain.ErrItemNotFound
	}
	return models.Record{ID: id, Item: item}, nil
}

// Create stores the item under the next id and returns the new record.
// No uniqueness check on content: duplicate items get distinct ids.
func (r *ItemRepository) Create(ctx context.Context, item models.Item) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.items) + 1
	r.items[id] = item
	return models.Record{ID: id, Item: item}, nil
}

// Update replaces the entire record at id with the given item. There is no
// partial-field patch: the stored value is exactly the incoming item.
//
// An unknown id is not an error: the merged record is returned without
// touching the map, so id assignment by count stays collision-free.
func (r *ItemRepository) Update(ctx context.Context, id int, item models.Item) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		r.items[id] = item
	}
	return models.Record{ID: id, Item: item}, nil
}

// List returns all records in ascending id order.
func (r *ItemRepository) List(ctx context.Context) ([]models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Record{ID: id, Item: r.items[id]})
	}
	return out, nil
}
