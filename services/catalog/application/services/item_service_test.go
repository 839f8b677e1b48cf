package services

import (
	"context"
	"errors"
	"testing"

	"github.com/z5ni/catalog-api/pkg/validator"
	catalogdomain "github.com/z5ni/catalog-api/services/catalog/domain"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
	"github.com/z5ni/catalog-api/services/catalog/infrastructure/persistence/memory"
)

func newTestService() (*ItemService, *memory.ItemRepository) {
	repo := memory.NewItemRepository()
	return NewItemService(repo, nil), repo
}

func TestItemService_Create(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	t.Run("valid item is normalized and stored", func(t *testing.T) {
		rec, err := svc.Create(ctx, models.Item{Name: "gaming keyboard", Price: 49.99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != 1 {
			t.Fatalf("expected id 1, got %d", rec.ID)
		}
		if rec.Name != "Gaming Keyboard" {
			t.Fatalf("expected normalized name, got %q", rec.Name)
		}

		stored, err := repo.Get(ctx, rec.ID)
		if err != nil {
			t.Fatalf("record not stored: %v", err)
		}
		if stored.Name != "Gaming Keyboard" {
			t.Fatalf("stored record not normalized: %+v", stored)
		}
	})

	t.Run("invalid item stores nothing", func(t *testing.T) {
		before, _ := repo.List(ctx)

		_, err := svc.Create(ctx, models.Item{Name: "Ab", Price: -1})
		var verr *validator.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(verr.Fields) != 2 {
			t.Fatalf("expected both violations, got %+v", verr.Fields)
		}

		after, _ := repo.List(ctx)
		if len(after) != len(before) {
			t.Fatal("rejected item must not be stored")
		}
	})
}

func TestItemService_Get(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Item{Name: "Keyboard", Price: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("existing id", func(t *testing.T) {
		rec, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != created.ID {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("unknown id wraps ErrItemNotFound", func(t *testing.T) {
		if _, err := svc.Get(ctx, 999); !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_Update(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, models.Item{Name: "Keyboard", Price: 10})

	t.Run("existing id is replaced", func(t *testing.T) {
		rec, err := svc.Update(ctx, created.ID, models.Item{Name: "trackball mouse", Price: 25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Name != "Trackball Mouse" {
			t.Fatalf("expected normalized replacement, got %q", rec.Name)
		}
	})

	t.Run("unknown id succeeds without storing", func(t *testing.T) {
		rec, err := svc.Update(ctx, 77, models.Item{Name: "Phantom", Price: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != 77 {
			t.Fatalf("expected echoed id 77, got %d", rec.ID)
		}
		if _, err := repo.Get(ctx, 77); !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatal("update on unknown id must not insert")
		}
	})

	t.Run("invalid replacement is rejected atomically", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, models.Item{Name: "X", Price: 0})
		var verr *validator.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}

		stored, _ := repo.Get(ctx, created.ID)
		if stored.Name != "Trackball Mouse" {
			t.Fatalf("rejected update must not modify the record: %+v", stored)
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, models.Item{Name: "Keyboard", Price: 10})

	t.Run("acknowledges without checking existence", func(t *testing.T) {
		if err := svc.Delete(ctx, 999); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("leaves the store untouched", func(t *testing.T) {
		if err := svc.Delete(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Get(ctx, created.ID); err != nil {
			t.Fatalf("deleted item should survive in the store, got %v", err)
		}
	})
}

func TestItemService_List(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Create(ctx, models.Item{Name: "First Item", Price: 1})
	svc.Create(ctx, models.Item{Name: "Second Item", Price: 2})

	recs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != 1 || recs[1].ID != 2 {
		t.Fatalf("unexpected listing: %+v", recs)
	}
}
