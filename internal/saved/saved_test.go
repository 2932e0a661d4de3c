package saved

import (
	"context"
	"testing"

	"datenight/internal/model"
)

func TestSaveListUnsave(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	if err := svc.Save(ctx, "couple-1", "user-a", "tm_e1", model.SourceAPI); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Save(ctx, "couple-1", "user-b", "cm_doc1", model.SourceCommunity); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ids, err := svc.SavedEventIDs(ctx, "couple-1")
	if err != nil {
		t.Fatalf("SavedEventIDs: %v", err)
	}
	if len(ids) != 2 || !ids["tm_e1"] || !ids["cm_doc1"] {
		t.Fatalf("ids = %v", ids)
	}

	if err := svc.Unsave(ctx, "couple-1", "tm_e1"); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
	ids, _ = svc.SavedEventIDs(ctx, "couple-1")
	if len(ids) != 1 || ids["tm_e1"] {
		t.Fatalf("ids after unsave = %v", ids)
	}
}

func TestCouplesAreIsolated(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	if err := svc.Save(ctx, "couple-1", "user-a", "tm_e1", model.SourceAPI); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ids, err := svc.SavedEventIDs(ctx, "couple-2")
	if err != nil {
		t.Fatalf("SavedEventIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ids = %v, want empty for other couple", ids)
	}
}

func TestMemoryStoreRecordsWhoSaved(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.Save(ctx, "couple-1", "user-a", "tm_e1", model.SourceAPI); err != nil {
		t.Fatalf("Save: %v", err)
	}

	recs, err := store.List(ctx, "couple-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("recs = %v", recs)
	}
	rec := recs[0]
	if rec.ID == "" || rec.SavedBy != "user-a" || rec.Source != model.SourceAPI || rec.SavedAt.IsZero() {
		t.Fatalf("rec = %+v", rec)
	}
}
