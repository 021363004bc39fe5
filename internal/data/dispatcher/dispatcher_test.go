package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/learnaz/internal/backend"
	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/state"
)

func TestHandleReplacesSnapshot(t *testing.T) {
	store := state.NewCatalogStore([]feed.Record{{Title: "old"}})
	d := New(store)
	res := d.Handle(backend.Event{Records: []feed.Record{{Title: "new"}, {Title: "newer"}}})
	if !res.CatalogUpdated || res.Err != nil {
		t.Fatalf("expected update, got %#v", res)
	}
	if got := store.Records(); len(got) != 2 || got[0].Title != "new" {
		t.Fatalf("unexpected records %#v", got)
	}
}

func TestHandleKeepsSnapshotOnError(t *testing.T) {
	store := state.NewCatalogStore([]feed.Record{{Title: "old"}})
	d := New(store)
	res := d.Handle(backend.Event{Err: errors.New("boom")})
	if res.CatalogUpdated || res.Err == nil {
		t.Fatalf("expected error result, got %#v", res)
	}
	if got := store.Records(); len(got) != 1 || got[0].Title != "old" {
		t.Fatalf("expected previous snapshot kept, got %#v", got)
	}
}
