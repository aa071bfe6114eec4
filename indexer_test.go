package happyhourd

import (
	"context"
	"testing"
)

func newTestIndexer(t *testing.T) *BleveIndexer {
	t.Helper()

	idx, err := NewBleveIndexer()
	if err != nil {
		t.Fatalf("NewBleveIndexer: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	if err := idx.Rebuild(context.Background(), newTestVenues()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	return idx
}

func searchIDs(t *testing.T, idx *BleveIndexer, q SearchQuery) map[string]bool {
	t.Helper()

	hits, err := idx.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	ids := make(map[string]bool, len(hits))
	for _, h := range hits {
		ids[h.ID] = true
	}
	return ids
}

func TestIndexerTextSearch(t *testing.T) {
	idx := newTestIndexer(t)

	t.Run("name match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "taco"})
		if !ids["taco-joint"] {
			t.Error("expected taco-joint for query 'taco'")
		}
	})

	t.Run("prefix match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "tac"})
		if !ids["taco-joint"] {
			t.Error("expected taco-joint for partial query 'tac'")
		}
	})

	t.Run("deal text match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "draft"})
		if !ids["dive"] {
			t.Error("expected dive for query 'draft'")
		}
	})

	t.Run("neighborhood text match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "japantown"})
		if !ids["izakaya"] {
			t.Error("expected izakaya for query 'japantown'")
		}
	})

	t.Run("tag list match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "gyoza"})
		if !ids["izakaya"] {
			t.Error("expected izakaya for query 'gyoza'")
		}
	})

	t.Run("no match", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "zzzzxq"})
		if len(ids) != 0 {
			t.Errorf("expected no hits, got %v", ids)
		}
	})
}

func TestIndexerStructuredFilters(t *testing.T) {
	idx := newTestIndexer(t)

	t.Run("neighborhood equality", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "tacos pints wine", Neighborhood: "Mission"})
		if !ids["taco-joint"] || !ids["dive"] {
			t.Errorf("expected both Mission venues, got %v", ids)
		}
		if ids["vino"] {
			t.Error("vino is not in Mission and should be filtered out")
		}
	})

	t.Run("max price inclusive ceiling", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "wine sake cocktails", MaxPrice: 2})
		if ids["vino"] {
			t.Error("price-3 vino should be excluded by maxPrice=2")
		}
		if ids["rooftop"] {
			t.Error("price-4 rooftop should be excluded by maxPrice=2")
		}
		if !ids["izakaya"] {
			t.Error("price-2 izakaya should be included by maxPrice=2")
		}
	})

	t.Run("cuisine equality", func(t *testing.T) {
		ids := searchIDs(t, idx, SearchQuery{Text: "happy wine", Cuisine: "Wine Bar"})
		for id := range ids {
			if id != "vino" {
				t.Errorf("unexpected hit %q for cuisine filter", id)
			}
		}
	})
}

func TestIndexerLimit(t *testing.T) {
	idx := newTestIndexer(t)

	hits, err := idx.Search(context.Background(), SearchQuery{Text: "happy hour drinks deal taco wine sake pints cocktails", Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) > 2 {
		t.Errorf("len(hits) = %d, want <= 2", len(hits))
	}
}

func TestIndexerSnapshot(t *testing.T) {
	idx := newTestIndexer(t)

	hits, err := idx.Search(context.Background(), SearchQuery{Text: "taco"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	var snap *Venue
	for _, h := range hits {
		if h.ID == "taco-joint" {
			snap = h.Snapshot
		}
	}
	if snap == nil {
		t.Fatal("expected taco-joint hit with snapshot")
	}

	if snap.Name != "Taco Joint" {
		t.Errorf("snapshot Name = %q, want %q", snap.Name, "Taco Joint")
	}
	if snap.Neighborhood != "Mission" {
		t.Errorf("snapshot Neighborhood = %q, want %q", snap.Neighborhood, "Mission")
	}
	if snap.PriceLevel != 1 {
		t.Errorf("snapshot PriceLevel = %d, want 1", snap.PriceLevel)
	}
	if snap.Rating != 4.5 {
		t.Errorf("snapshot Rating = %v, want 4.5", snap.Rating)
	}
	if snap.StartTime != "4:00 PM" || snap.EndTime != "7:00 PM" {
		t.Errorf("snapshot window = %q–%q, want 4:00 PM–7:00 PM", snap.StartTime, snap.EndTime)
	}
	if len(snap.Days) != 5 || snap.Days[0] != "Monday" {
		t.Errorf("snapshot Days = %v, want the five weekdays", snap.Days)
	}
	if len(snap.Food) != 1 || snap.Food[0] != "tacos" {
		t.Errorf("snapshot Food = %v, want [tacos]", snap.Food)
	}
}

func TestIndexerRebuildReplaces(t *testing.T) {
	idx := newTestIndexer(t)

	if err := idx.Rebuild(context.Background(), newTestVenues()[:1]); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	ids := searchIDs(t, idx, SearchQuery{Text: "wine"})
	if ids["vino"] {
		t.Error("expected vino to be gone after rebuild with one venue")
	}
}
