package places

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCachedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	want := []Place{
		{PlaceID: "pl-1", Name: "Taco Joint", Neighborhood: "Mission", Rating: 4.5},
		{PlaceID: "pl-2", Name: "Vino Tinto", Neighborhood: "Castro", Rating: 4.9},
	}

	if err := WriteCache(path, want); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}

	got, err := Cached(path)(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].PlaceID != want[i].PlaceID || got[i].Name != want[i].Name {
			t.Errorf("place[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCachedMissingFile(t *testing.T) {
	_, err := Cached(filepath.Join(t.TempDir(), "nope.json"))(context.Background(), "q")
	if err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestStatic(t *testing.T) {
	fixed := []Place{{PlaceID: "pl-1", Name: "Stub Bar"}}

	got, err := Static(fixed)(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Static: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Stub Bar" {
		t.Errorf("got %+v, want the fixed places", got)
	}
}
