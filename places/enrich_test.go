package places

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnrichMergesDetails(t *testing.T) {
	base := []Place{
		{PlaceID: "pl-1", Name: "Taco Joint"},
		{PlaceID: "pl-2", Name: "Vino Tinto"},
	}

	fetch := func(_ context.Context, placeID string) (*Place, error) {
		switch placeID {
		case "pl-1":
			return &Place{DealText: "$3 tacos", Days: []string{"Friday"}, StartTime: "4:00 PM", EndTime: "7:00 PM"}, nil
		case "pl-2":
			return &Place{Neighborhood: "Castro", Rating: 4.9}, nil
		}
		return nil, errors.New("unknown place")
	}

	got, err := Enrich(context.Background(), base, fetch, 2, discardLogger())
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if got[0].DealText != "$3 tacos" || got[0].StartTime != "4:00 PM" {
		t.Errorf("pl-1 not enriched: %+v", got[0])
	}
	if got[1].Neighborhood != "Castro" || got[1].Rating != 4.9 {
		t.Errorf("pl-2 not enriched: %+v", got[1])
	}
	// Input order is preserved.
	if got[0].PlaceID != "pl-1" || got[1].PlaceID != "pl-2" {
		t.Errorf("order changed: %+v", got)
	}
}

// A failed detail fetch leaves the place as-is; enrichment is
// best-effort.
func TestEnrichToleratesFailures(t *testing.T) {
	base := []Place{
		{PlaceID: "pl-bad", Name: "Flaky Bar", Rating: 3.5},
		{PlaceID: "pl-good", Name: "Solid Bar"},
	}

	fetch := func(_ context.Context, placeID string) (*Place, error) {
		if placeID == "pl-bad" {
			return nil, errors.New("details unavailable")
		}
		return &Place{Cuisine: "american"}, nil
	}

	got, err := Enrich(context.Background(), base, fetch, 2, discardLogger())
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if got[0].Rating != 3.5 || got[0].Cuisine != "" {
		t.Errorf("failed place should be unchanged: %+v", got[0])
	}
	if got[1].Cuisine != "american" {
		t.Errorf("pl-good not enriched: %+v", got[1])
	}
}

func TestEnrichSkipsPlacesWithoutID(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context, string) (*Place, error) {
		calls.Add(1)
		return &Place{}, nil
	}

	base := []Place{{Name: "Anonymous Bar"}}
	if _, err := Enrich(context.Background(), base, fetch, 2, discardLogger()); err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fetch called %d times for places without IDs", calls.Load())
	}
}

func TestEnrichNilFetch(t *testing.T) {
	base := []Place{{PlaceID: "pl-1"}}

	got, err := Enrich(context.Background(), base, nil, 2, discardLogger())
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want passthrough", len(got))
	}
}
