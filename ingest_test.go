package happyhourd

import (
	"path/filepath"
	"testing"

	"happyhourd/places"
)

func TestVenueFromPlace(t *testing.T) {
	p := places.Place{
		PlaceID:      "pl-1",
		Name:         "Taco Joint",
		Address:      "123 Valencia St",
		Neighborhood: "Mission",
		Cuisine:      "Mexican",
		PriceLevel:   1,
		Rating:       4.5,
		RatingCount:  321,
		DealText:     "$3 tacos",
		Days:         []string{"Friday"},
		StartTime:    "4:00 PM",
		EndTime:      "7:00 PM",
	}

	v := VenueFromPlace(p)

	if v.ID != "pl-1" {
		t.Errorf("ID = %q, want the external place ID", v.ID)
	}
	if v.Name != "Taco Joint" || v.Neighborhood != "Mission" {
		t.Errorf("unexpected mapping: %+v", v)
	}
	if v.MapURL == "" {
		t.Error("expected a derived map URL")
	}
}

func TestVenueFromPlaceGeneratesID(t *testing.T) {
	a := VenueFromPlace(places.Place{Name: "No ID Bar"})
	b := VenueFromPlace(places.Place{Name: "No ID Bar"})

	if a.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if a.ID == b.ID {
		t.Error("generated IDs should be unique")
	}
}

func TestWriteVenueDataRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.json")
	venues := newTestVenues()

	if err := WriteVenueData(path, venues); err != nil {
		t.Fatalf("WriteVenueData: %v", err)
	}

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	if store.Len() != len(venues) {
		t.Fatalf("Len = %d, want %d", store.Len(), len(venues))
	}

	got, err := store.Get("taco-joint")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DealText != "$3 tacos and $5 margaritas" {
		t.Errorf("DealText = %q, round trip lost data", got.DealText)
	}
}
