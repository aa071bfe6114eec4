package happyhourd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"happyhourd/places"
)

// VenueFromPlace converts an acquired place listing into a venue
// record. Listings without a stable external place ID get a generated
// one; IDs must stay stable across index rebuilds, which holds
// because the data file is written once and loaded as-is afterwards.
func VenueFromPlace(p places.Place) *Venue {
	id := p.PlaceID
	if id == "" {
		id = uuid.New().String()
	}

	mapURL := p.MapURL
	if mapURL == "" {
		mapURL = places.MapsURL(p.Name, p.Address)
	}

	return &Venue{
		ID:           id,
		Name:         p.Name,
		Neighborhood: p.Neighborhood,
		Cuisine:      p.Cuisine,
		Address:      p.Address,
		DealText:     p.DealText,
		Drinks:       p.Drinks,
		Food:         p.Food,
		Days:         p.Days,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		PriceLevel:   p.PriceLevel,
		Rating:       p.Rating,
		PhotoRef:     p.PhotoRef,
		MapURL:       mapURL,
		RatingCount:  p.RatingCount,
	}
}

// VenuesFromPlaces converts a fetched batch, preserving order.
func VenuesFromPlaces(fetched []places.Place) []*Venue {
	venues := make([]*Venue, 0, len(fetched))
	for _, p := range fetched {
		venues = append(venues, VenueFromPlace(p))
	}
	return venues
}

// WriteVenueData writes the venue collection to path atomically (temp
// file + rename), so a crashed fetch never leaves a truncated data
// file behind for the store to load.
func WriteVenueData(path string, venues []*Venue) error {
	data, err := json.MarshalIndent(venues, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal venues: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
