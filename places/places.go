// Package places acquires venue listings from an external places API
// at build time, with a cached static snapshot as fallback. It shares
// no runtime path with the search engine: its output is written to
// the venue data file the store loads at startup.
package places

import (
	"context"
	"fmt"
	"strings"
)

// Place is a single listing as a provider returns it, before it is
// converted into a venue record.
type Place struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Neighborhood string   `json:"neighborhood"`
	Cuisine      string   `json:"cuisine"`
	PriceLevel   int      `json:"price_level"`
	Rating       float64  `json:"rating"`
	RatingCount  int      `json:"rating_count"`
	PhotoRef     string   `json:"photo_ref,omitempty"`
	MapURL       string   `json:"map_url,omitempty"`
	DealText     string   `json:"deal_text,omitempty"`
	Drinks       []string `json:"drinks,omitempty"`
	Food         []string `json:"food,omitempty"`
	Days         []string `json:"days,omitempty"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
}

// Provider fetches place listings for a free-text query.
type Provider func(ctx context.Context, query string) ([]Place, error)

// Static returns a Provider that always yields the given places.
// Useful in tests and as a stub provider.
func Static(fixed []Place) Provider {
	return func(_ context.Context, _ string) ([]Place, error) {
		return fixed, nil
	}
}

// MapsURL builds a maps search link for a place from its name and
// address, for providers that do not return one.
func MapsURL(name, address string) string {
	q := strings.ReplaceAll(strings.TrimSpace(name+" "+address), " ", "+")
	if q == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", q)
}
