package happyhourd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when a requested venue does not exist.
var ErrNotFound = errors.New("not found")

// VenueStore is an immutable, in-memory ordered collection of venues.
// It is loaded once at startup; all query operations are read-only
// projections, so no locking is needed after construction.
type VenueStore struct {
	venues []*Venue
	byID   map[string]*Venue
}

// NewVenueStore builds a store from an already-loaded venue slice,
// preserving its order. The caller must not mutate the venues
// afterwards.
func NewVenueStore(venues []*Venue) *VenueStore {
	byID := make(map[string]*Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}
	return &VenueStore{venues: venues, byID: byID}
}

// LoadStore reads a JSON array of venues from path and builds a store
// over it.
func LoadStore(path string) (*VenueStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read venue data %s: %w", path, err)
	}

	var venues []*Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("unmarshal venue data %s: %w", path, err)
	}

	return NewVenueStore(venues), nil
}

// Len returns the number of venues in the store.
func (s *VenueStore) Len() int {
	return len(s.venues)
}

// All returns every venue in insertion order. The returned slice is a
// fresh copy; the underlying records are shared and must be treated
// as read-only.
func (s *VenueStore) All() []*Venue {
	out := make([]*Venue, len(s.venues))
	copy(out, s.venues)
	return out
}

// Get returns the venue with the given ID, or ErrNotFound.
func (s *VenueStore) Get(id string) (*Venue, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("venue %s: %w", id, ErrNotFound)
	}
	return v, nil
}

// List returns venues matching the structured filter, in insertion
// order. These are exact-match filters; free-text search goes through
// the engine's search strategies instead.
func (s *VenueStore) List(filter ListFilter) []*Venue {
	var out []*Venue
	for _, v := range s.venues {
		if !matchesFilter(v, filter) {
			continue
		}
		out = append(out, v)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}

// matchesFilter checks a venue against the structured filter criteria.
func matchesFilter(v *Venue, filter ListFilter) bool {
	if filter.Neighborhood != "" && v.Neighborhood != filter.Neighborhood {
		return false
	}
	if filter.Cuisine != "" && v.Cuisine != filter.Cuisine {
		return false
	}
	if filter.MaxPrice > 0 && v.PriceLevel > filter.MaxPrice {
		return false
	}
	return true
}
