package happyhourd

import "strings"

// TimeFilter narrows results by the venue's recurring deal window
// relative to the current wall-clock time.
type TimeFilter string

const (
	TimeAny          TimeFilter = "any"
	TimeHappeningNow TimeFilter = "now"
	TimeStartingSoon TimeFilter = "soon"
	TimeToday        TimeFilter = "today"
)

// DealFilter narrows results by the kind of special a venue offers.
type DealFilter string

const (
	DealAny    DealFilter = "any"
	DealDrinks DealFilter = "drinks"
	DealFood   DealFilter = "food"
)

// SearchQuery configures a venue search. Text is optional; a blank or
// whitespace-only value means filter-only matching against the store.
type SearchQuery struct {
	Text         string     // Free-text query
	Neighborhood string     // Equality filter
	Cuisine      string     // Equality filter
	MaxPrice     int        // Price ceiling (inclusive), 0 = unset
	Day          string     // Weekday name filter, "" = unset
	Time         TimeFilter // any, now, soon, today ("" = any)
	Deal         DealFilter // any, drinks, food ("" = any)
	Limit        int        // Max indexed hits (default 100)
}

// HasText reports whether the query carries a non-blank text term.
func (q SearchQuery) HasText() bool {
	return strings.TrimSpace(q.Text) != ""
}

// IsDefault reports whether the query carries no text and no filters,
// in which case the engine returns the full store in insertion order.
func (q SearchQuery) IsDefault() bool {
	return !q.HasText() && q.Neighborhood == "" && q.Cuisine == "" &&
		q.MaxPrice == 0 && q.Day == "" &&
		(q.Time == "" || q.Time == TimeAny) &&
		(q.Deal == "" || q.Deal == DealAny)
}

// listFilter projects the query's structured filters for the store.
func (q SearchQuery) listFilter() ListFilter {
	return ListFilter{
		Neighborhood: q.Neighborhood,
		Cuisine:      q.Cuisine,
		MaxPrice:     q.MaxPrice,
	}
}

// Hit is a single match returned by a text search strategy, before
// post-filtering and ranking.
type Hit struct {
	ID    string
	Score float64
	// Snapshot is the strategy's own copy of the venue data. The
	// engine prefers the store record and falls back to the snapshot
	// only when the hit's ID is no longer present in the store.
	Snapshot *Venue
}

// SearchResponse is what the engine hands to presentation layers.
type SearchResponse struct {
	Results      []*Venue `json:"results"`
	TotalResults int      `json:"total_results"`
	SearchTimeMs float64  `json:"search_time_ms"`
	// IsLoading is true while the index is still building; Results
	// then hold the full unfiltered store as a placeholder.
	IsLoading bool `json:"is_loading"`
}

// DefaultSearchLimit is the default cap on indexed search hits.
const DefaultSearchLimit = 100
