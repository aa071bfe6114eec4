package happyhourd

import (
	"context"
	"strings"
)

// SearchStrategy produces text-search hits for a query's text term
// and structured filters. The engine selects between the indexed
// strategy and the linear scan by health, and post-filters, ranks,
// and hydrates the hits itself.
type SearchStrategy interface {
	Search(ctx context.Context, query SearchQuery) ([]Hit, error)
}

// LinearScan is the index-free reimplementation of the search
// semantics: case-insensitive substring matching over name, deal
// text, and neighborhood, plus the same structured filters. It is
// behaviorally available at all times, independent of index health,
// and never returns an error.
type LinearScan struct {
	store *VenueStore
}

var _ SearchStrategy = (*LinearScan)(nil)

// NewLinearScan creates a scan strategy over the given store.
func NewLinearScan(store *VenueStore) *LinearScan {
	return &LinearScan{store: store}
}

// Search walks the store in insertion order and returns hits for
// venues matching both the text term and the structured filters.
func (ls *LinearScan) Search(_ context.Context, query SearchQuery) ([]Hit, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	term := strings.ToLower(strings.TrimSpace(query.Text))
	filter := query.listFilter()

	var hits []Hit
	for _, v := range ls.store.venues {
		if !matchesFilter(v, filter) {
			continue
		}
		if term != "" && !scanMatches(v, term) {
			continue
		}
		hits = append(hits, Hit{ID: v.ID, Snapshot: v})
		if len(hits) >= limit {
			break
		}
	}
	return hits, nil
}

// scanMatches reports whether the folded term appears as a substring
// of the venue's name, deal text, or neighborhood.
func scanMatches(v *Venue, term string) bool {
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.DealText), term) ||
		strings.Contains(strings.ToLower(v.Neighborhood), term)
}
