package happyhourd

// Venue represents a single business with one recurring weekly
// happy-hour deal window. Venues are immutable once loaded: every
// query operation is a read-only projection over the store.
type Venue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood"`
	Cuisine      string   `json:"cuisine"`
	Address      string   `json:"address"`
	DealText     string   `json:"deal_text"`
	Drinks       []string `json:"drinks"`
	Food         []string `json:"food"`
	Days         []string `json:"days"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	PriceLevel   int      `json:"price_level"`
	Rating       float64  `json:"rating"`

	// Presentation attributes carried through unchanged; the search
	// core never interprets them.
	PhotoRef    string `json:"photo_ref,omitempty"`
	MapURL      string `json:"map_url,omitempty"`
	RatingCount int    `json:"rating_count,omitempty"`
}

// OnDay reports whether the venue's recurring deal applies on the
// given weekday name (e.g. "Friday").
func (v *Venue) OnDay(day string) bool {
	for _, d := range v.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ListFilter configures structured venue listing. These are
// exact-match filters, not text search.
type ListFilter struct {
	Neighborhood string
	Cuisine      string
	MaxPrice     int // 0 = no ceiling
	Limit        int // 0 = no limit
}

// IsZero reports whether no filter field is set.
func (f ListFilter) IsZero() bool {
	return f.Neighborhood == "" && f.Cuisine == "" && f.MaxPrice == 0
}
