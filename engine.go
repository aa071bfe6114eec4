package happyhourd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"
)

// EngineConfig configures the search engine.
type EngineConfig struct {
	Store   *VenueStore      // Venue collection (required)
	Indexer Indexer          // Search index (nil = in-memory Bleve)
	Logger  *slog.Logger     // Logger (nil = slog.Default())
	Now     func() time.Time // Clock (nil = time.Now); injectable for tests
}

// Engine orchestrates venue search: it combines the text-search
// strategies with structured filtering, temporal post-filters, deal
// classification, and ranking. There is no fatal error path — every
// failure mode degrades to a best-effort result set.
type Engine struct {
	store   *VenueStore
	indexer Indexer
	scan    *LinearScan
	log     *slog.Logger
	now     func() time.Time

	// ready flips once the one-time index build attempt finishes;
	// healthy only if it succeeded. Both are written exactly once by
	// the build goroutine and read thereafter.
	ready   atomic.Bool
	healthy atomic.Bool
	readyCh chan struct{}
}

// NewEngine creates an engine over the given store. The index is not
// built yet; call Start, then optionally WaitReady. Searches issued
// before the build completes return the full store with IsLoading set.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}

	indexer := cfg.Indexer
	if indexer == nil {
		var err error
		indexer, err = NewBleveIndexer()
		if err != nil {
			return nil, err
		}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		store:   cfg.Store,
		indexer: indexer,
		scan:    NewLinearScan(cfg.Store),
		log:     log,
		now:     now,
		readyCh: make(chan struct{}),
	}, nil
}

// Start kicks off the one-time index build in the background. Input
// handling is never blocked on it: callers may keep searching and
// will see IsLoading responses until the build attempt finishes. A
// failed build is not fatal — the engine then serves every query
// through the linear scan, degraded but correct.
func (e *Engine) Start(ctx context.Context) {
	go func() {
		if err := e.indexer.Rebuild(ctx, e.store.All()); err != nil {
			e.log.Warn("index build failed, serving via linear scan", "error", err)
		} else {
			e.healthy.Store(true)
		}
		e.ready.Store(true)
		close(e.readyCh)
	}()
}

// WaitReady blocks until the index build attempt finishes or the
// context is done.
func (e *Engine) WaitReady(ctx context.Context) error {
	select {
	case <-e.readyCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the one-time index build attempt has finished.
func (e *Engine) Ready() bool {
	return e.ready.Load()
}

// Close releases the underlying index.
func (e *Engine) Close() error {
	return e.indexer.Close()
}

// Search runs a query against the store and returns an ordered result
// list. It never returns an error: indexed failures are logged and
// retried through the linear scan for that query.
func (e *Engine) Search(ctx context.Context, query SearchQuery) SearchResponse {
	started := time.Now()
	now := e.now()

	// Before the index build attempt finishes, present the full store
	// as a loading placeholder rather than a false "no results".
	if !e.ready.Load() {
		results := e.store.All()
		return SearchResponse{
			Results:      results,
			TotalResults: len(results),
			SearchTimeMs: msSince(started),
			IsLoading:    true,
		}
	}

	if query.IsDefault() {
		results := e.store.All()
		return SearchResponse{
			Results:      results,
			TotalResults: len(results),
			SearchTimeMs: msSince(started),
		}
	}

	var venues []*Venue
	if query.HasText() {
		venues = e.textSearch(ctx, query)
	} else {
		// Filter-only queries go straight to the store; these are
		// exact-match filters, not text search.
		venues = e.store.List(query.listFilter())
	}

	venues = e.postFilter(venues, query, now)
	e.rank(venues, now)

	return SearchResponse{
		Results:      venues,
		TotalResults: len(venues),
		SearchTimeMs: msSince(started),
	}
}

// textSearch runs the text portion of a query through the selected
// strategy and hydrates the hits back into store records.
func (e *Engine) textSearch(ctx context.Context, query SearchQuery) []*Venue {
	hits, err := e.strategy().Search(ctx, query)
	if err != nil {
		e.log.Warn("indexed search failed, retrying via linear scan", "error", err)
		// LinearScan never errors.
		hits, _ = e.scan.Search(ctx, query)
	}
	return e.hydrate(hits)
}

// strategy selects the text-search strategy by index health.
func (e *Engine) strategy() SearchStrategy {
	if e.healthy.Load() {
		return e.indexer
	}
	return e.scan
}

// hydrate resolves hits back to full store records. A hit whose ID is
// absent from the store (index/store drift) degrades to the hit's own
// snapshot rather than being dropped.
func (e *Engine) hydrate(hits []Hit) []*Venue {
	venues := make([]*Venue, 0, len(hits))
	for _, h := range hits {
		if v, err := e.store.Get(h.ID); err == nil {
			venues = append(venues, v)
			continue
		}
		if h.Snapshot != nil {
			venues = append(venues, h.Snapshot)
		}
	}
	return venues
}

// postFilter applies the day, time, and deal-type filters.
func (e *Engine) postFilter(venues []*Venue, query SearchQuery, now time.Time) []*Venue {
	out := venues[:0:len(venues)]
	for _, v := range venues {
		if query.Day != "" && !v.OnDay(query.Day) {
			continue
		}
		if !matchesTimeFilter(v, query.Time, now) {
			continue
		}
		if !matchesDealFilter(v, query.Deal) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesTimeFilter(v *Venue, tf TimeFilter, now time.Time) bool {
	switch tf {
	case TimeHappeningNow:
		return HappeningNow(v, now)
	case TimeStartingSoon:
		return StartingSoon(v, now)
	case TimeToday:
		return HappeningToday(v, now)
	default:
		return true
	}
}

func matchesDealFilter(v *Venue, df DealFilter) bool {
	switch df {
	case DealDrinks:
		return HasDrinkSpecials(v)
	case DealFood:
		return HasFoodSpecials(v)
	default:
		return true
	}
}

// rank sorts venues whose deal is in progress ahead of the rest,
// descending by rating within each group. The sort is stable, so ties
// keep their relative order.
func (e *Engine) rank(venues []*Venue, now time.Time) {
	sort.SliceStable(venues, func(i, j int) bool {
		nowI := HappeningNow(venues[i], now)
		nowJ := HappeningNow(venues[j], now)
		if nowI != nowJ {
			return nowI
		}
		return venues[i].Rating > venues[j].Rating
	})
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}

// Stats holds aggregate statistics over the store.
type Stats struct {
	TotalVenues    int            `json:"total_venues"`
	HappeningNow   int            `json:"happening_now"`
	ByNeighborhood map[string]int `json:"by_neighborhood"`
	ByCuisine      map[string]int `json:"by_cuisine"`
	AvgRating      float64        `json:"avg_rating"`
}

// Stats computes aggregate statistics over the store at the engine's
// current clock.
func (e *Engine) Stats() Stats {
	now := e.now()
	stats := Stats{
		ByNeighborhood: make(map[string]int),
		ByCuisine:      make(map[string]int),
	}

	var ratingSum float64
	for _, v := range e.store.venues {
		stats.TotalVenues++
		stats.ByNeighborhood[v.Neighborhood]++
		stats.ByCuisine[v.Cuisine]++
		ratingSum += v.Rating
		if HappeningNow(v, now) {
			stats.HappeningNow++
		}
	}
	if stats.TotalVenues > 0 {
		stats.AvgRating = ratingSum / float64(stats.TotalVenues)
	}
	return stats
}
