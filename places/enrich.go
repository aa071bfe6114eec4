package places

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// DetailFunc fetches additional fields for one place. Implementations
// typically hit a details endpoint of the same API the provider used.
type DetailFunc func(ctx context.Context, placeID string) (*Place, error)

// Enrich fetches details for each place on a bounded worker pool and
// merges them in. A failed detail fetch is logged and leaves the
// place as-is; acquisition is best-effort by design. The input order
// is preserved.
func Enrich(ctx context.Context, fetched []Place, fetch DetailFunc, workers int, logger *slog.Logger) ([]Place, error) {
	if fetch == nil || len(fetched) == 0 {
		return fetched, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	out := make([]Place, len(fetched))
	copy(out, fetched)

	var wg sync.WaitGroup
	for i := range out {
		if out[i].PlaceID == "" {
			continue
		}

		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			detail, err := fetch(ctx, out[i].PlaceID)
			if err != nil {
				logger.Warn("detail fetch failed", "place_id", out[i].PlaceID, "error", err)
				return
			}
			merge(&out[i], detail)
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	return out, nil
}

// merge copies non-zero detail fields onto the base place.
func merge(base *Place, detail *Place) {
	if detail == nil {
		return
	}
	if detail.Address != "" {
		base.Address = detail.Address
	}
	if detail.Neighborhood != "" {
		base.Neighborhood = detail.Neighborhood
	}
	if detail.Cuisine != "" {
		base.Cuisine = detail.Cuisine
	}
	if detail.DealText != "" {
		base.DealText = detail.DealText
	}
	if len(detail.Drinks) > 0 {
		base.Drinks = detail.Drinks
	}
	if len(detail.Food) > 0 {
		base.Food = detail.Food
	}
	if len(detail.Days) > 0 {
		base.Days = detail.Days
	}
	if detail.StartTime != "" {
		base.StartTime = detail.StartTime
	}
	if detail.EndTime != "" {
		base.EndTime = detail.EndTime
	}
	if detail.PhotoRef != "" {
		base.PhotoRef = detail.PhotoRef
	}
	if detail.MapURL != "" {
		base.MapURL = detail.MapURL
	}
	if detail.Rating > 0 {
		base.Rating = detail.Rating
	}
	if detail.RatingCount > 0 {
		base.RatingCount = detail.RatingCount
	}
	if detail.PriceLevel > 0 {
		base.PriceLevel = detail.PriceLevel
	}
}
