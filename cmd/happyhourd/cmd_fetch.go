package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"happyhourd"
	"happyhourd/places"
)

// runFetch is the build-time data acquisition step: it pulls venue
// listings from the configured places provider and writes the static
// data file the store loads at startup. If the API is unavailable it
// falls back to the cached snapshot.
func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	out := fs.String("out", "", "output data file (default: configured data file)")
	query := fs.String("query", "", "places search query (default: configured query)")
	noDetails := fs.Bool("no-details", false, "skip the per-place details fetch")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider, err := cfg.BuildProvider()
	if err != nil {
		return fmt.Errorf("build provider: %w", err)
	}

	q := *query
	if q == "" {
		q = cfg.Places.Query
	}
	if q == "" {
		q = "happy hour"
	}

	ctx := context.Background()
	log := slog.Default()

	fetched, err := provider(ctx, q)
	if err != nil {
		if cfg.Places.Provider != "api" {
			return fmt.Errorf("fetch places: %w", err)
		}
		// API unavailable: fall back to the static snapshot.
		log.Warn("places API unavailable, using cached snapshot", "error", err)
		fetched, err = places.Cached(cfg.CacheFile())(ctx, q)
		if err != nil {
			return fmt.Errorf("fetch places (cached fallback): %w", err)
		}
	}

	if cfg.Places.Provider == "api" && !*noDetails {
		details := places.APIDetails(places.APIConfig{
			URL:    cfg.Places.URL,
			APIKey: cfg.Places.APIKey,
		})
		fetched, err = places.Enrich(ctx, fetched, details, cfg.FetchWorkers(), log)
		if err != nil {
			return fmt.Errorf("enrich places: %w", err)
		}

		// Refresh the snapshot so the cached fallback keeps working.
		if err := places.WriteCache(cfg.CacheFile(), fetched); err != nil {
			log.Warn("refresh cached snapshot failed", "error", err)
		}
	}

	venues := happyhourd.VenuesFromPlaces(fetched)

	dest := *out
	if dest == "" {
		dest = dataFile(cfg)
	}
	if err := happyhourd.WriteVenueData(dest, venues); err != nil {
		return err
	}

	fmt.Printf("Wrote %d venue(s) to %s\n", len(venues), dest)
	return nil
}
