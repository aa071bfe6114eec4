package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"sort"

	"happyhourd"
)

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	jsonFlag := fs.Bool("json", false, "output as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	// Stats are pure store aggregates; no index build needed.
	eng, err := happyhourd.NewEngine(happyhourd.EngineConfig{Store: store})
	if err != nil {
		return err
	}
	defer eng.Close()

	stats := eng.Stats()

	if *jsonFlag {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Total Venues:   %d\n", stats.TotalVenues)
	fmt.Printf("Happening Now:  %d\n", stats.HappeningNow)
	fmt.Printf("Avg Rating:     %.2f\n", stats.AvgRating)

	printBreakdown("By Neighborhood:", stats.ByNeighborhood)
	printBreakdown("By Cuisine:", stats.ByCuisine)
	return nil
}

func printBreakdown(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	fmt.Println("\n" + title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		label := k
		if label == "" {
			label = "(unknown)"
		}
		fmt.Printf("  %-20s %d\n", label, counts[k])
	}
}
