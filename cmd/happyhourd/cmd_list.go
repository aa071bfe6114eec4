package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"happyhourd"
)

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	neighborhood := fs.String("neighborhood", "", "filter by neighborhood")
	cuisine := fs.String("cuisine", "", "filter by cuisine")
	maxPrice := fs.Int("max-price", 0, "price ceiling 1-4 (0 = no ceiling)")
	limit := fs.Int("limit", 0, "maximum venues (0 = all)")
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

	venues := store.List(happyhourd.ListFilter{
		Neighborhood: *neighborhood,
		Cuisine:      *cuisine,
		MaxPrice:     *maxPrice,
		Limit:        *limit,
	})

	if *jsonFlag {
		data, err := json.MarshalIndent(venues, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(venues) == 0 {
		fmt.Println("No venues found.")
		return nil
	}

	for _, v := range venues {
		printVenue(v)
		fmt.Println()
	}
	fmt.Printf("%d venue(s)\n", len(venues))
	return nil
}
