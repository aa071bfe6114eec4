package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"happyhourd"
)

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	neighborhood := fs.String("neighborhood", "", "filter by neighborhood")
	cuisine := fs.String("cuisine", "", "filter by cuisine")
	day := fs.String("day", "", "filter by weekday name (e.g. Friday)")
	maxPrice := fs.Int("max-price", 0, "price ceiling 1-4 (0 = no ceiling)")
	timeFilter := fs.String("time", "any", "time filter: any, now, soon, today")
	dealFilter := fs.String("deal", "any", "deal filter: any, drinks, food")
	limit := fs.Int("limit", happyhourd.DefaultSearchLimit, "maximum indexed hits")
	jsonFlag := fs.Bool("json", false, "output as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.Join(fs.Args(), " ")

	ctx := context.Background()
	eng, err := newEngine(ctx, true)
	if err != nil {
		return err
	}
	defer eng.Close()

	resp := eng.Search(ctx, happyhourd.SearchQuery{
		Text:         query,
		Neighborhood: *neighborhood,
		Cuisine:      *cuisine,
		MaxPrice:     *maxPrice,
		Day:          *day,
		Time:         happyhourd.TimeFilter(*timeFilter),
		Deal:         happyhourd.DealFilter(*dealFilter),
		Limit:        *limit,
	})

	if *jsonFlag {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(happyhourd.FormatResults(&resp, query))
	return nil
}
