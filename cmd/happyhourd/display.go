package main

import (
	"fmt"
	"strings"

	"happyhourd"
)

func printVenue(v *happyhourd.Venue) {
	fmt.Printf("Name:         %s\n", v.Name)
	fmt.Printf("ID:           %s\n", v.ID)
	if v.Neighborhood != "" {
		fmt.Printf("Neighborhood: %s\n", v.Neighborhood)
	}
	if v.Cuisine != "" {
		fmt.Printf("Cuisine:      %s\n", v.Cuisine)
	}
	if v.Address != "" {
		fmt.Printf("Address:      %s\n", v.Address)
	}
	if v.PriceLevel > 0 {
		fmt.Printf("Price:        %s\n", strings.Repeat("$", v.PriceLevel))
	}
	if v.Rating > 0 {
		fmt.Printf("Rating:       %.1f (%d reviews)\n", v.Rating, v.RatingCount)
	}
	if len(v.Days) > 0 {
		fmt.Printf("Days:         %s\n", strings.Join(v.Days, ", "))
	}
	if v.StartTime != "" {
		fmt.Printf("Window:       %s – %s\n", v.StartTime, v.EndTime)
	}
	if v.DealText != "" {
		fmt.Printf("Deal:         %s\n", v.DealText)
	}
	if len(v.Drinks) > 0 {
		fmt.Printf("Drinks:       %s\n", strings.Join(v.Drinks, ", "))
	}
	if len(v.Food) > 0 {
		fmt.Printf("Food:         %s\n", strings.Join(v.Food, ", "))
	}
}
