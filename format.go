package happyhourd

import (
	"fmt"
	"strings"
)

// FormatResults renders a search response as plain text for terminal
// display. Returns an empty string for nil input and a "no results"
// message for empty result sets.
func FormatResults(resp *SearchResponse, query string) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder

	if resp.IsLoading {
		b.WriteString("(index still building — showing all venues)\n\n")
	} else if len(resp.Results) == 0 {
		if query != "" {
			return "No venues found for: " + query
		}
		return "No venues found."
	}

	if query != "" {
		b.WriteString(fmt.Sprintf("%d venue(s) for %q (%.1fms)\n\n", resp.TotalResults, query, resp.SearchTimeMs))
	} else {
		b.WriteString(fmt.Sprintf("%d venue(s) (%.1fms)\n\n", resp.TotalResults, resp.SearchTimeMs))
	}

	for i, v := range resp.Results {
		writeVenueEntry(&b, i+1, v)
	}

	return b.String()
}

func writeVenueEntry(b *strings.Builder, num int, v *Venue) {
	b.WriteString(fmt.Sprintf("%d. %s", num, v.Name))
	if v.Rating > 0 {
		b.WriteString(fmt.Sprintf("  (%.1f★", v.Rating))
		if v.RatingCount > 0 {
			b.WriteString(fmt.Sprintf(", %d reviews", v.RatingCount))
		}
		b.WriteString(")")
	}
	b.WriteString("\n")

	var meta []string
	if v.Neighborhood != "" {
		meta = append(meta, v.Neighborhood)
	}
	if v.Cuisine != "" {
		meta = append(meta, v.Cuisine)
	}
	if v.PriceLevel > 0 {
		meta = append(meta, strings.Repeat("$", v.PriceLevel))
	}
	if len(meta) > 0 {
		b.WriteString("   " + strings.Join(meta, " · ") + "\n")
	}

	if len(v.Days) > 0 && v.StartTime != "" {
		b.WriteString(fmt.Sprintf("   %s %s–%s\n", strings.Join(v.Days, ", "), v.StartTime, v.EndTime))
	}
	if v.DealText != "" {
		b.WriteString("   " + v.DealText + "\n")
	}
	b.WriteString("\n")
}
