package places

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIConfig configures the HTTP places provider.
type APIConfig struct {
	URL     string        // Base URL of the places API
	APIKey  string        // API key sent as a query parameter
	Timeout time.Duration // Request timeout (default 15s)
}

type searchResponse struct {
	Results []apiPlace `json:"results"`
	Status  string     `json:"status"`
}

type apiPlace struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Vicinity         string  `json:"vicinity"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       int     `json:"price_level"`
	Types            []string `json:"types"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// API returns a Provider that calls a places text-search API.
func API(cfg APIConfig) Provider {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout)

	return func(ctx context.Context, query string) ([]Place, error) {
		var result searchResponse
		resp, err := client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"query": query,
				"key":   cfg.APIKey,
			}).
			SetResult(&result).
			Get("/textsearch/json")
		if err != nil {
			return nil, fmt.Errorf("places request: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("places error (status %d): %s", resp.StatusCode(), resp.String())
		}
		if result.Status != "" && result.Status != "OK" && result.Status != "ZERO_RESULTS" {
			return nil, fmt.Errorf("places status %s", result.Status)
		}

		out := make([]Place, 0, len(result.Results))
		for _, p := range result.Results {
			out = append(out, fromAPIPlace(p))
		}
		return out, nil
	}
}

func fromAPIPlace(p apiPlace) Place {
	address := p.FormattedAddress
	if address == "" {
		address = p.Vicinity
	}

	place := Place{
		PlaceID:     p.PlaceID,
		Name:        p.Name,
		Address:     address,
		Cuisine:     cuisineFromTypes(p.Types),
		PriceLevel:  p.PriceLevel,
		Rating:      p.Rating,
		RatingCount: p.UserRatingsTotal,
		MapURL:      MapsURL(p.Name, address),
	}
	if len(p.Photos) > 0 {
		place.PhotoRef = p.Photos[0].PhotoReference
	}
	return place
}

// APIDetails returns a DetailFunc that calls the details endpoint of
// the same places API.
func APIDetails(cfg APIConfig) DetailFunc {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout)

	return func(ctx context.Context, placeID string) (*Place, error) {
		var result struct {
			Result apiPlace `json:"result"`
			Status  string   `json:"status"`
		}
		resp, err := client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"place_id": placeID,
				"key":      cfg.APIKey,
			}).
			SetResult(&result).
			Get("/details/json")
		if err != nil {
			return nil, fmt.Errorf("details request: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("details error (status %d): %s", resp.StatusCode(), resp.String())
		}
		if result.Status != "" && result.Status != "OK" {
			return nil, fmt.Errorf("details status %s", result.Status)
		}

		detail := fromAPIPlace(result.Result)
		return &detail, nil
	}
}

// cuisineFromTypes picks the most descriptive place type as the
// cuisine label, skipping generic ones.
func cuisineFromTypes(types []string) string {
	for _, t := range types {
		switch t {
		case "restaurant", "bar", "food", "establishment", "point_of_interest":
			continue
		default:
			return t
		}
	}
	return ""
}
