package main

import (
	"flag"
	"fmt"
	"os"
)

// runInit generates a .happyhourd.toml configuration template in the
// current directory.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "overwrite existing "+configFile)
	provider := fs.String("provider", "cached", "places provider: cached, api")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*force {
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("`%s` already exists (use -force to overwrite)", configFile)
		}
	}

	content := buildTemplate(*provider)

	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	fmt.Println("Created " + configFile)
	fmt.Println("Next: run `happyhourd fetch` to populate the venue data file.")
	return nil
}

// buildTemplate returns the TOML configuration template for the given
// places provider.
func buildTemplate(provider string) string {
	header := `# happyhourd configuration

[data]
file = "./venues.json"

[search]
limit = 100
debounce_ms = 100

`

	var placesSection string
	switch provider {
	case "api":
		placesSection = `[places]
# Places provider: "cached" or "api"
provider = "api"
url = "https://maps.googleapis.com/maps/api/place"
api_key = "${PLACES_API_KEY}"
query = "happy hour bars"
cache_file = "./venues_cache.json"
workers = 4
`
	default:
		placesSection = `[places]
# Places provider: "cached" or "api"
provider = "cached"
cache_file = "./venues_cache.json"
`
	}

	return header + placesSection
}
