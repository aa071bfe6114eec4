package happyhourd

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"happyhourd/places"
)

// Config holds the happyhourd configuration loaded from a TOML file.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Search SearchConfig `toml:"search"`
	Places PlacesConfig `toml:"places"`
}

// DataConfig configures the bundled venue data.
type DataConfig struct {
	File string `toml:"file"` // default: "./venues.json"
}

// SearchConfig configures the query engine and debouncer.
type SearchConfig struct {
	Limit      int `toml:"limit"`       // indexed hit cap (default 100)
	DebounceMs int `toml:"debounce_ms"` // keystroke debounce (default 100)
}

// PlacesConfig configures the build-time venue acquisition step.
type PlacesConfig struct {
	Provider  string `toml:"provider"` // "cached" or "api"
	URL       string `toml:"url"`
	APIKey    string `toml:"api_key"` // supports ${ENV_VAR} expansion
	Query     string `toml:"query"`   // e.g. "happy hour bars"
	CacheFile string `toml:"cache_file"`
	Workers   int    `toml:"workers"` // detail-fetch concurrency
}

// LoadConfig reads a TOML file at path and returns a parsed Config.
// Environment variables referenced as ${VAR_NAME} in the api_key
// field are expanded.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Places.APIKey = expandEnvVars(cfg.Places.APIKey)

	return &cfg, nil
}

// DataFile returns the venue data path, defaulting to ./venues.json.
func (c *Config) DataFile() string {
	if c.Data.File == "" {
		return "./venues.json"
	}
	return c.Data.File
}

// SearchLimit returns the configured indexed hit cap.
func (c *Config) SearchLimit() int {
	if c.Search.Limit <= 0 {
		return DefaultSearchLimit
	}
	return c.Search.Limit
}

// DebounceDelay returns the configured keystroke debounce window.
func (c *Config) DebounceDelay() time.Duration {
	if c.Search.DebounceMs <= 0 {
		return DefaultDebounceDelay
	}
	return time.Duration(c.Search.DebounceMs) * time.Millisecond
}

// BuildProvider constructs a places.Provider from the places
// configuration.
func (c *Config) BuildProvider() (places.Provider, error) {
	switch c.Places.Provider {
	case "cached", "":
		return places.Cached(c.CacheFile()), nil
	case "api":
		if c.Places.URL == "" {
			return nil, fmt.Errorf("places.url is required for the api provider")
		}
		return places.API(places.APIConfig{
			URL:    c.Places.URL,
			APIKey: c.Places.APIKey,
		}), nil
	default:
		return nil, fmt.Errorf("unknown places provider: %q", c.Places.Provider)
	}
}

// CacheFile returns the static places snapshot path.
func (c *Config) CacheFile() string {
	if c.Places.CacheFile == "" {
		return "./venues_cache.json"
	}
	return c.Places.CacheFile
}

// FetchWorkers returns the detail-fetch concurrency.
func (c *Config) FetchWorkers() int {
	if c.Places.Workers <= 0 {
		return 4
	}
	return c.Places.Workers
}

// expandEnvVars replaces ${VAR_NAME} patterns in s with the
// corresponding environment variable values.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
