package places

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Cached returns a Provider backed by a static JSON snapshot on disk.
// It is the fallback when the places API is unavailable and the
// default source for development. The query argument is ignored; the
// snapshot is returned as-is.
func Cached(path string) Provider {
	return func(_ context.Context, _ string) ([]Place, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read cached places %s: %w", path, err)
		}

		var out []Place
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("unmarshal cached places %s: %w", path, err)
		}
		return out, nil
	}
}

// WriteCache writes places as an indented JSON snapshot, suitable for
// later use with Cached.
func WriteCache(path string, fetched []Place) error {
	data, err := json.MarshalIndent(fetched, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal places: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write cached places %s: %w", path, err)
	}
	return nil
}
