package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"happyhourd"
)

const configFile = ".happyhourd.toml"

// loadConfig reads the TOML config if present, otherwise returns a
// zero config whose accessors supply the defaults.
func loadConfig() (*happyhourd.Config, error) {
	cfg, err := happyhourd.LoadConfig(configFile)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &happyhourd.Config{}, nil
}

// dataFile resolves the venue data path; the HAPPYHOURD_DATA env var
// overrides the config.
func dataFile(cfg *happyhourd.Config) string {
	if envFile := os.Getenv("HAPPYHOURD_DATA"); envFile != "" {
		return envFile
	}
	return cfg.DataFile()
}

// loadStore loads the venue collection for the current config.
func loadStore(cfg *happyhourd.Config) (*happyhourd.VenueStore, error) {
	store, err := happyhourd.LoadStore(dataFile(cfg))
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	return store, nil
}

// newEngine builds an engine over the configured store. When wait is
// true it blocks until the index build attempt finishes, so one-shot
// commands get indexed results instead of the loading placeholder.
func newEngine(ctx context.Context, wait bool) (*happyhourd.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return nil, err
	}

	eng, err := happyhourd.NewEngine(happyhourd.EngineConfig{Store: store})
	if err != nil {
		return nil, fmt.Errorf("init engine: %w", err)
	}

	eng.Start(ctx)
	if wait {
		if err := eng.WaitReady(ctx); err != nil {
			eng.Close()
			return nil, err
		}
	}
	return eng, nil
}
