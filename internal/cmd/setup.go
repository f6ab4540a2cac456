package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/catalog"
	"github.com/Iron-Ham/pokebox/internal/config"
	"github.com/Iron-Ham/pokebox/internal/logging"
)

// newLogger opens the log file described by cfg, or returns a no-op logger
// when logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	dir := cfg.Logging.ResolveDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logger, err := logging.NewLogger(dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

// newLoader builds the catalog client and box loader described by cfg.
func newLoader(cfg *config.Config, logger *logging.Logger) (*box.Loader, error) {
	client, err := catalog.NewHTTPClient(catalog.Options{
		BaseURL:   cfg.Catalog.BaseURL,
		Timeout:   cfg.Catalog.Timeout(),
		UserAgent: cfg.Catalog.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return box.NewLoader(client, box.NewRandomLevels(cfg.Box.RandomSeed), box.LoaderOptions{
		MaxParallel: cfg.Catalog.MaxParallel,
		Logger:      logger,
	}), nil
}
