// Package common provides the shared dependencies every subcommand needs:
// the loaded configuration and a logger built from it.
package common

import (
	"fmt"

	"github.com/jonesrussell/cleverscrape/internal/config"
	"github.com/jonesrussell/cleverscrape/internal/logger"
)

// Deps holds the dependencies shared by all commands.
type Deps struct {
	Config *config.Config
	Logger logger.Interface
}

// NewCommandDeps loads the configuration and constructs the logger.
func NewCommandDeps() (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Deps{Config: cfg, Logger: log}, nil
}
