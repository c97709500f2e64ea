package storage

import (
	"fmt"

	"github.com/vovakirdan/button-smasher/internal/config"
)

// Open returns the store selected by cfg. A leading ~ in the path is
// expanded to the home directory.
func Open(cfg config.HighscoreConfig) (Store, error) {
	path, err := config.ExpandHome(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		return OpenSQL(path)
	case config.BackendText, "":
		return NewTextStore(path), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
