package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/observe"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagScores != "" {
		cfg.Highscores.Path = flagScores
	}
	if flagBackend != "" {
		cfg.Highscores.Backend = flagBackend
	}
	if flagMetricsAddr != "" {
		cfg.Observe.Addr = flagMetricsAddr
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := applyFallSpeeds(&cfg.Difficulties, flagFallSpeeds); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFallSpeeds applies "difficulty=speed" overrides. The table is
// validated afterwards, so speeds must still increase with difficulty.
func applyFallSpeeds(table *config.DifficultyTable, overrides []string) error {
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("%w: fall speed %q, want difficulty=speed", config.ErrInvalid, o)
		}
		d, err := core.ParseDifficultyFold(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalid, err)
		}
		speed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: fall speed %q: %v", config.ErrInvalid, value, err)
		}
		table.SetFallSpeed(d, speed)
	}
	return nil
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens the play log. The terminal belongs to the game, so
// interactive play never logs to stderr.
func openLogFile() (io.WriteCloser, error) {
	path := flagLogFile
	if path == "" {
		path = config.UserPath("smasher.log")
		if path == "" {
			return nopCloser{io.Discard}, nil
		}
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadAssets loads the embedded sprite sheet. A broken sheet is fatal.
func loadAssets() *assets.Sheet {
	sheet, err := assets.Load("")
	if err != nil {
		fatal("loading assets: %v", err)
	}
	return sheet
}

// openKeeper opens the highscore store and loads the saved record. An
// unreadable record is not fatal: affected difficulties start at zero.
func openKeeper(cfg config.HighscoreConfig, logger *log.Logger) (*storage.Keeper, error) {
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	keeper := storage.NewKeeper(store)
	if err := keeper.Load(); err != nil {
		logger.Warn("highscores partly unreadable", "path", cfg.Path, "error", err)
	}
	return keeper, nil
}

// observability bundles the optional metrics server.
type observability struct {
	metrics *observe.Metrics
	hub     *observe.Hub
	server  *observe.Server
}

// startObservability starts the metrics server when an address is set.
// A bind failure is logged and the game runs without it.
func startObservability(cfg config.ObserveConfig, logger *log.Logger) *observability {
	if cfg.Addr == "" {
		return nil
	}
	o := &observability{metrics: observe.NewMetrics(), hub: observe.NewHub()}
	o.server = observe.NewServer(cfg.Addr, observe.RouterConfig{
		Hub:     o.hub,
		Metrics: o.metrics,
		Observe: cfg,
		Logger:  logger,
	})
	if err := o.server.Start(); err != nil {
		logger.Warn("metrics server disabled", "error", err)
		return nil
	}
	return o
}

func (o *observability) shutdown(logger *log.Logger) {
	if o == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := o.server.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown", "error", err)
	}
}
