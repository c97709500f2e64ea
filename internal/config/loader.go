package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.smasher/config.yaml -> ./configs/smasher.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when absent or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/smasher.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Keys missing from the document keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	p := c.Playfield
	if p.Width <= 0 || p.Height <= 0 || p.CueSize <= 0 {
		return fmt.Errorf("%w: playfield dimensions must be positive", ErrInvalid)
	}
	if len(p.Lanes) != core.LaneCount {
		return fmt.Errorf("%w: playfield needs exactly %d lanes, got %d", ErrInvalid, core.LaneCount, len(p.Lanes))
	}
	if p.ReceptorOffset <= 0 || p.ReceptorOffset >= p.Height {
		return fmt.Errorf("%w: receptor_offset %d outside playfield", ErrInvalid, p.ReceptorOffset)
	}
	if p.HitZoneHeight <= 0 || p.HitInflate < 0 {
		return fmt.Errorf("%w: hit zone height must be positive and inflate non-negative", ErrInvalid)
	}
	if err := c.Difficulties.Validate(); err != nil {
		return err
	}
	t := c.Timing
	if t.CountdownPhase <= 0 {
		return fmt.Errorf("%w: countdown_phase must be positive", ErrInvalid)
	}
	if t.InitialSpawnMin < 1 || t.InitialSpawnMax < t.InitialSpawnMin {
		return fmt.Errorf("%w: initial spawn range %d-%d", ErrInvalid, t.InitialSpawnMin, t.InitialSpawnMax)
	}
	if c.Session.StartingHealth < 1 {
		return fmt.Errorf("%w: starting_health must be at least 1", ErrInvalid)
	}
	if c.Session.HitScore < 0 {
		return fmt.Errorf("%w: hit_score must be non-negative", ErrInvalid)
	}
	switch c.Highscores.Backend {
	case BackendText, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown highscore backend %q", ErrInvalid, c.Highscores.Backend)
	}
	return nil
}

// UserPath returns a path under ~/.smasher, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".smasher", filename)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
