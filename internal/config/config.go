// Package config provides YAML-based game configuration loading and the
// per-difficulty tuning table.
package config

import (
	"time"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// Config contains all tunables of the game.
type Config struct {
	Playfield    PlayfieldConfig `yaml:"playfield"`
	Difficulties DifficultyTable `yaml:"difficulties"`
	Timing       TimingConfig    `yaml:"timing"`
	Session      SessionConfig   `yaml:"session"`
	Highscores   HighscoreConfig `yaml:"highscores"`
	Audio        AudioConfig     `yaml:"audio"`
	Observe      ObserveConfig   `yaml:"observe"`
}

// PlayfieldConfig defines the logical playfield geometry. All values are in
// playfield units; canvases scale them to their own resolution.
type PlayfieldConfig struct {
	Width          int   `yaml:"width"`
	Height         int   `yaml:"height"`
	CueSize        int   `yaml:"cue_size"`
	Lanes          []int `yaml:"lanes"`           // Left x of each lane
	ReceptorOffset int   `yaml:"receptor_offset"` // Receptor top, measured up from the bottom
	HitZoneHeight  int   `yaml:"hit_zone_height"`
	HitZoneOffset  int   `yaml:"hit_zone_offset"` // Added to the receptor centre line
	HitInflate     int   `yaml:"hit_inflate"`     // Horizontal tolerance added to cue rects
}

// ReceptorY returns the top of the receptor row.
func (p PlayfieldConfig) ReceptorY() int {
	return p.Height - p.ReceptorOffset
}

// HitZone returns the full-width strip cues must overlap to be hit.
func (p PlayfieldConfig) HitZone() core.Rect {
	y := p.ReceptorY() + p.CueSize/2 + p.HitZoneOffset
	return core.NewRect(0, y, p.Width, p.HitZoneHeight)
}

// TimingConfig holds the durations of every timed transition and effect.
type TimingConfig struct {
	CountdownPhase  time.Duration `yaml:"countdown_phase"`
	SelectDebounce  time.Duration `yaml:"select_debounce"`
	Pop             time.Duration `yaml:"pop"`
	Shake           time.Duration `yaml:"shake"`
	Flash           time.Duration `yaml:"flash"`
	Fade            time.Duration `yaml:"fade"`
	InitialSpawnMin int           `yaml:"initial_spawn_min"` // Ticks before the first batch
	InitialSpawnMax int           `yaml:"initial_spawn_max"`
}

// SessionConfig defines scoring rules and game-over flavour.
type SessionConfig struct {
	StartingHealth int      `yaml:"starting_health"`
	HitScore       int      `yaml:"hit_score"`
	Particles      int      `yaml:"particles"`
	Phrases        []string `yaml:"phrases"`
}

// Highscore backends.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// HighscoreConfig selects where best scores are persisted.
type HighscoreConfig struct {
	Backend string `yaml:"backend"` // "text" or "sqlite"
	Path    string `yaml:"path"`    // Text file path or sqlite database path
	// SaveOnGameOver additionally persists the record whenever a run ends.
	// Off by default: the record is written at shutdown.
	SaveOnGameOver bool `yaml:"save_on_game_over"`
}

// AudioConfig controls the synthesized sound player.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// ObserveConfig configures the optional metrics and spectator server.
type ObserveConfig struct {
	Addr              string        `yaml:"addr"` // Empty disables the server
	AllowedOrigins    []string      `yaml:"allowed_origins"`
	StreamInterval    time.Duration `yaml:"stream_interval"`
	UpgradesPerSecond float64       `yaml:"upgrades_per_second"`
	UpgradeBurst      int           `yaml:"upgrade_burst"`
}
