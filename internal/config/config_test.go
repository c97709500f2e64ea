package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/button-smasher/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := Default()

	if cfg.Playfield.HitZone() != def.Playfield.HitZone() {
		t.Errorf("hit zone = %+v, want %+v", cfg.Playfield.HitZone(), def.Playfield.HitZone())
	}
	for _, d := range core.Difficulties {
		if cfg.Difficulties.For(d) != def.Difficulties.For(d) {
			t.Errorf("%s tuning = %+v, want %+v", d, cfg.Difficulties.For(d), def.Difficulties.For(d))
		}
	}
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, want %+v", cfg.Timing, def.Timing)
	}
	if cfg.Timing.CountdownPhase != 500*time.Millisecond {
		t.Errorf("countdown phase = %v, want 500ms", cfg.Timing.CountdownPhase)
	}
	if len(cfg.Session.Phrases) != len(def.Session.Phrases) {
		t.Errorf("phrases = %d, want %d", len(cfg.Session.Phrases), len(def.Session.Phrases))
	}
}

func TestHitZoneGeometry(t *testing.T) {
	zone := Default().Playfield.HitZone()
	want := core.NewRect(0, 630, 600, 20)
	if zone != want {
		t.Errorf("HitZone() = %+v, want %+v", zone, want)
	}
	if got := Default().Playfield.ReceptorY(); got != 600 {
		t.Errorf("ReceptorY() = %d, want 600", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "difficulties:\n  hard:\n    fall_speed: 20\n    spawn_min: 10\n    spawn_max: 30\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := cfg.Difficulties.Hard.FallSpeed; got != 20 {
		t.Errorf("hard fall speed = %v, want 20", got)
	}
	// Untouched sections keep their defaults.
	if got := cfg.Difficulties.Easy.FallSpeed; got != 8 {
		t.Errorf("easy fall speed = %v, want 8", got)
	}
	if got := cfg.Session.StartingHealth; got != 5 {
		t.Errorf("starting health = %d, want 5", got)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"speeds not increasing", func(c *Config) { c.Difficulties.SetFallSpeed(core.DifficultyHard, 12) }},
		{"zero speed", func(c *Config) { c.Difficulties.SetFallSpeed(core.DifficultyEasy, 0) }},
		{"three lanes", func(c *Config) { c.Playfield.Lanes = []int{100, 200, 300} }},
		{"inverted spawn range", func(c *Config) { c.Difficulties.Normal.SpawnMin = 50 }},
		{"double chance above one", func(c *Config) { c.Difficulties.Normal.DoubleChance = 1.5 }},
		{"unknown backend", func(c *Config) { c.Highscores.Backend = "redis" }},
		{"no health", func(c *Config) { c.Session.StartingHealth = 0 }},
		{"zero countdown", func(c *Config) { c.Timing.CountdownPhase = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("playfield: [")); err == nil {
		t.Error("Parse() of broken YAML should fail")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x")
	if err != nil || got != "/tmp/x" {
		t.Errorf("ExpandHome(/tmp/x) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/scores.txt")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, "scores.txt"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
}
