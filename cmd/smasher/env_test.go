package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagScores, flagBackend, flagMetricsAddr = "", "", "", ""
		flagMute = false
		flagFallSpeeds = nil
	})
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	flagScores = filepath.Join(dir, "scores.db")
	flagBackend = config.BackendSQLite
	flagMetricsAddr = "127.0.0.1:0"
	flagMute = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Highscores.Path != flagScores || cfg.Highscores.Backend != config.BackendSQLite {
		t.Errorf("highscores = %+v", cfg.Highscores)
	}
	if cfg.Observe.Addr != "127.0.0.1:0" {
		t.Errorf("observe addr = %q", cfg.Observe.Addr)
	}
	if cfg.Audio.Enabled {
		t.Error("mute did not disable audio")
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	resetFlags(t)
	flagBackend = "csv"
	if _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestPercent(t *testing.T) {
	tests := map[float64]string{0: "-", 0.1: "10%", 0.25: "25%", 1: "100%"}
	for in, want := range tests {
		if got := percent(in); got != want {
			t.Errorf("percent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestObservabilityDisabledWithoutAddr(t *testing.T) {
	logger := newLogger(io.Discard, "test")
	if o := startObservability(config.Default().Observe, logger); o != nil {
		t.Error("server started without an address")
	}
	var o *observability
	o.shutdown(logger)
}

func TestFallSpeedOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		wantErr   bool
		hard      float64
	}{
		{"none", nil, false, 15},
		{"case insensitive", []string{"HARD=18"}, false, 18},
		{"several", []string{"easy=5", "hard = 20"}, false, 20},
		{"missing value", []string{"hard"}, true, 0},
		{"unknown difficulty", []string{"insane=30"}, true, 0},
		{"not a number", []string{"hard=fast"}, true, 0},
		{"not increasing", []string{"hard=10"}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			flagConfig = writeDefaultConfig(t)
			flagFallSpeeds = tt.overrides

			cfg, err := loadConfig()
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalid) {
					t.Fatalf("err = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if got := cfg.Difficulties.For(core.DifficultyHard).FallSpeed; got != tt.hard {
				t.Errorf("hard fall speed = %v, want %v", got, tt.hard)
			}
		})
	}
}

func TestWrittenConfigLoadsBack(t *testing.T) {
	resetFlags(t)
	flagConfig = writeDefaultConfig(t)
	flagFallSpeeds = []string{"hard=18"}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	var buf bytes.Buffer
	if err := writeConfig(&buf, cfg); err != nil {
		t.Fatalf("writeConfig: %v", err)
	}
	back, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("config changed through YAML:\n got %+v\nwant %+v", back, cfg)
	}
}

// writeDefaultConfig pins the config to the embedded defaults so the
// user's own config file cannot affect the test.
func writeDefaultConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smasher.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
