package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/smasher.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded default configuration. It mirrors the
// embedded YAML and is used when that fails to parse.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:          600,
			Height:         800,
			CueSize:        80,
			Lanes:          []int{100, 200, 300, 400},
			ReceptorOffset: 200,
			HitZoneHeight:  20,
			HitZoneOffset:  -10,
			HitInflate:     60,
		},
		Difficulties: DifficultyTable{
			Easy: DifficultyTuning{
				FallSpeed: 8,
				SpawnMin:  35,
				SpawnMax:  50,
			},
			Normal: DifficultyTuning{
				FallSpeed:    12,
				SpawnMin:     25,
				SpawnMax:     45,
				DoubleChance: 0.1,
			},
			Hard: DifficultyTuning{
				FallSpeed:    15,
				SpawnMin:     20,
				SpawnMax:     50,
				DoubleChance: 0.2,
				BurstChance:  0.1,
				BurstSize:    3,
			},
		},
		Timing: TimingConfig{
			CountdownPhase:  500 * time.Millisecond,
			SelectDebounce:  200 * time.Millisecond,
			Pop:             150 * time.Millisecond,
			Shake:           150 * time.Millisecond,
			Flash:           400 * time.Millisecond,
			Fade:            500 * time.Millisecond,
			InitialSpawnMin: 20,
			InitialSpawnMax: 50,
		},
		Session: SessionConfig{
			StartingHealth: 5,
			HitScore:       10,
			Particles:      20,
			Phrases: []string{
				"Agay",
				"Akala ko ulan, luha ko pala iyon",
				"SKILL ISSUE!",
				"Hampang nalang snek snek",
				"LMAO",
			},
		},
		Highscores: HighscoreConfig{
			Backend: BackendText,
			Path:    "~/.smasher/highscore.txt",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1.5,
		},
		Observe: ObserveConfig{
			AllowedOrigins:    []string{"http://localhost:*", "http://127.0.0.1:*"},
			StreamInterval:    100 * time.Millisecond,
			UpgradesPerSecond: 2,
			UpgradeBurst:      4,
		},
	}
}
