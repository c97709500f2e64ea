package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DifficultyTuning defines fall speed and spawn policy for one tier.
type DifficultyTuning struct {
	FallSpeed    float64 `yaml:"fall_speed"`    // Playfield units per tick
	SpawnMin     int     `yaml:"spawn_min"`     // Inclusive, ticks between batches
	SpawnMax     int     `yaml:"spawn_max"`     // Inclusive
	DoubleChance float64 `yaml:"double_chance"` // Two cues in distinct lanes
	BurstChance  float64 `yaml:"burst_chance"`  // Drawn only when the double draw fails
	BurstSize    int     `yaml:"burst_size"`    // Cues stacked in one lane
}

// DifficultyTable holds the tuning of every tier.
type DifficultyTable struct {
	Easy   DifficultyTuning `yaml:"easy"`
	Normal DifficultyTuning `yaml:"normal"`
	Hard   DifficultyTuning `yaml:"hard"`
}

// For returns the tuning of d. Unknown tiers fall back to Normal.
func (t DifficultyTable) For(d core.Difficulty) DifficultyTuning {
	switch d {
	case core.DifficultyEasy:
		return t.Easy
	case core.DifficultyHard:
		return t.Hard
	default:
		return t.Normal
	}
}

// set replaces the tuning of d.
func (t *DifficultyTable) set(d core.Difficulty, tuning DifficultyTuning) {
	switch d {
	case core.DifficultyEasy:
		t.Easy = tuning
	case core.DifficultyNormal:
		t.Normal = tuning
	case core.DifficultyHard:
		t.Hard = tuning
	}
}

// SetFallSpeed overrides the fall speed of one tier.
func (t *DifficultyTable) SetFallSpeed(d core.Difficulty, speed float64) {
	tuning := t.For(d)
	tuning.FallSpeed = speed
	t.set(d, tuning)
}

// Validate checks one tier in isolation.
func (dt DifficultyTuning) Validate(name string) error {
	switch {
	case dt.FallSpeed <= 0:
		return fmt.Errorf("%w: %s fall_speed must be positive", ErrInvalid, name)
	case dt.SpawnMin < 1 || dt.SpawnMax < dt.SpawnMin:
		return fmt.Errorf("%w: %s spawn range %d-%d", ErrInvalid, name, dt.SpawnMin, dt.SpawnMax)
	case dt.DoubleChance < 0 || dt.DoubleChance > 1:
		return fmt.Errorf("%w: %s double_chance %v outside [0,1]", ErrInvalid, name, dt.DoubleChance)
	case dt.BurstChance < 0 || dt.BurstChance > 1:
		return fmt.Errorf("%w: %s burst_chance %v outside [0,1]", ErrInvalid, name, dt.BurstChance)
	case dt.BurstChance > 0 && dt.BurstSize < 1:
		return fmt.Errorf("%w: %s burst_size must be at least 1", ErrInvalid, name)
	}
	return nil
}

// Validate checks every tier and requires fall speed to strictly increase
// from Easy to Hard.
func (t DifficultyTable) Validate() error {
	prev := 0.0
	for _, d := range core.Difficulties {
		tuning := t.For(d)
		if err := tuning.Validate(d.String()); err != nil {
			return err
		}
		if tuning.FallSpeed <= prev {
			return fmt.Errorf("%w: %s fall_speed %v must exceed the easier tier (%v)",
				ErrInvalid, d, tuning.FallSpeed, prev)
		}
		prev = tuning.FallSpeed
	}
	return nil
}
