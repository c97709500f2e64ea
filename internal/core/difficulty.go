package core

import (
	"fmt"
	"strings"
)

// Difficulty is the tier selected before a run.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyCount = 3
)

// Difficulties lists every tier in ascending order.
var Difficulties = [DifficultyCount]Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// String returns the canonical name, as used in the highscore file.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the defined tiers.
func (d Difficulty) Valid() bool {
	return d >= 0 && d < DifficultyCount
}

// ParseDifficulty matches a canonical name exactly.
func ParseDifficulty(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// ParseDifficultyFold matches a name case-insensitively, for CLI flags and
// config keys.
func ParseDifficultyFold(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}
