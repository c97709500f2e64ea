package smasher

import (
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
)

// Session tracks one run: score, health and the selected difficulty.
type Session struct {
	Score      int
	Health     int
	Difficulty core.Difficulty
	GameOver   bool

	rules config.SessionConfig
}

// NewSession creates a session with full health.
func NewSession(rules config.SessionConfig) *Session {
	s := &Session{rules: rules, Difficulty: core.DifficultyNormal}
	s.Reset()
	return s
}

// Reset restores full health and zero score, keeping the difficulty.
func (s *Session) Reset() {
	s.Score = 0
	s.Health = s.rules.StartingHealth
	s.GameOver = false
}

// Hit awards the hit score.
func (s *Session) Hit() {
	s.Score += s.rules.HitScore
}

// Miss costs one health. Returns true only on the call that ends the run.
func (s *Session) Miss() bool {
	if s.Health > 0 {
		s.Health--
	}
	if s.Health == 0 && !s.GameOver {
		s.GameOver = true
		return true
	}
	return false
}
