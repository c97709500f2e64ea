// Package storage persists the per-difficulty highscore record.
// Two backends exist: a flat "Name:value" text file and a pure-Go SQLite
// database that also keeps a history of finished runs.
package storage

import (
	"time"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// Record maps every difficulty to its best score.
type Record [core.DifficultyCount]int

// Get returns the best score for d, or 0 for an unknown difficulty.
func (r Record) Get(d core.Difficulty) int {
	if !d.Valid() {
		return 0
	}
	return r[d]
}

// Update raises the best score for d if score exceeds it.
// Returns true if the record changed.
func (r *Record) Update(d core.Difficulty, score int) bool {
	if !d.Valid() || score <= r[d] {
		return false
	}
	r[d] = score
	return true
}

// Merge raises every entry to the maximum of both records.
func (r *Record) Merge(other Record) {
	for i, score := range other {
		r.Update(core.Difficulty(i), score)
	}
}

// Run is one finished game.
type Run struct {
	ID         int64
	Difficulty core.Difficulty
	Score      int
	PlayedAt   time.Time
}

// Store loads and saves the highscore record.
type Store interface {
	Load() (Record, error)
	Save(Record) error
	Close() error
}

// RunRecorder is implemented by backends that keep run history.
type RunRecorder interface {
	SaveRuns([]Run) error
	RecentRuns(limit int) ([]Run, error)
}
