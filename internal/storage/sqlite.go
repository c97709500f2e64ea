package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/button-smasher/internal/core"
)

// SQLStore keeps best scores and run history in SQLite.
type SQLStore struct {
	db *sql.DB
}

// DifficultyStats aggregates the run history of one difficulty.
type DifficultyStats struct {
	Difficulty core.Difficulty
	Runs       int
	Best       int
	AvgScore   float64
	LastPlayed time.Time
}

// OpenSQL creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQL(dbPath string) (*SQLStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *SQLStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			difficulty TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			played_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_played ON runs(played_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the best score of every difficulty. Rows naming an unknown
// difficulty are ignored.
func (s *SQLStore) Load() (Record, error) {
	var rec Record

	rows, err := s.db.Query("SELECT difficulty, score FROM highscores")
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query highscores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var score int
		if err := rows.Scan(&name, &score); err != nil {
			return rec, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if d, ok := core.ParseDifficulty(name); ok && score > 0 {
			rec[d] = score
		}
	}

	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rec, nil
}

// Save writes the record. Stored values never decrease.
func (s *SQLStore) Save(r Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range core.Difficulties {
		_, err := tx.Exec(
			`INSERT INTO highscores (difficulty, score) VALUES (?, ?)
			 ON CONFLICT(difficulty) DO UPDATE SET
			   score = MAX(score, excluded.score),
			   updated_at = CURRENT_TIMESTAMP`,
			d.String(), r[d],
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save %s highscore: %w", d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit highscores: %w", err)
	}
	return nil
}

// SaveRuns appends finished runs to the history.
func (s *SQLStore) SaveRuns(runs []Run) error {
	if len(runs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO runs (difficulty, score, played_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, run := range runs {
		playedAt := run.PlayedAt
		if playedAt.IsZero() {
			playedAt = time.Now()
		}
		if _, err := stmt.Exec(run.Difficulty.String(), run.Score, playedAt.UTC().Format(timeLayout)); err != nil {
			return fmt.Errorf("storage: cannot save run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit runs: %w", err)
	}
	return nil
}

// RecentRuns returns the latest runs, newest first.
func (s *SQLStore) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, difficulty, score, played_at FROM runs
		 ORDER BY played_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// TopRuns returns the best runs of one difficulty, highest first.
func (s *SQLStore) TopRuns(d core.Difficulty, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, difficulty, score, played_at FROM runs
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		d.String(), limit,
	)
}

func (s *SQLStore) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var name string
		var playedAt any
		if err := rows.Scan(&run.ID, &name, &run.Score, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d, ok := core.ParseDifficulty(name)
		if !ok {
			continue
		}
		run.Difficulty = d
		run.PlayedAt = parseTime(playedAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates the run history of d.
func (s *SQLStore) Stats(d core.Difficulty) (DifficultyStats, error) {
	stats := DifficultyStats{Difficulty: d}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(played_at)
		 FROM runs WHERE difficulty = ?`,
		d.String(),
	).Scan(&stats.Runs, &stats.Best, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get %s stats: %w", d, err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both driver-decoded times and stored strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ Store       = (*SQLStore)(nil)
	_ RunRecorder = (*SQLStore)(nil)
)
