package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
)

func openTestDB(t *testing.T) (*SQLStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := OpenSQL(dbPath)
	if err != nil {
		t.Fatalf("OpenSQL() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLStoreOpenClose(t *testing.T) {
	_, dbPath := openTestDB(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLStoreEmptyLoad(t *testing.T) {
	store, _ := openTestDB(t)

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec != (Record{}) {
		t.Errorf("Load() = %v, want zeros", rec)
	}
}

func TestSQLStoreSaveNeverDecreases(t *testing.T) {
	store, _ := openTestDB(t)

	if err := store.Save(Record{10, 200, 30}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(Record{50, 100, 0}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if want := (Record{50, 200, 30}); rec != want {
		t.Errorf("Load() = %v, want %v", rec, want)
	}
}

func TestSQLStoreRuns(t *testing.T) {
	store, _ := openTestDB(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{Difficulty: core.DifficultyNormal, Score: 40, PlayedAt: base},
		{Difficulty: core.DifficultyNormal, Score: 90, PlayedAt: base.Add(time.Minute)},
		{Difficulty: core.DifficultyHard, Score: 10, PlayedAt: base.Add(2 * time.Minute)},
		{Difficulty: core.DifficultyNormal, Score: 60, PlayedAt: base.Add(3 * time.Minute)},
	}
	if err := store.SaveRuns(runs); err != nil {
		t.Fatalf("SaveRuns() failed: %v", err)
	}

	top, err := store.TopRuns(core.DifficultyNormal, 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 90 || top[1].Score != 60 {
		t.Errorf("TopRuns() = %+v, want scores 90, 60", top)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("RecentRuns() returned %d runs, want 4", len(recent))
	}
	if recent[0].Score != 60 || recent[0].Difficulty != core.DifficultyNormal {
		t.Errorf("newest run = %+v, want Normal 60", recent[0])
	}
	if !recent[0].PlayedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("newest run played at %v, want %v", recent[0].PlayedAt, base.Add(3*time.Minute))
	}

	stats, err := store.Stats(core.DifficultyNormal)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Best != 90 {
		t.Errorf("Stats() = %+v, want 3 runs best 90", stats)
	}
	if stats.AvgScore < 63 || stats.AvgScore > 64 {
		t.Errorf("Stats().AvgScore = %v, want ~63.3", stats.AvgScore)
	}

	empty, err := store.Stats(core.DifficultyEasy)
	if err != nil {
		t.Fatalf("Stats(Easy) failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats(Easy) = %+v, want empty", empty)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	text, err := Open(config.HighscoreConfig{Backend: config.BackendText, Path: filepath.Join(dir, "hs.txt")})
	if err != nil {
		t.Fatalf("Open(text) failed: %v", err)
	}
	if _, ok := text.(*TextStore); !ok {
		t.Errorf("Open(text) = %T, want *TextStore", text)
	}

	sqlStore, err := Open(config.HighscoreConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "hs.db")})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	defer sqlStore.Close()
	if _, ok := sqlStore.(RunRecorder); !ok {
		t.Errorf("Open(sqlite) = %T, want a RunRecorder", sqlStore)
	}

	if _, err := Open(config.HighscoreConfig{Backend: "redis"}); err == nil {
		t.Error("Open(redis) should fail")
	}
}
