package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

func TestHistoryRuns(t *testing.T) {
	sql, err := storage.OpenSQL(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("OpenSQL: %v", err)
	}
	defer sql.Close()

	err = sql.SaveRuns([]storage.Run{
		{Difficulty: core.DifficultyEasy, Score: 40},
		{Difficulty: core.DifficultyHard, Score: 30},
		{Difficulty: core.DifficultyHard, Score: 90},
	})
	if err != nil {
		t.Fatalf("SaveRuns: %v", err)
	}

	all, err := historyRuns(sql, "", 10)
	if err != nil || len(all) != 3 {
		t.Fatalf("recent runs = %d, %v; expected 3", len(all), err)
	}

	hard, err := historyRuns(sql, "HARD", 10)
	if err != nil {
		t.Fatalf("historyRuns(HARD): %v", err)
	}
	if len(hard) != 2 || hard[0].Score != 90 {
		t.Errorf("hard runs = %+v, expected best 90 first", hard)
	}

	if _, err := historyRuns(sql, "extreme", 10); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
