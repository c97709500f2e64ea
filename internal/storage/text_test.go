package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/button-smasher/internal/core"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Record
		malformed bool
	}{
		{"valid", "Easy:10\nNormal:20\nHard:30\n", Record{10, 20, 30}, false},
		{"bad easy value", "Easy:abc\nNormal:20\nHard:30\n", Record{0, 20, 30}, true},
		{"negative value", "Easy:-5\nHard:7\n", Record{0, 0, 7}, true},
		{"missing separator", "Easy 10\nNormal:4\n", Record{0, 4, 0}, true},
		{"unknown names ignored", "Insane:99\nNormal:3\n", Record{0, 3, 0}, false},
		{"blank lines and spaces", "\n Easy : 5 \n\n", Record{5, 0, 0}, false},
		{"empty", "", Record{}, false},
		{"case sensitive names", "easy:5\n", Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(strings.NewReader(tt.input))
			if got != tt.want {
				t.Errorf("ParseRecord() = %v, want %v", got, tt.want)
			}
			if tt.malformed != errors.Is(err, ErrMalformed) {
				t.Errorf("ParseRecord() error = %v, malformed want %v", err, tt.malformed)
			}
		})
	}
}

func TestFormatRecord(t *testing.T) {
	got := string(FormatRecord(Record{1, 22, 333}))
	want := "Easy:1\nNormal:22\nHard:333\n"
	if got != want {
		t.Errorf("FormatRecord() = %q, want %q", got, want)
	}
}

func TestTextStoreMissingFile(t *testing.T) {
	store := NewTextStore(filepath.Join(t.TempDir(), "none.txt"))
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of missing file failed: %v", err)
	}
	if rec != (Record{}) {
		t.Errorf("Load() = %v, want zeros", rec)
	}
}

func TestTextStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	store := NewTextStore(path)

	want := Record{40, 120, 0}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}

	// Save overwrites rather than appends.
	if err := store.Save(Record{1, 2, 3}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != core.DifficultyCount {
		t.Errorf("file has %d lines, want %d", lines, core.DifficultyCount)
	}
}

func TestTextStoreMalformedIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("Easy:abc\nNormal:50\nHard:60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := NewTextStore(path).Load()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Load() error = %v, want ErrMalformed", err)
	}
	if rec != (Record{0, 50, 60}) {
		t.Errorf("Load() = %v, want [0 50 60]", rec)
	}
}

func TestRecordUpdateNeverDecreases(t *testing.T) {
	var r Record
	if !r.Update(core.DifficultyNormal, 30) {
		t.Error("Update(30) on empty record should change it")
	}
	if r.Update(core.DifficultyNormal, 20) {
		t.Error("Update(20) below best should not change it")
	}
	if r.Update(core.DifficultyNormal, 30) {
		t.Error("Update(30) equal to best should not change it")
	}
	if got := r.Get(core.DifficultyNormal); got != 30 {
		t.Errorf("Get(Normal) = %d, want 30", got)
	}
	if got := r.Get(core.Difficulty(9)); got != 0 {
		t.Errorf("Get(invalid) = %d, want 0", got)
	}

	r.Merge(Record{5, 10, 50})
	if r != (Record{5, 30, 50}) {
		t.Errorf("Merge() = %v, want [5 30 50]", r)
	}

	// Get reads records returned by value.
	if got := loadedRecord().Get(core.DifficultyHard); got != 3 {
		t.Errorf("Get(Hard) on returned record = %d, want 3", got)
	}
}

func loadedRecord() Record {
	return Record{1, 2, 3}
}
