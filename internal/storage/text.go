package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// TextStore keeps the record as "Name:value" lines in a flat file.
type TextStore struct {
	path string
}

// NewTextStore returns a store for the file at path. The file is not
// touched until Load or Save.
func NewTextStore(path string) *TextStore {
	return &TextStore{path: path}
}

// Path returns the file path.
func (s *TextStore) Path() string {
	return s.path
}

// Load reads the record. A missing file yields zeros. Malformed lines are
// skipped and reported through the returned error, which wraps
// ErrMalformed; the record is still usable in that case.
func (s *TextStore) Load() (Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	return ParseRecord(f)
}

// Save overwrites the file with one line per difficulty.
func (s *TextStore) Save(r Record) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, FormatRecord(r), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for text files.
func (s *TextStore) Close() error {
	return nil
}

// ErrMalformed is wrapped when a highscore line cannot be parsed.
var ErrMalformed = errors.New("storage: malformed highscore line")

// ParseRecord reads "Name:value" lines. Unknown names and blank lines are
// ignored. Lines with a known name but an unparsable or negative value
// leave that entry at 0; every such line is reported in the joined error.
func ParseRecord(r io.Reader) (Record, error) {
	var (
		rec  Record
		errs []error
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			errs = append(errs, fmt.Errorf("%w: line %d: missing separator", ErrMalformed, lineNo))
			continue
		}
		d, known := core.ParseDifficulty(strings.TrimSpace(name))
		if !known {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || score < 0 {
			errs = append(errs, fmt.Errorf("%w: line %d: bad value %q for %s", ErrMalformed, lineNo, value, d))
			continue
		}
		rec[d] = score
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("storage: read failed: %w", err))
	}
	return rec, errors.Join(errs...)
}

// FormatRecord renders the record in file order Easy, Normal, Hard.
func FormatRecord(r Record) []byte {
	var buf bytes.Buffer
	for _, d := range core.Difficulties {
		fmt.Fprintf(&buf, "%s:%d\n", d, r[d])
	}
	return buf.Bytes()
}
