package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
)

// Render draws the machine's current frame onto a fresh canvas.
func Render(m *smasher.Machine, sheet *assets.Sheet, scale float64) *Canvas {
	pf := m.Config().Playfield
	c := NewCanvas(sheet, pf.Width, pf.Height, scale)
	m.Render(c)
	return c
}

// WritePNG renders the machine and saves it to path, creating parent
// directories as needed.
func WritePNG(path string, m *smasher.Machine, sheet *assets.Sheet, scale float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	if err := Render(m, sheet, scale).SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: cannot write %s: %w", path, err)
	}
	return nil
}
