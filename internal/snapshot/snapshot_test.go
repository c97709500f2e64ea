package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
)

func newMachine() *smasher.Machine {
	return smasher.NewMachine(config.Default(), assets.Default(), smasher.Options{Seed: 3})
}

func TestStageReachesEveryPhase(t *testing.T) {
	for p := smasher.PhaseMenu; p < smasher.PhaseCount; p++ {
		t.Run(p.String(), func(t *testing.T) {
			m := newMachine()
			if _, err := Stage(m, p, 60); err != nil {
				t.Fatalf("Stage() failed: %v", err)
			}
			if m.Phase() != p {
				t.Errorf("phase = %s, want %s", m.Phase(), p)
			}
		})
	}
}

func TestStagePlayingScores(t *testing.T) {
	m := newMachine()
	if _, err := Stage(m, smasher.PhasePlaying, 60); err != nil {
		t.Fatal(err)
	}
	s := m.Session()
	if s.Score == 0 {
		t.Error("demo play never hit a cue")
	}
	if s.Health != 5 {
		t.Errorf("demo play lost health: %d", s.Health)
	}
}

func TestWritePNG(t *testing.T) {
	m := newMachine()
	if _, err := Stage(m, smasher.PhaseGameOver, 60); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "shots", "over.png")
	if err := WritePNG(path, m, assets.Default(), 0.5); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 400 {
		t.Errorf("image is %dx%d, want 300x400", b.Dx(), b.Dy())
	}
}

func TestCanvasPaintsPixels(t *testing.T) {
	c := NewCanvas(assets.Default(), 100, 100, 1)
	c.Clear(core.ColorBlack)
	c.RoundRect(core.NewRect(10, 10, 40, 40), 5, core.ColorRed, core.Opaque)

	r, g, b, _ := c.Image().At(30, 30).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel inside rect = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = c.Image().At(80, 80).RGBA()
	if r != 0 {
		t.Errorf("pixel outside rect is not black")
	}
}
