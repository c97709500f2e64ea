// Package assets loads the sprite sheet: named sprite descriptions that
// canvases turn into glyphs or vector shapes, plus the title and credits.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/button-smasher/internal/core"
)

//go:embed sheet.yaml
var defaultSheet []byte

// ErrMissingSprite is wrapped when a required sprite is absent.
var ErrMissingSprite = errors.New("assets: missing sprite")

// Shape selects how a vector canvas draws a sprite.
type Shape string

const (
	ShapeArrow    Shape = "arrow"
	ShapePortrait Shape = "portrait"
	ShapeBackdrop Shape = "backdrop"
)

// Fixed sprite IDs.
const (
	MenuBackground = "menu-bg"
	GameBackground = "game-bg"
	PortraitCount  = 5
)

// Sprite describes one image.
type Sprite struct {
	Shape     Shape  `yaml:"shape"`
	Direction string `yaml:"direction"` // Arrow heading: left, down, up or right
	ColorName string `yaml:"color"`
	Glyph     string `yaml:"glyph"`
	Label     string `yaml:"label"`
	Outline   bool   `yaml:"outline"` // Draw the border only
}

// Color resolves the sprite's palette colour.
func (s Sprite) Color() core.Color {
	if c, ok := colorNames[s.ColorName]; ok {
		return c
	}
	return core.ColorWhite
}

// Sheet is the parsed sprite sheet.
type Sheet struct {
	Title   string            `yaml:"title"`
	Credits []string          `yaml:"credits"`
	Sprites map[string]Sprite `yaml:"sprites"`
}

// Sprite looks up a sprite by ID.
func (s *Sheet) Sprite(id string) (Sprite, bool) {
	sp, ok := s.Sprites[id]
	return sp, ok
}

var colorNames = map[string]core.Color{
	"black":      core.ColorBlack,
	"white":      core.ColorWhite,
	"red":        core.ColorRed,
	"gray":       core.ColorGray,
	"background": core.ColorBackground,
	"left":       core.ColorLeft,
	"down":       core.ColorDown,
	"up":         core.ColorUp,
	"right":      core.ColorRight,
	"yellow":     core.ColorYellow,
}

// CueID returns the sprite of a falling cue in lane l.
func CueID(l core.Lane) string {
	return "cue-" + strings.ToLower(l.String())
}

// ReceptorID returns the sprite of the receptor of lane l.
func ReceptorID(l core.Lane) string {
	return "receptor-" + strings.ToLower(l.String())
}

// PortraitID returns the sprite of credits portrait i, counted from 0.
func PortraitID(i int) string {
	return fmt.Sprintf("portrait-%d", i+1)
}

// Required lists every sprite ID the game draws.
func Required() []string {
	ids := []string{MenuBackground, GameBackground}
	for l := core.Lane(0); l < core.LaneCount; l++ {
		ids = append(ids, CueID(l), ReceptorID(l))
	}
	for i := range PortraitCount {
		ids = append(ids, PortraitID(i))
	}
	return ids
}

// Load reads the sheet at path, or the embedded sheet when path is empty.
func Load(path string) (*Sheet, error) {
	data := defaultSheet
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes a sheet and checks that every required sprite is present.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sheet: %w", err)
	}

	var missing []string
	for _, id := range Required() {
		if _, ok := sheet.Sprites[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSprite, strings.Join(missing, ", "))
	}
	for id, sp := range sheet.Sprites {
		if _, ok := colorNames[sp.ColorName]; !ok {
			return nil, fmt.Errorf("assets: sprite %s has unknown color %q", id, sp.ColorName)
		}
	}
	return &sheet, nil
}

// Default returns the embedded sheet. It panics if the embedded sheet is
// broken, which is a build defect.
func Default() *Sheet {
	sheet, err := Parse(defaultSheet)
	if err != nil {
		panic(err)
	}
	return sheet
}
