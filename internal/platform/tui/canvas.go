package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/core"
)

// Draw requests fainter than this are skipped; a terminal cell is either
// painted or not.
const visibleAlpha = 64

// Canvas rasterises draw requests onto a character screen. Playfield
// coordinates are scaled to the screen size.
type Canvas struct {
	screen *core.Screen
	sheet  *assets.Sheet
	pfW    int
	pfH    int
}

// NewCanvas creates a canvas drawing a pfW x pfH playfield onto screen.
func NewCanvas(screen *core.Screen, sheet *assets.Sheet, pfW, pfH int) *Canvas {
	return &Canvas{screen: screen, sheet: sheet, pfW: pfW, pfH: pfH}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

func (c *Canvas) col(x int) int {
	return x * c.screen.Width() / c.pfW
}

func (c *Canvas) row(y int) int {
	return y * c.screen.Height() / c.pfH
}

// cells converts a playfield rect to a screen rect at least one cell large.
func (c *Canvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ToPlayfield converts a screen cell to the playfield point at its centre.
func (c *Canvas) ToPlayfield(col, row int) (int, int) {
	w, h := max(c.screen.Width(), 1), max(c.screen.Height(), 1)
	x := (2*col + 1) * c.pfW / (2 * w)
	y := (2*row + 1) * c.pfH / (2 * h)
	return x, y
}

func (c *Canvas) paintRect(r core.Rect, col core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.screen.SetCell(x, y, ' ', core.ColorDefault)
			c.screen.Paint(x, y, col)
		}
	}
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(col core.Color) {
	c.screen.Clear()
	if col == core.ColorBlack || col == core.ColorDefault {
		return
	}
	c.paintRect(core.NewRect(0, 0, c.screen.Width(), c.screen.Height()), col)
}

// Overlay implements core.Canvas. Dark overlays blank the screen; coloured
// ones tint the background, or shade it when faint.
func (c *Canvas) Overlay(col core.Color, alpha uint8) {
	if alpha < visibleAlpha {
		return
	}
	full := core.NewRect(0, 0, c.screen.Width(), c.screen.Height())
	switch {
	case col == core.ColorBlack:
		c.paintRect(full, core.ColorDefault)
	case alpha >= 128:
		c.paintRect(full, col)
	default:
		c.screen.DrawRect(full, '░', col)
	}
}

// RoundRect implements core.Canvas.
func (c *Canvas) RoundRect(r core.Rect, _ int, col core.Color, alpha uint8) {
	if alpha < visibleAlpha {
		return
	}
	c.paintRect(c.cells(r), col)
}

// Circle implements core.Canvas.
func (c *Canvas) Circle(cx, cy, radius int, col core.Color, alpha uint8) {
	if alpha < visibleAlpha || radius <= 0 {
		return
	}
	bounds := c.cells(core.RectAround(cx, cy, 2*radius, 2*radius))
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			px, py := c.ToPlayfield(x, y)
			if math.Hypot(float64(px-cx), float64(py-cy)) <= float64(radius) {
				c.screen.SetCell(x, y, ' ', core.ColorDefault)
				c.screen.Paint(x, y, col)
			}
		}
	}
}

// Text implements core.Canvas. Large text is letter-spaced.
func (c *Canvas) Text(x, y int, text string, st core.TextStyle) {
	if st.Alpha < visibleAlpha || text == "" {
		return
	}
	if st.Scale >= 2 && 2*len([]rune(text)) <= c.screen.Width() {
		text = spaced(text)
	}
	col, row := c.col(x), c.row(y)
	if st.Anchor == core.AnchorCenter {
		c.screen.DrawTextCentered(col, row, text, st.Color)
		return
	}
	c.screen.DrawText(col, row, text, st.Color)
}

func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Sprite implements core.Canvas using the sprite's glyph and colour.
func (c *Canvas) Sprite(id string, r core.Rect, alpha uint8) {
	if alpha < visibleAlpha || c.sheet == nil {
		return
	}
	sp, ok := c.sheet.Sprite(id)
	if !ok {
		return
	}
	glyph := []rune(sp.Glyph)
	if len(glyph) == 0 {
		return
	}
	cell := c.cells(r)
	color := sp.Color()

	switch sp.Shape {
	case assets.ShapeBackdrop:
		if glyph[0] == ' ' {
			return
		}
		for y := cell.Y; y < cell.Bottom(); y += 2 {
			for x := cell.X + (y/2)%4; x < cell.Right(); x += 4 {
				c.screen.SetCell(x, y, glyph[0], core.ColorGray)
			}
		}
	case assets.ShapeArrow:
		if sp.Outline {
			c.screen.DrawBox(cell, color)
		} else {
			c.screen.DrawRect(cell, glyph[0], color)
		}
		cx, cy := cell.Center()
		c.screen.SetCell(cx, cy, glyph[0], color)
	case assets.ShapePortrait:
		c.screen.DrawBox(cell, color)
		cx, cy := cell.Center()
		c.screen.SetCell(cx, cy, glyph[0], color)
		if sp.Label != "" {
			c.screen.DrawTextCentered(cx, cy+1, sp.Label, color)
		}
	}
}

var _ core.Canvas = (*Canvas)(nil)
