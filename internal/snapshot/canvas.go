// Package snapshot rasterises the game to PNG with gg. It backs the
// screenshot key and the headless snapshot command.
package snapshot

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/core"
)

// Canvas draws into a gg context. Playfield units are multiplied by scale.
type Canvas struct {
	dc    *gg.Context
	sheet *assets.Sheet
	scale float64
	w, h  int // Playfield size
}

// NewCanvas creates a canvas for a w x h playfield.
func NewCanvas(sheet *assets.Sheet, w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		dc:    gg.NewContext(int(float64(w)*scale), int(float64(h)*scale)),
		sheet: sheet,
		scale: scale,
		w:     w,
		h:     h,
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the image to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func rgba(col core.Color, alpha uint8) color.NRGBA {
	r, g, b := col.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func (c *Canvas) s(v int) float64 {
	return float64(v) * c.scale
}

// Clear paints the whole image.
func (c *Canvas) Clear(col core.Color) {
	c.dc.SetColor(rgba(col, core.Opaque))
	c.dc.Clear()
}

// Overlay blends a full-image colour.
func (c *Canvas) Overlay(col core.Color, alpha uint8) {
	if alpha == 0 {
		return
	}
	c.dc.SetColor(rgba(col, alpha))
	c.dc.DrawRectangle(0, 0, c.s(c.w), c.s(c.h))
	c.dc.Fill()
}

// RoundRect fills a rounded rectangle.
func (c *Canvas) RoundRect(r core.Rect, radius int, col core.Color, alpha uint8) {
	c.dc.SetColor(rgba(col, alpha))
	c.dc.DrawRoundedRectangle(c.s(r.X), c.s(r.Y), c.s(r.W), c.s(r.H), c.s(radius))
	c.dc.Fill()
}

// Circle fills a circle.
func (c *Canvas) Circle(cx, cy, radius int, col core.Color, alpha uint8) {
	c.dc.SetColor(rgba(col, alpha))
	c.dc.DrawCircle(c.s(cx), c.s(cy), c.s(radius))
	c.dc.Fill()
}

// Text draws a line of text with the built-in face, scaled by st.Scale.
func (c *Canvas) Text(x, y int, text string, st core.TextStyle) {
	if text == "" || st.Alpha == 0 {
		return
	}
	scale := st.Scale
	if scale <= 0 {
		scale = 1
	}
	// The built-in face is small; body text is drawn at twice its size.
	scale *= 2 * c.scale

	ax, ay := 0.5, 0.5
	if st.Anchor == core.AnchorLeft {
		ax, ay = 0, 0
	}
	px, py := c.s(x), c.s(y)

	c.dc.Push()
	c.dc.ScaleAbout(scale, scale, px, py)
	c.dc.SetColor(rgba(st.Color, st.Alpha))
	c.dc.DrawStringAnchored(text, px, py, ax, ay)
	if st.Bold {
		c.dc.DrawStringAnchored(text, px+0.5, py, ax, ay)
	}
	c.dc.Pop()
}

// Sprite draws a sheet sprite into r.
func (c *Canvas) Sprite(id string, r core.Rect, alpha uint8) {
	sp, ok := c.sheet.Sprite(id)
	if !ok {
		return
	}
	switch sp.Shape {
	case assets.ShapeBackdrop:
		c.backdrop(sp, r, alpha)
	case assets.ShapeArrow:
		c.arrow(sp, r, alpha)
	case assets.ShapePortrait:
		c.portrait(sp, r, alpha)
	}
}

func (c *Canvas) backdrop(sp assets.Sprite, r core.Rect, alpha uint8) {
	c.dc.SetColor(rgba(sp.Color(), alpha))
	c.dc.DrawRectangle(c.s(r.X), c.s(r.Y), c.s(r.W), c.s(r.H))
	c.dc.Fill()

	// Faint lane guides.
	c.dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 12})
	c.dc.SetLineWidth(1)
	for x := r.X; x < r.Right(); x += 100 {
		c.dc.DrawLine(c.s(x), c.s(r.Y), c.s(x), c.s(r.Bottom()))
		c.dc.Stroke()
	}
}

func arrowAngle(direction string) float64 {
	switch direction {
	case "right":
		return math.Pi / 2
	case "down":
		return math.Pi
	case "left":
		return -math.Pi / 2
	default:
		return 0
	}
}

// arrow draws an upward arrow rotated to the sprite's direction.
func (c *Canvas) arrow(sp assets.Sprite, r core.Rect, alpha uint8) {
	x, y, w, h := c.s(r.X), c.s(r.Y), c.s(r.W), c.s(r.H)
	cx, cy := x+w/2, y+h/2

	c.dc.Push()
	c.dc.RotateAbout(arrowAngle(sp.Direction), cx, cy)

	c.dc.DrawRoundedRectangle(x, y, w, h, w*0.15)
	if sp.Outline {
		c.dc.SetColor(rgba(core.ColorGray, alpha/2))
		c.dc.Fill()
	} else {
		c.dc.SetColor(rgba(core.ColorBlack, alpha))
		c.dc.Fill()
	}

	c.dc.MoveTo(cx, y+h*0.15)
	c.dc.LineTo(x+w*0.85, cy)
	c.dc.LineTo(x+w*0.62, cy)
	c.dc.LineTo(x+w*0.62, y+h*0.85)
	c.dc.LineTo(x+w*0.38, y+h*0.85)
	c.dc.LineTo(x+w*0.38, cy)
	c.dc.LineTo(x+w*0.15, cy)
	c.dc.ClosePath()
	c.dc.SetColor(rgba(sp.Color(), alpha))
	if sp.Outline {
		c.dc.SetLineWidth(math.Max(2, w*0.05))
		c.dc.Stroke()
	} else {
		c.dc.Fill()
	}
	c.dc.Pop()
}

func (c *Canvas) portrait(sp assets.Sprite, r core.Rect, alpha uint8) {
	c.RoundRect(r, 12, sp.Color(), alpha)
	cx, cy := r.Center()
	c.Circle(cx, cy-r.H/8, r.W/5, core.ColorWhite, alpha)
	c.Text(cx, r.Bottom()-r.H/5, sp.Label, core.TextStyle{Color: core.ColorBlack, Alpha: alpha, Scale: 1.5, Bold: true})
}

var _ core.Canvas = (*Canvas)(nil)
