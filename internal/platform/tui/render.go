package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// paletteSize bounds the core palette for style lookup.
const paletteSize = int(core.ColorYellow) + 1

// styles holds one style per foreground/background pair.
var styles = buildStyles()

func hex(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func buildStyles() [paletteSize][paletteSize]lipgloss.Style {
	var out [paletteSize][paletteSize]lipgloss.Style
	for fg := range paletteSize {
		for bg := range paletteSize {
			st := lipgloss.NewStyle()
			if core.Color(fg) != core.ColorDefault {
				st = st.Foreground(hex(core.Color(fg)))
			}
			if core.Color(bg) != core.ColorDefault {
				st = st.Background(hex(core.Color(bg)))
			}
			out[fg][bg] = st
		}
	}
	return out
}

func styleFor(c core.Cell) lipgloss.Style {
	fg, bg := int(c.Color), int(c.Bg)
	if fg >= paletteSize {
		fg = 0
	}
	if bg >= paletteSize {
		bg = 0
	}
	return styles[fg][bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
