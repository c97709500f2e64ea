package core

// Color is a palette entry used by every draw request.
// Canvases map it to ANSI codes (terminal) or RGB (PNG).
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGray
	ColorBackground
	ColorHover
	ColorMode
	ColorLeft
	ColorDown
	ColorUp
	ColorRight
	ColorYellow
)

// RGB returns the 8-bit channels for the colour.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0
	case ColorWhite:
		return 255, 255, 255
	case ColorRed:
		return 255, 0, 0
	case ColorGray:
		return 128, 128, 128
	case ColorBackground:
		return 30, 30, 30
	case ColorHover, ColorMode:
		return 200, 200, 255
	case ColorLeft:
		return 194, 75, 153
	case ColorDown:
		return 0, 255, 255
	case ColorUp:
		return 18, 250, 5
	case ColorRight:
		return 249, 57, 63
	case ColorYellow:
		return 255, 220, 0
	default:
		return 255, 255, 255
	}
}
