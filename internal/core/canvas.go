package core

// Anchor selects which point of a text run its coordinates refer to.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeft
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Color  Color
	Alpha  uint8
	Scale  float64 // 1 is body text; titles and countdown digits are larger
	Anchor Anchor
	Bold   bool
}

// Opaque is the alpha of fully visible draw requests.
const Opaque uint8 = 255

// Canvas is the render surface the game draws into once per tick.
// Coordinates are playfield units; implementations scale to their own
// resolution (terminal cells, PNG pixels). The game never owns a pixel buffer.
type Canvas interface {
	// Clear paints the whole playfield with one colour.
	Clear(c Color)
	// Overlay blends a full-playfield colour at the given alpha.
	Overlay(c Color, alpha uint8)
	// RoundRect fills a rectangle with rounded corners.
	RoundRect(r Rect, radius int, c Color, alpha uint8)
	// Circle fills a circle centred on (cx, cy).
	Circle(cx, cy, radius int, c Color, alpha uint8)
	// Text draws a single line of text at (x, y) according to st.Anchor.
	Text(x, y int, text string, st TextStyle)
	// Sprite draws a named image scaled into r.
	Sprite(id string, r Rect, alpha uint8)
}
