package state

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is one of the nine fill colors a shape can have.
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Indigo
	Violet
	White
	Black
)

var colorNames = [...]string{
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Indigo: "indigo",
	Violet: "violet",
	White:  "white",
	Black:  "black",
}

// Colors lists every color in declaration order.
var Colors = []Color{Red, Orange, Yellow, Green, Blue, Indigo, Violet, White, Black}

// String returns the SVG/CSS name of the color.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "black"
	}
	return colorNames[c]
}

// RGBA resolves the color through the SVG named color table.
func (c Color) RGBA() color.RGBA {
	return colornames.Map[c.String()]
}

// ParseColor is the inverse of String.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Black, false
}

// Advance returns the color after c in the fixed cycle
// red, orange, yellow, green, blue, indigo, violet, black, white.
func (c Color) Advance() Color {
	switch c {
	case Red:
		return Orange
	case Orange:
		return Yellow
	case Yellow:
		return Green
	case Green:
		return Blue
	case Blue:
		return Indigo
	case Indigo:
		return Violet
	case Violet:
		return Black
	case Black:
		return White
	default:
		return Red
	}
}

// ColorCycler hands out fill colors for new shapes until a real color
// picker exists.
type ColorCycler struct {
	current Color
}

func NewColorCycler() *ColorCycler {
	return &ColorCycler{current: Red}
}

// Current returns the color the next call to NextAndAdvance will produce.
func (cc *ColorCycler) Current() Color { return cc.current }

func (cc *ColorCycler) NextAndAdvance() Color {
	c := cc.current
	cc.current = c.Advance()
	return c
}

// NextNonWhiteAndAdvance is NextAndAdvance but never returns White, so that
// new shapes stay visible on the white background.
func (cc *ColorCycler) NextNonWhiteAndAdvance() Color {
	for {
		if c := cc.NextAndAdvance(); c != White {
			return c
		}
	}
}
