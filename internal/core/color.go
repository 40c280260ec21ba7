package core

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB is an 8-bit per channel color value.
type RGB struct {
	R, G, B uint8
}

// palette holds the approximate xterm rendering of each Color.
var palette = []struct {
	color Color
	name  string
	rgb   RGB
}{
	{ColorRed, "red", RGB{205, 0, 0}},
	{ColorGreen, "green", RGB{0, 205, 0}},
	{ColorYellow, "yellow", RGB{205, 205, 0}},
	{ColorBlue, "blue", RGB{0, 0, 238}},
	{ColorMagenta, "magenta", RGB{205, 0, 205}},
	{ColorCyan, "cyan", RGB{0, 205, 205}},
	{ColorWhite, "white", RGB{229, 229, 229}},
	{ColorBrightRed, "bright-red", RGB{255, 0, 0}},
	{ColorBrightGreen, "bright-green", RGB{0, 255, 0}},
	{ColorBrightYellow, "bright-yellow", RGB{255, 255, 0}},
	{ColorBrightBlue, "bright-blue", RGB{92, 92, 255}},
	{ColorBrightMagenta, "bright-magenta", RGB{255, 0, 255}},
	{ColorBrightCyan, "bright-cyan", RGB{0, 255, 255}},
	{ColorBrightWhite, "bright-white", RGB{255, 255, 255}},
	{ColorOrange, "orange", RGB{255, 135, 0}},
	{ColorGray, "gray", RGB{138, 138, 138}},
}

// String returns the palette name of the color.
func (c Color) String() string {
	for _, p := range palette {
		if p.color == c {
			return p.name
		}
	}
	return "default"
}

// Colorful converts the value for perceptual comparisons.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// NearestColor maps an arbitrary RGB value to the closest palette color in
// CIE Lab space.
func NearestColor(c RGB) Color {
	target := c.Colorful()
	best := ColorWhite
	bestDist := -1.0
	for _, p := range palette {
		d := target.DistanceLab(p.rgb.Colorful())
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}

// ParseColor accepts a palette name ("red", "bright-cyan"), "default" or a
// "#rrggbb" literal and returns the matching palette color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" || s == "none" {
		return ColorDefault, true
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorDefault, false
		}
		r, g, b := c.RGB255()
		return NearestColor(RGB{r, g, b}), true
	}
	for _, p := range palette {
		if p.name == s {
			return p.color, true
		}
	}
	return ColorDefault, false
}
