// Package palette generates the cell fill shades. It spreads hues
// around the HSV wheel at low saturation so glyphs stay readable.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	shadeSaturation = 0.22
	shadeValue      = 0.26
)

// CellShades returns n opaque fills, one hue step apart.
func CellShades(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		h := float64(i) / float64(n) * 360
		c := colorful.Hsv(h, shadeSaturation, shadeValue)
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}
