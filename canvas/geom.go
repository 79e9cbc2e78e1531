// Package canvas implements a pannable, toroidally wrapping grid of
// labeled cells. The engine owns the camera, the cell addressing math,
// the pointer gesture state and the per-frame draw pass; it renders
// through the Surface interface and never talks to a window library
// directly.
package canvas

// Point is a position, in screen pixels or canvas units depending on
// context.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement or velocity in screen pixels.
type Vec2 struct {
	X, Y float64
}

// Camera is the view translation over the canvas. X and Y hold the
// negated offset of the canvas origin, so a camera at (-100, 0) shows
// the canvas shifted 100px to the left. Scale must stay positive.
type Camera struct {
	X, Y  float64
	Scale float64
}

// Rect is an axis-aligned rectangle with its extents precomputed.
type Rect struct {
	MinX, MinY    float64
	MaxX, MaxY    float64
	Width, Height float64
}

// NewRect builds a Rect from its min corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h, Width: w, Height: h}
}
