package canvas

import "math"

// View couples the camera with the screen and the derived cell and
// canvas geometry. The world-space viewport starts at (-Camera.X,
// -Camera.Y). Pan and Resize recompute the viewport before returning,
// so the rectangle can never go stale between mutations.
type View struct {
	Camera Camera
	Grid   Grid

	ScreenWidth  float64
	ScreenHeight float64

	CellWidth  float64
	CellHeight float64

	CanvasWidth  float64
	CanvasHeight float64

	Viewport Rect
}

// NewView returns a view of the grid parked at the canvas origin with
// scale 1. Call Resize before drawing.
func NewView(g Grid) *View {
	return &View{Camera: Camera{Scale: 1}, Grid: g}
}

// Pan moves the camera opposite the given screen delta, scaled down by
// the zoom, then wraps it back inside the canvas. Crossing the low
// edge lands the viewport one full extent to the right; reaching the
// high edge (inclusive) lands it back at the origin, so pans summing
// to exactly one extent reproduce the starting viewport.
func (v *View) Pan(dx, dy float64) {
	v.Camera.X += -dx / v.Camera.Scale
	v.Camera.Y += -dy / v.Camera.Scale

	if -v.Camera.X < 0 {
		v.Camera.X = -v.CanvasWidth
	} else if -v.Camera.X >= v.CanvasWidth {
		v.Camera.X = 0
	}
	if -v.Camera.Y < 0 {
		v.Camera.Y = -v.CanvasHeight
	} else if -v.Camera.Y >= v.CanvasHeight {
		v.Camera.Y = 0
	}

	v.refreshViewport()
}

// Resize adopts a new screen size and recomputes the cell size, the
// canvas extent and the viewport. The camera is left alone; calling it
// twice with the same size is a no-op.
func (v *View) Resize(w, h float64) {
	v.ScreenWidth = w
	v.ScreenHeight = h
	v.CellWidth = math.Max(w/4, h/4)
	v.CellHeight = v.CellWidth * 5 / 4
	v.CanvasWidth = v.CellWidth * float64(v.Grid.Cols)
	v.CanvasHeight = v.CellHeight * float64(v.Grid.Rows)
	v.refreshViewport()
}

// ScreenToCanvas converts a screen position to canvas units.
func (v *View) ScreenToCanvas(p Point) Point {
	return Point{
		X: p.X/v.Camera.Scale - v.Camera.X,
		Y: p.Y/v.Camera.Scale - v.Camera.Y,
	}
}

// CellFromPoint returns the cell under a screen position. Positions
// outside the canvas extent, arbitrarily far in either direction, wrap
// onto the grid; the result never carries a negative column or row.
func (v *View) CellFromPoint(p Point) Cell {
	c := v.ScreenToCanvas(p)
	col := v.Grid.WrapCol(int(math.Floor(c.X / v.CellWidth)))
	row := v.Grid.WrapRow(int(math.Floor(c.Y / v.CellHeight)))
	return Cell{Index: v.Grid.Index(col, row), Col: col, Row: row}
}

func (v *View) refreshViewport() {
	v.Viewport = NewRect(-v.Camera.X, -v.Camera.Y, v.ScreenWidth, v.ScreenHeight)
}
