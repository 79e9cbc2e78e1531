package canvas

// VisibleCell is a grid cell placed at a concrete screen position for
// one frame. X and Y are the top-left corner after toroidal wrapping.
type VisibleCell struct {
	Cell
	X, Y float64
}

// AppendVisible walks the first n cells, wraps each by at most one
// canvas extent per axis, and appends the ones that land on screen to
// dst. The cell width margin on the low side keeps partially entered
// ghost cells in view; dst's backing array is reused across frames.
func (v *View) AppendVisible(n int, dst []VisibleCell) []VisibleCell {
	scale := v.Camera.Scale
	cw := v.CellWidth * scale
	ch := v.CellHeight * scale
	extW := v.CanvasWidth * scale
	extH := v.CanvasHeight * scale

	for i := 0; i < n; i++ {
		cell := v.Grid.CellAt(i)
		x := (float64(cell.Col)*v.CellWidth + v.Camera.X) * scale
		y := (float64(cell.Row)*v.CellHeight + v.Camera.Y) * scale

		if x+cw < 0 {
			x += extW
		} else if x > v.ScreenWidth+cw {
			x -= extW
		}
		if y+ch < 0 {
			y += extH
		} else if y > v.ScreenHeight+ch {
			y -= extH
		}

		if x < -cw || x >= v.ScreenWidth || y < -ch || y >= v.ScreenHeight {
			continue
		}
		dst = append(dst, VisibleCell{Cell: cell, X: x, Y: y})
	}
	return dst
}
