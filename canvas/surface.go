package canvas

import "image/color"

// Surface is the drawing capability the engine renders through.
// Coordinates are screen pixels, y down. FillText anchors at the
// top-left of the glyph box; Translate offsets apply to every call
// until the matching Restore.
type Surface interface {
	Clear(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillText(s string, x, y, size float64, c color.Color)
	MeasureText(s string, size float64) (w, h float64)
	Save()
	Restore()
	Translate(dx, dy float64)
}
