package canvas

import (
	"image/color"
	"strconv"
)

const (
	cellStrokeWidth = 1.5

	// Index label and glyph sizing, as fractions of the viewport's
	// short side and the scaled cell width.
	labelOffsetFrac = 0.012
	labelSizeFrac   = 0.025
	glyphSizeFrac   = 0.42
)

// Config seeds a new Engine. Zero color fields fall back to a plain
// dark scheme; Fills cycles when shorter than the content.
type Config struct {
	Cols, Rows int
	Content    []string
	Fills      []color.Color

	Stroke       color.Color
	HoverStroke  color.Color
	ActiveStroke color.Color
	Label        color.Color
	Ink          color.Color
}

// Engine drives one wrapping cell canvas: it owns the view, the
// pointer gesture state and the frame clock, draws through the Surface
// it was constructed with, and exposes read-only state for overlays.
// All methods must be called from the host's frame goroutine.
type Engine struct {
	surface Surface
	grid    Grid
	view    *View
	pointer Pointer
	clock   FrameClock

	content []string
	fills   []color.Color

	stroke       color.Color
	hoverStroke  color.Color
	activeStroke color.Color
	label        color.Color
	ink          color.Color

	hovered   Cell
	hasHover  bool
	active    Cell
	hasActive bool

	visible []VisibleCell
}

// New builds an engine over the given surface and initial screen size.
// The camera starts at the canvas origin with scale 1, and content
// beyond Cols*Rows entries is dropped.
func New(surface Surface, width, height float64, cfg Config) *Engine {
	grid := NewGrid(cfg.Cols, cfg.Rows)
	content := cfg.Content
	if n := grid.Size(); len(content) > n {
		content = content[:n]
	}

	e := &Engine{
		surface:      surface,
		grid:         grid,
		view:         NewView(grid),
		content:      content,
		fills:        cfg.Fills,
		stroke:       orColor(cfg.Stroke, color.RGBA{0, 0, 0, 60}),
		hoverStroke:  orColor(cfg.HoverStroke, color.RGBA{0, 120, 255, 255}),
		activeStroke: orColor(cfg.ActiveStroke, color.RGBA{50, 205, 50, 255}),
		label:        orColor(cfg.Label, color.RGBA{220, 220, 220, 200}),
		ink:          orColor(cfg.Ink, color.RGBA{235, 235, 235, 255}),
	}
	e.view.Resize(width, height)
	return e
}

// Render draws one frame. now is the frame timestamp in milliseconds;
// any pending glide is applied before drawing.
func (e *Engine) Render(now float64) {
	if v, ok := e.pointer.Step(); ok {
		e.view.Pan(v.X, v.Y)
	}
	e.clock.Tick(now)

	e.surface.Clear(0, 0, e.view.ScreenWidth, e.view.ScreenHeight)

	e.visible = e.view.AppendVisible(len(e.content), e.visible[:0])

	scale := e.view.Camera.Scale
	cw := e.view.CellWidth * scale
	ch := e.view.CellHeight * scale
	short := e.view.ScreenWidth
	if e.view.ScreenHeight < short {
		short = e.view.ScreenHeight
	}
	labelOff := short * labelOffsetFrac
	labelSize := short * labelSizeFrac
	glyphSize := cw * glyphSizeFrac

	for _, vc := range e.visible {
		e.surface.Save()
		e.surface.Translate(vc.X, vc.Y)

		e.surface.FillRect(0, 0, cw, ch, e.fillFor(vc.Index))
		e.surface.StrokeRect(0, 0, cw, ch, cellStrokeWidth, e.strokeFor(vc.Cell))
		e.surface.FillText(strconv.Itoa(vc.Index), labelOff, labelOff, labelSize, e.label)

		glyph := e.content[vc.Index]
		gw, gh := e.surface.MeasureText(glyph, glyphSize)
		e.surface.FillText(glyph, (cw-gw)/2, (ch-gh)/2, glyphSize, e.ink)

		e.surface.Restore()
	}
}

// OnMove feeds a pointer position in screen pixels. While pressed the
// view pans with the pointer; otherwise only the hovered cell updates.
func (e *Engine) OnMove(x, y float64) {
	if v, ok := e.pointer.Move(x, y); ok {
		e.view.Pan(v.X, v.Y)
		return
	}
	if !e.pointer.Pressed() {
		e.hovered = e.view.CellFromPoint(Point{X: x, Y: y})
		e.hasHover = true
	}
}

// OnPress feeds a button transition; pressed false is the release.
func (e *Engine) OnPress(pressed bool, x, y float64) {
	if pressed {
		e.pointer.Press(x, y)
		return
	}
	e.pointer.Release(x, y)
}

// OnClick selects the cell under a tap. A release that traveled past
// the tap slop leaves the selection alone.
func (e *Engine) OnClick(x, y float64) {
	if !e.pointer.IsTap(x, y) {
		return
	}
	e.active = e.view.CellFromPoint(Point{X: x, Y: y})
	e.hasActive = true
}

// OnWheel pans by the negated wheel delta, bypassing the glide state.
func (e *Engine) OnWheel(dx, dy float64) {
	e.view.Pan(-dx, -dy)
}

// OnResize adopts a new screen size.
func (e *Engine) OnResize(w, h float64) {
	e.view.Resize(w, h)
}

// CellFromPoint resolves the cell under a screen position.
func (e *Engine) CellFromPoint(p Point) Cell {
	return e.view.CellFromPoint(p)
}

func (e *Engine) Camera() Camera { return e.view.Camera }

func (e *Engine) Viewport() Rect { return e.view.Viewport }

func (e *Engine) Grid() Grid { return e.grid }

func (e *Engine) Content() []string { return e.content }

func (e *Engine) FPS() float64 { return e.clock.FPS() }

// CellSize returns the current cell size in canvas units.
func (e *Engine) CellSize() (w, h float64) {
	return e.view.CellWidth, e.view.CellHeight
}

// CanvasExtent returns the full canvas size in canvas units.
func (e *Engine) CanvasExtent() (w, h float64) {
	return e.view.CanvasWidth, e.view.CanvasHeight
}

// PointerPosition returns the last pointer position; ok is false while
// no mouse position has been seen yet.
func (e *Engine) PointerPosition() (Point, bool) {
	return e.pointer.Position()
}

// Velocity returns the pending glide velocity.
func (e *Engine) Velocity() Vec2 { return e.pointer.Velocity() }

// Hovered returns the cell under the cursor, if one has been resolved.
func (e *Engine) Hovered() (Cell, bool) { return e.hovered, e.hasHover }

// Active returns the last tapped cell, if any.
func (e *Engine) Active() (Cell, bool) { return e.active, e.hasActive }

// VisibleCount is the number of cells drawn by the last Render.
func (e *Engine) VisibleCount() int { return len(e.visible) }

func (e *Engine) fillFor(i int) color.Color {
	if len(e.fills) == 0 {
		return color.RGBA{45, 45, 50, 255}
	}
	return e.fills[i%len(e.fills)]
}

func (e *Engine) strokeFor(c Cell) color.Color {
	if e.hasActive && c.Index == e.active.Index {
		return e.activeStroke
	}
	if e.hasHover && c.Index == e.hovered.Index {
		return e.hoverStroke
	}
	return e.stroke
}

func orColor(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
