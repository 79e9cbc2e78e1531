package canvas

import (
	"image/color"
	"math"
	"strconv"
	"testing"
)

type surfaceOp struct {
	kind string
	x, y float64
	w, h float64
	text string
}

// recordingSurface captures draw calls so the render pass can be
// asserted without a window.
type recordingSurface struct {
	ops []surfaceOp
}

func (s *recordingSurface) Clear(x, y, w, h float64) {
	s.ops = append(s.ops, surfaceOp{kind: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, _ color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: "fill", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) StrokeRect(x, y, w, h, _ float64, _ color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: "stroke", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillText(str string, x, y, size float64, _ color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: "text", x: x, y: y, text: str})
}

func (s *recordingSurface) MeasureText(str string, size float64) (float64, float64) {
	return float64(len(str)) * size * 0.6, size
}

func (s *recordingSurface) Save()    { s.ops = append(s.ops, surfaceOp{kind: "save"}) }
func (s *recordingSurface) Restore() { s.ops = append(s.ops, surfaceOp{kind: "restore"}) }

func (s *recordingSurface) Translate(dx, dy float64) {
	s.ops = append(s.ops, surfaceOp{kind: "translate", x: dx, y: dy})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func numberedLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func testEngine() (*Engine, *recordingSurface) {
	s := &recordingSurface{}
	e := New(s, 400, 500, Config{Cols: 10, Rows: 10, Content: numberedLabels(100)})
	return e, s
}

func TestNewTruncatesContent(t *testing.T) {
	s := &recordingSurface{}
	e := New(s, 400, 500, Config{Cols: 10, Rows: 10, Content: numberedLabels(150)})

	if got := len(e.Content()); got != 100 {
		t.Errorf("Expected content capped at 100, got %d", got)
	}
}

func TestNewStartsAtOrigin(t *testing.T) {
	e, _ := testEngine()

	cam := e.Camera()
	if cam.X != 0 || cam.Y != 0 || cam.Scale != 1 {
		t.Errorf("Unexpected starting camera: %+v", cam)
	}
	cw, ch := e.CellSize()
	if cw != 125 || ch != 156.25 {
		t.Errorf("Unexpected cell size: %vx%v", cw, ch)
	}
}

func TestRenderDrawPass(t *testing.T) {
	e, s := testEngine()

	e.Render(0)

	if len(s.ops) == 0 || s.ops[0].kind != "clear" {
		t.Fatal("Expected the frame to start with a clear")
	}
	if s.ops[0].w != 400 || s.ops[0].h != 500 {
		t.Errorf("Clear does not cover the screen: %+v", s.ops[0])
	}

	if e.VisibleCount() != 25 {
		t.Fatalf("Expected 25 visible cells, got %d", e.VisibleCount())
	}
	if got := s.count("fill"); got != 25 {
		t.Errorf("Expected 25 cell fills, got %d", got)
	}
	if got := s.count("stroke"); got != 25 {
		t.Errorf("Expected 25 cell strokes, got %d", got)
	}
	// One index label plus one glyph per cell.
	if got := s.count("text"); got != 50 {
		t.Errorf("Expected 50 text draws, got %d", got)
	}
	if s.count("save") != 25 || s.count("restore") != 25 {
		t.Error("Save/restore pairs do not match the cell count")
	}

	// Per-cell op sequence, starting right after the clear.
	wantKinds := []string{"save", "translate", "fill", "stroke", "text", "text", "restore"}
	for i, kind := range wantKinds {
		if s.ops[1+i].kind != kind {
			t.Fatalf("Op %d: expected %s, got %s", 1+i, kind, s.ops[1+i].kind)
		}
	}
	// The first cell drawn is index 0 at the canvas origin.
	if s.ops[2].x != 0 || s.ops[2].y != 0 {
		t.Errorf("First cell translated to (%v, %v), expected origin", s.ops[2].x, s.ops[2].y)
	}
	if s.ops[5].text != "0" {
		t.Errorf("First index label is %q, expected \"0\"", s.ops[5].text)
	}
}

func TestRenderAppliesGlideFirst(t *testing.T) {
	e, _ := testEngine()
	e.OnMove(200, 0)
	e.OnPress(true, 200, 0)
	e.OnMove(100, 0)
	e.OnPress(false, 100, 0)

	if e.Camera().X != -100 {
		t.Fatalf("Expected drag to pan the camera to -100, got %v", e.Camera().X)
	}

	e.Render(0)

	if e.Camera().X != -200 {
		t.Errorf("Expected glide pan to -200, got %v", e.Camera().X)
	}
	if v := e.Velocity(); math.Abs(v.X-90) > 1e-9 {
		t.Errorf("Expected velocity decayed to 90, got %v", v.X)
	}
}

func TestRenderGlideEventuallyStops(t *testing.T) {
	e, _ := testEngine()
	e.OnMove(200, 0)
	e.OnPress(true, 200, 0)
	e.OnMove(100, 0)
	e.OnPress(false, 100, 0)

	for i := 0; i < 100; i++ {
		e.Render(float64(i) * 16)
	}

	if e.Velocity() != (Vec2{}) {
		t.Errorf("Glide still running after 100 frames: %+v", e.Velocity())
	}
	cam := e.Camera()
	for i := 0; i < 5; i++ {
		e.Render(float64(1600 + i*16))
	}
	if e.Camera() != cam {
		t.Errorf("Camera crept after the glide stopped: %+v vs %+v", cam, e.Camera())
	}
}

func TestClickSelectsOnTap(t *testing.T) {
	e, _ := testEngine()
	e.OnMove(60, 60)
	e.OnPress(true, 60, 60)
	e.OnPress(false, 65, 60)
	e.OnClick(65, 60)

	active, ok := e.Active()
	if !ok {
		t.Fatal("Expected a tap to select a cell")
	}
	if active.Index != 0 {
		t.Errorf("Expected cell 0 selected, got %+v", active)
	}
}

func TestClickIgnoredAfterDrag(t *testing.T) {
	e, _ := testEngine()
	e.OnMove(0, 0)
	e.OnPress(true, 0, 0)
	e.OnMove(30, 0)
	e.OnPress(false, 30, 0)
	e.OnClick(30, 0)

	if _, ok := e.Active(); ok {
		t.Error("A 30px drag should not select a cell")
	}
}

func TestHoverTracksUnpressedMoves(t *testing.T) {
	e, _ := testEngine()

	if _, ok := e.Hovered(); ok {
		t.Fatal("Expected no hover before any move")
	}

	e.OnMove(60, 60)
	h, ok := e.Hovered()
	if !ok || h.Index != 0 {
		t.Fatalf("Expected hover on cell 0, got %+v ok=%v", h, ok)
	}

	// Frozen while dragging.
	e.OnPress(true, 60, 60)
	e.OnMove(50, 50)
	h, _ = e.Hovered()
	if h.Index != 0 {
		t.Errorf("Hover moved during a drag: %+v", h)
	}

	// Live again after release.
	e.OnPress(false, 50, 50)
	e.OnMove(140, 50)
	h, _ = e.Hovered()
	if h.Index != 1 {
		t.Errorf("Expected hover on cell 1 after release, got %+v", h)
	}
}

func TestWheelPansNegated(t *testing.T) {
	e, _ := testEngine()

	e.OnWheel(-10, 0)

	if got := e.Viewport().MinX; got != 10 {
		t.Errorf("Expected viewport min 10 after wheel, got %v", got)
	}
	if e.Velocity() != (Vec2{}) {
		t.Errorf("Wheel touched the glide state: %+v", e.Velocity())
	}

	// No glide follows a wheel pan.
	e.Render(0)
	if got := e.Viewport().MinX; got != 10 {
		t.Errorf("Wheel pan kept moving: %v", got)
	}
}

func TestPointerPositionStartsUnknown(t *testing.T) {
	e, _ := testEngine()

	if _, ok := e.PointerPosition(); ok {
		t.Fatal("Expected no pointer position before the first move")
	}
	e.OnMove(12, 34)
	p, ok := e.PointerPosition()
	if !ok || p.X != 12 || p.Y != 34 {
		t.Errorf("Expected position (12, 34), got %+v ok=%v", p, ok)
	}
}

func TestResizeThroughEngine(t *testing.T) {
	e, _ := testEngine()
	e.OnWheel(-50, 0) // camera at -50

	e.OnResize(800, 300)

	cw, ch := e.CellSize()
	if cw != 200 || ch != 250 {
		t.Errorf("Expected 200x250 cells, got %vx%v", cw, ch)
	}
	if w, h := e.CanvasExtent(); w != 2000 || h != 2500 {
		t.Errorf("Expected 2000x2500 canvas, got %vx%v", w, h)
	}
	if e.Camera().X != -50 {
		t.Errorf("Resize moved the camera: %+v", e.Camera())
	}

	before := e.Viewport()
	e.OnResize(800, 300)
	if e.Viewport() != before {
		t.Error("Repeated resize changed the viewport")
	}
}

func TestEngineFPS(t *testing.T) {
	e, _ := testEngine()

	e.Render(0)
	e.Render(16)
	e.Render(32)

	if got := e.FPS(); got != 62.5 {
		t.Errorf("Expected 62.5 fps, got %v", got)
	}
}

func TestFullCanvasWheelRestoresView(t *testing.T) {
	e, _ := testEngine()
	start := e.Viewport()

	for i := 0; i < 5; i++ {
		e.OnWheel(-250, 0)
	}

	if e.Viewport() != start {
		t.Errorf("Full-extent wheel pan lost the viewport:\nstart %+v\nend   %+v", start, e.Viewport())
	}
	if e.Camera() != (Camera{Scale: 1}) {
		t.Errorf("Expected camera back at the origin, got %+v", e.Camera())
	}
}
