package main

import (
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"github.com/andy-stewart-design/infinite-emojis/canvas"
	"github.com/andy-stewart-design/infinite-emojis/ui"
)

var (
	runtimeDebug = os.Getenv("EMOJIS_DEBUG_RUNTIME") != ""
	runtimeLog   = log.New(os.Stderr, "[runtime] ", log.LstdFlags)
)

type Game struct {
	engine   *canvas.Engine
	surface  *EbitenSurface
	fonts    *FontCache
	settings Settings

	screenWidth  int
	screenHeight int

	// Sub-systems
	input *InputSystem
	panel *ui.DebugPanel

	start      time.Time
	frameCount int

	screenshotRequested bool
}

func NewGame(settings Settings, labels []string, fills []color.Color) *Game {
	g := &Game{
		settings:     settings,
		fonts:        LoadFonts(settings.Font),
		screenWidth:  settings.Window.Width,
		screenHeight: settings.Window.Height,
		start:        time.Now(),
	}

	g.surface = NewEbitenSurface(g.fonts, ColorBackground)
	g.engine = canvas.New(g.surface, float64(settings.Window.Width), float64(settings.Window.Height), canvas.Config{
		Cols:         settings.Grid.Cols,
		Rows:         settings.Grid.Rows,
		Content:      labels,
		Fills:        fills,
		Stroke:       ColorCellStroke,
		HoverStroke:  ColorCellHover,
		ActiveStroke: ColorCellActive,
		Label:        ColorCellLabel,
		Ink:          ColorCellInk,
	})

	g.input = NewInputSystem(g)
	g.panel = &ui.DebugPanel{}

	return g
}

func (g *Game) Update() error {
	return g.input.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.engine.Render(float64(time.Since(g.start)) / float64(time.Millisecond))

	g.drawOverlay(screen)

	if g.panel.Visible {
		g.panel.SetLines(g.panelLines())
	}
	g.panel.Draw(screen,
		func() (int, int) { return g.screenWidth, g.screenHeight },
		func() font.Face { return g.fonts.Face(OverlayFontPx) },
		func(dst *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
			DrawTextLines(dst, face, s, x, y, clr)
		},
	)

	g.frameCount++
	if runtimeDebug && g.frameCount%120 == 0 {
		cam := g.engine.Camera()
		runtimeLog.Printf("fps=%.1f cells=%d camera=(%.1f, %.1f)",
			g.engine.FPS(), g.engine.VisibleCount(), cam.X, cam.Y)
	}

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		f, err := os.Create(ScreenshotPath)
		if err != nil {
			log.Println("screenshot error:", err)
		} else {
			defer f.Close()
			if err := png.Encode(f, screen); err != nil {
				log.Println("screenshot error:", err)
			} else {
				log.Println("Screenshot saved as", ScreenshotPath)
			}
		}
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	cam := g.engine.Camera()

	hoverStatus := "None"
	if c, ok := g.engine.Hovered(); ok {
		hoverStatus = fmt.Sprintf("%d (%d, %d)", c.Index, c.Col, c.Row)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Camera: (%.1f, %.1f) Scale: %.2f\n"+
			"Hovering: %s\n"+
			"FPS: %.1f  Cells: %d\n"+
			"Pan: Left Drag or Wheel | D: Debug | F1: Screenshot",
		cam.X, cam.Y, cam.Scale,
		hoverStatus,
		g.engine.FPS(), g.engine.VisibleCount(),
	), OverlayTextX, OverlayTextY)
}

func (g *Game) panelLines() []string {
	vp := g.engine.Viewport()
	cw, ch := g.engine.CellSize()
	extW, extH := g.engine.CanvasExtent()
	vel := g.engine.Velocity()

	pointer := "no mouse position yet"
	if p, ok := g.engine.PointerPosition(); ok {
		pointer = fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
	}
	active := "none"
	if c, ok := g.engine.Active(); ok {
		active = fmt.Sprintf("%d (%d, %d)", c.Index, c.Col, c.Row)
	}

	return []string{
		fmt.Sprintf("viewport: (%.1f, %.1f) %gx%g", vp.MinX, vp.MinY, vp.Width, vp.Height),
		fmt.Sprintf("cell: %gx%g  canvas: %gx%g", cw, ch, extW, extH),
		fmt.Sprintf("pointer: %s", pointer),
		fmt.Sprintf("velocity: (%.2f, %.2f)", vel.X, vel.Y),
		fmt.Sprintf("active: %s", active),
		fmt.Sprintf("visible: %d of %d", g.engine.VisibleCount(), len(g.engine.Content())),
	}
}

// currentSettings reflects the live window size back into the settings
// for Ctrl+S.
func (g *Game) currentSettings() Settings {
	s := g.settings
	if g.screenWidth > 0 && g.screenHeight > 0 {
		s.Window.Width = g.screenWidth
		s.Window.Height = g.screenHeight
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.engine.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
