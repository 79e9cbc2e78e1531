package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	panelWidth  = 340
	panelMargin = 10
	lineHeight  = 18
	padding     = 8
)

// DebugPanel is the toggleable state readout drawn in the top-right
// corner of the screen.
type DebugPanel struct {
	Visible bool
	Lines   []string
}

func (d *DebugPanel) Toggle() {
	d.Visible = !d.Visible
}

func (d *DebugPanel) SetLines(lines []string) {
	d.Lines = lines
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if d == nil || !d.Visible || len(d.Lines) == 0 {
		return
	}
	w, _ := getScreenSize()
	ph := lineHeight*len(d.Lines) + 2*padding
	x := w - panelWidth - panelMargin
	y := panelMargin
	bg := color.RGBA{40, 40, 40, 220}
	fillRect(screen, float32(x), float32(y), float32(panelWidth), float32(ph), bg)
	if getFace != nil && drawText != nil {
		face := getFace()
		if face != nil {
			for i, line := range d.Lines {
				drawText(screen, face, line, x+padding, y+padding+i*lineHeight, color.RGBA{255, 200, 50, 255})
			}
		}
	}
}

// Minimal helper to draw a filled rect without pulling the vector
// package into this package.
func fillRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	img := ebiten.NewImage(int(w), int(h))
	img.Fill(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
