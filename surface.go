package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type offset struct {
	x, y float64
}

// EbitenSurface adapts the frame image to the surface the engine draws
// through. A translation stack stands in for a 2D context's save and
// restore pair; Clear paints the background color since frames carry
// no alpha of their own.
type EbitenSurface struct {
	dst        *ebiten.Image
	fonts      *FontCache
	background color.Color

	offX, offY float64
	stack      []offset
}

func NewEbitenSurface(fonts *FontCache, background color.Color) *EbitenSurface {
	return &EbitenSurface{fonts: fonts, background: background}
}

// SetTarget points the surface at the image being drawn this frame.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Clear(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x+s.offX), float32(y+s.offY), float32(w), float32(h), s.background, false)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x+s.offX), float32(y+s.offY), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x+s.offX), float32(y+s.offY), float32(w), float32(h), float32(width), c, false)
}

func (s *EbitenSurface) FillText(str string, x, y, size float64, c color.Color) {
	face := s.fonts.Face(size)
	ascent := int(face.Metrics().Ascent >> 6)
	text.Draw(s.dst, str, face, int(x+s.offX), int(y+s.offY)+ascent, c)
}

func (s *EbitenSurface) MeasureText(str string, size float64) (float64, float64) {
	b := text.BoundString(s.fonts.Face(size), str)
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Save() {
	s.stack = append(s.stack, offset{s.offX, s.offY})
}

func (s *EbitenSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.offX, s.offY = top.x, top.y
}

func (s *EbitenSurface) Translate(dx, dy float64) {
	s.offX += dx
	s.offY += dy
}
