package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontCache hands out faces by pixel size, parsing the font file once.
// When the file is missing or broken every size falls back to
// basicfont.Face7x13.
type FontCache struct {
	parsed *sfnt.Font
	faces  map[int]font.Face
}

// LoadFonts reads the TTF at path. Failures are logged and leave the
// cache on the basic face.
func LoadFonts(path string) *FontCache {
	fc := &FontCache{faces: map[int]font.Face{}}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Println("LoadFonts:", path, "not found, using basic font:", err)
		return fc
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Println("LoadFonts: parse error, using basic font:", err)
		return fc
	}
	fc.parsed = f
	return fc
}

// Face returns a face for the given pixel size, rounded down to whole
// pixels and floored at 8.
func (fc *FontCache) Face(size float64) font.Face {
	px := int(size)
	if px < 8 {
		px = 8
	}
	if face, ok := fc.faces[px]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13
	if fc.parsed != nil {
		f, err := opentype.NewFace(fc.parsed, &opentype.FaceOptions{Size: float64(px), DPI: FontDPI, Hinting: font.HintingFull})
		if err != nil {
			log.Println("FontCache: new face error, using basic font:", err)
		} else {
			face = f
		}
	}
	fc.faces[px] = face
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	lines := splitLines(s)
	// compute line height and baseline offset from metrics
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	lineHeight := ascent + descent
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// Treat provided y as the top of the first line. text.Draw expects baseline y,
	// so shift by ascent.
	baseY := y + ascent
	for i, line := range lines {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	out = append(out, cur)
	return out
}
