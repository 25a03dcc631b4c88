package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	glyphWidth  = 6
	glyphHeight = 8
	glyphCount  = 128

	// Width is the horizontal advance of every glyph.
	Width = glyphWidth
	// Height is the cell height.
	Height = glyphHeight
	// Baseline is the offset from the top of a cell to the y passed to
	// tinyfont.WriteLine.
	Baseline = glyphHeight - 1
)

// Font is the OLED monospace bitmap font (6x8, ASCII).
//
// It implements tinyfont.Fonter. Concurrent access is not safe due to internal
// glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	cols, ok := Columns(g.r)
	if !ok {
		return
	}
	top := y - Baseline
	for col, b := range cols {
		for row := int16(0); row < glyphHeight; row++ {
			if b&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), top+row, c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphWidth,
		Height:   glyphHeight,
		XAdvance: glyphWidth,
		XOffset:  0,
		YOffset:  -Baseline,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return glyphHeight }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Columns returns the six column bytes of r. Runes outside ASCII have no glyph.
func Columns(r rune) ([]byte, bool) {
	if r < 0 || r >= glyphCount {
		return nil, false
	}
	base := int(r) * glyphWidth
	return glyphData[base : base+glyphWidth], true
}
