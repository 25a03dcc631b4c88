package fb

import (
	"image/color"

	"oledkb/oled/fonts/font6x8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// TextStyle selects how glyph cells are written.
type TextStyle uint8

const (
	// TextNormal draws set glyph bits on a cleared cell.
	TextNormal TextStyle = 0
)

const (
	// TextInverted swaps set and clear: clear glyph bits on a set cell.
	TextInverted TextStyle = 1 << iota
	// TextTransparent leaves the cell background untouched.
	TextTransparent
)

const (
	CharWidth  = font6x8.Width
	CharHeight = font6x8.Height
)

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font6x8.Font, s)
	return int(w)
}

// DrawText draws s with its top-left corner at (x, y).
func (f *Framebuffer) DrawText(x, y int, s string, style TextStyle) {
	inverted := style&TextInverted != 0
	if style&TextTransparent == 0 {
		f.rect(x, y, TextWidth(s), CharHeight, inverted)
	}
	fg := White
	if inverted {
		fg = Black
	}
	tinyfont.WriteLine(f, font6x8.Font, clamp16(x), clamp16(y+font6x8.Baseline), s, fg)
}

// DrawTextCentered draws s horizontally centred on cx.
func (f *Framebuffer) DrawTextCentered(cx, y int, s string, style TextStyle) {
	f.DrawText(cx-TextWidth(s)/2, y, s, style)
}

// The methods below let tinyfont, tinyterm and TinyGo drivers treat the
// framebuffer as a display. Any non-black colour turns a pixel on.

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (int16, int16) { return int16(f.w), int16(f.h) }

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.PutPixel(int(x), int(y), lit(c))
}

// Display implements drivers.Displayer. The framebuffer is presented by its
// owner, so this is a no-op.
func (f *Framebuffer) Display() error { return nil }

// FillRectangle fills a rectangle with c.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.rect(int(x), int(y), int(width), int(height), lit(c))
	return nil
}

// SetScroll is a no-op; the framebuffer has no hardware scroll.
func (f *Framebuffer) SetScroll(int16) {}

// SetRotation is a no-op; rotation is fixed by the panel mounting.
func (f *Framebuffer) SetRotation(drivers.Rotation) error { return nil }

// ScrollUp moves the contents up by n pixels and fills the rows uncovered at
// the bottom with c. Terminals use it for software scrolling.
func (f *Framebuffer) ScrollUp(n int16, c color.RGBA) error {
	dy := int(n)
	if dy <= 0 {
		return nil
	}
	bg := lit(c)
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			on := bg
			if y+dy < f.h {
				on = f.Pixel(x, y+dy)
			}
			f.PutPixel(x, y, on)
		}
	}
	return nil
}

func lit(c color.RGBA) bool { return c.R != 0 || c.G != 0 || c.B != 0 }

func clamp16(v int) int16 {
	const limit = 1 << 14
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return int16(v)
}
