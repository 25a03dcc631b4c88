// Package fb implements the 1-bit OLED framebuffer and its drawing primitives.
//
// Pixels are stored page-major and LSB first, the layout SSD1306-class
// controllers expect on the wire: pixel (x, y) lives in byte x + (y/8)*W at
// bit y%8. Every drawing operation is total: coordinates outside the buffer
// are skipped per pixel and never wrap into a neighbouring byte.
package fb

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	// Width and Height describe the keyboard's portrait OLED.
	Width  = 64
	Height = 128
)

var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

// Framebuffer is a bit-packed monochrome pixel array.
type Framebuffer struct {
	w, h int
	pix  []byte

	// pre is reused as the sampling snapshot of ScaleAround and Mode7.
	pre []byte
}

// New returns a cleared w×h framebuffer.
func New(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{w: w, h: h, pix: make([]byte, w*pages(h))}
}

// NewDisplay returns a cleared framebuffer sized for the display.
func NewDisplay() *Framebuffer { return New(Width, Height) }

func pages(h int) int { return (h + 7) / 8 }

func (f *Framebuffer) Width() int  { return f.w }
func (f *Framebuffer) Height() int { return f.h }

// Bytes returns the backing page-major buffer. It is the exact byte stream
// handed to the display controller.
func (f *Framebuffer) Bytes() []byte { return f.pix }

// Clone returns an independent copy.
func (f *Framebuffer) Clone() *Framebuffer {
	c := &Framebuffer{w: f.w, h: f.h, pix: make([]byte, len(f.pix))}
	copy(c.pix, f.pix)
	return c
}

// CopyFrom overwrites f with src. Buffers of different size are copied pixel
// by pixel over their common area.
func (f *Framebuffer) CopyFrom(src *Framebuffer) {
	if src.w == f.w && src.h == f.h {
		copy(f.pix, src.pix)
		return
	}
	f.Clear()
	for y := 0; y < f.h && y < src.h; y++ {
		for x := 0; x < f.w && x < src.w; x++ {
			f.PutPixel(x, y, src.Pixel(x, y))
		}
	}
}

func (f *Framebuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// Fill sets every pixel.
func (f *Framebuffer) Fill() {
	for i := range f.pix {
		f.pix[i] = 0xFF
	}
	f.trimLastPage()
}

// Invert flips every pixel.
func (f *Framebuffer) Invert() {
	for i := range f.pix {
		f.pix[i] = ^f.pix[i]
	}
	f.trimLastPage()
}

// trimLastPage clears the padding bits below the last row.
func (f *Framebuffer) trimLastPage() {
	rem := f.h % 8
	if rem == 0 || f.w == 0 {
		return
	}
	keep := byte(1<<rem) - 1
	last := (pages(f.h) - 1) * f.w
	for x := 0; x < f.w; x++ {
		f.pix[last+x] &= keep
	}
}

// In reports whether (x, y) addresses a pixel of the buffer.
func (f *Framebuffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.w && y < f.h
}

func (f *Framebuffer) offset(x, y int) (int, byte) {
	return x + (y/8)*f.w, 1 << uint(y%8)
}

// Pixel reports whether (x, y) is set. Out-of-range pixels read as clear.
func (f *Framebuffer) Pixel(x, y int) bool {
	if !f.In(x, y) {
		return false
	}
	i, bit := f.offset(x, y)
	return f.pix[i]&bit != 0
}

func (f *Framebuffer) DrawPixel(x, y int) { f.PutPixel(x, y, true) }

func (f *Framebuffer) ClearPixel(x, y int) { f.PutPixel(x, y, false) }

// PutPixel sets or clears (x, y).
func (f *Framebuffer) PutPixel(x, y int, on bool) {
	if !f.In(x, y) {
		return
	}
	i, bit := f.offset(x, y)
	if on {
		f.pix[i] |= bit
	} else {
		f.pix[i] &^= bit
	}
}

// Line endpoints are clamped to the int16 range before rasterizing.
const (
	lineMin = -1 << 15
	lineMax = 1<<15 - 1
)

// DrawLine draws a Bresenham line including both endpoints. Endpoints are
// clamped to the int16 range; the walk stops once the line has left the
// buffer.
func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	x0, y0 = clamp(x0, lineMin, lineMax), clamp(y0, lineMin, lineMax)
	x1, y1 = clamp(x1, lineMin, lineMax), clamp(y1, lineMin, lineMax)
	if max(x0, x1) < 0 || max(y0, y1) < 0 || min(x0, x1) >= f.w || min(y0, y1) >= f.h {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	entered := false
	for {
		// Both coordinates move monotonically, so the visible part of
		// the line is one contiguous run.
		if f.In(x0, y0) {
			f.DrawPixel(x0, y0)
			entered = true
		} else if entered {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillRect sets a w×h rectangle, clipped to the buffer.
func (f *Framebuffer) FillRect(x, y, w, h int) { f.rect(x, y, w, h, true) }

// ClearRect clears a w×h rectangle, clipped to the buffer.
func (f *Framebuffer) ClearRect(x, y, w, h int) { f.rect(x, y, w, h, false) }

func (f *Framebuffer) rect(x, y, w, h int, on bool) {
	x0, y0, x1, y1, ok := clip(x, y, w, h, f.w, f.h)
	if !ok {
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.PutPixel(px, py, on)
		}
	}
}

// View returns an image.Image over the same memory. Writes through the view
// are visible in f and vice versa.
func (f *Framebuffer) View() *image1bit.VerticalLSB {
	return &image1bit.VerticalLSB{Pix: f.pix, Stride: f.w, Rect: image.Rect(0, 0, f.w, f.h)}
}

// clip intersects the w×h rectangle at (x, y) with [0,bw)×[0,bh) without
// overflowing on extreme inputs.
func clip(x, y, w, h, bw, bh int) (x0, y0, x1, y1 int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	x0, y0, x1, y1 = max(x, 0), max(y, 0), bw, bh
	if x < bw-w {
		x1 = x + w
	}
	if y < bh-h {
		y1 = y + h
	}
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func clamp(v, lo, hi int) int { return min(max(v, lo), hi) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
