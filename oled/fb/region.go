package fb

// Transparency selects which source bits DrawRegion writes.
type Transparency uint8

const (
	// Opaque writes every bit.
	Opaque Transparency = iota
	// IgnoreBlack writes only set bits.
	IgnoreBlack
	// IgnoreWhite writes only cleared bits.
	IgnoreWhite
)

// MaxRegionSide bounds the width and height of a packed region.
const MaxRegionSide = 0xFF

func regionDims(w, h int) (int, int) {
	return clamp(w, 0, MaxRegionSide), clamp(h, 0, MaxRegionSide)
}

// RegionSize returns the byte length of a w×h region. Sides are clamped to
// [0, MaxRegionSide].
func RegionSize(w, h int) int {
	w, h = regionDims(w, h)
	return w * pages(h)
}

// Region extracts the w×h rectangle at (x, y) in native page-major layout:
// byte col + (row/8)*w, bit row%8. Pixels outside the buffer read as clear.
// Sides are clamped to [0, MaxRegionSide].
func (f *Framebuffer) Region(x, y, w, h int) []byte {
	out := make([]byte, RegionSize(w, h))
	f.RegionInto(out, x, y, w, h)
	return out
}

// RegionInto is Region writing into dst, which must hold RegionSize(w, h)
// bytes. Short buffers are filled as far as they reach.
func (f *Framebuffer) RegionInto(dst []byte, x, y, w, h int) {
	for i := range dst {
		dst[i] = 0
	}
	w, h = regionDims(w, h)
	x0, y0, x1, y1, ok := clip(x, y, w, h, f.w, f.h)
	if !ok {
		return
	}
	for sy := y0; sy < y1; sy++ {
		row := sy - y
		for sx := x0; sx < x1; sx++ {
			if !f.Pixel(sx, sy) {
				continue
			}
			i := (sx - x) + (row/8)*w
			if i >= len(dst) {
				continue
			}
			dst[i] |= 1 << uint(row%8)
		}
	}
}

// DrawRegion blits a w×h page-major region to (x, y), clipped to the buffer.
// Sides are clamped to [0, MaxRegionSide].
func (f *Framebuffer) DrawRegion(x, y, w, h int, src []byte, t Transparency) {
	w, h = regionDims(w, h)
	x0, y0, x1, y1, ok := clip(x, y, w, h, f.w, f.h)
	if !ok {
		return
	}
	for dy := y0; dy < y1; dy++ {
		row := dy - y
		for dx := x0; dx < x1; dx++ {
			i := (dx - x) + (row/8)*w
			if i >= len(src) {
				continue
			}
			f.blend(dx, dy, src[i]&(1<<uint(row%8)) != 0, t)
		}
	}
}

// CopyRect blits the w×h rectangle of src at (sx, sy) to (dx, dy), clipped
// against both buffers. Pixels outside src read as clear.
func (f *Framebuffer) CopyRect(src *Framebuffer, sx, sy, w, h, dx, dy int, t Transparency) {
	w, h = clamp(w, 0, max(src.w, f.w)), clamp(h, 0, max(src.h, f.h))
	sx, sy = clamp(sx, lineMin, lineMax), clamp(sy, lineMin, lineMax)
	dx, dy = clamp(dx, lineMin, lineMax), clamp(dy, lineMin, lineMax)
	x0, y0, x1, y1, ok := clip(dx, dy, w, h, f.w, f.h)
	if !ok {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.blend(x, y, src.Pixel(sx+x-dx, sy+y-dy), t)
		}
	}
}

func (f *Framebuffer) blend(x, y int, on bool, t Transparency) {
	switch t {
	case IgnoreBlack:
		if !on {
			return
		}
	case IgnoreWhite:
		if on {
			return
		}
	}
	f.PutPixel(x, y, on)
}

// DrawFramebuffer blits all of src at (x, y).
func (f *Framebuffer) DrawFramebuffer(x, y int, src *Framebuffer, t Transparency) {
	if x == 0 && y == 0 && t == Opaque && src.w == f.w && src.h == f.h {
		copy(f.pix, src.pix)
		return
	}
	f.CopyRect(src, 0, 0, src.w, src.h, x, y, t)
}
