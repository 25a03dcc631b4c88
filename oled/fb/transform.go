package fb

import "oledkb/oled/affine"

// preimage snapshots the buffer into a reusable scratch copy and returns a
// read-only view of it.
func (f *Framebuffer) preimage() *Framebuffer {
	if len(f.pre) != len(f.pix) {
		f.pre = make([]byte, len(f.pix))
	}
	copy(f.pre, f.pix)
	return &Framebuffer{w: f.w, h: f.h, pix: f.pre}
}

// ScaleAround zooms the whole buffer about (cx, cy) so that a newW×newH area
// around the pivot fills the screen. Each destination pixel samples
// pivot + (dst-pivot)*new/size from a snapshot; sources outside the buffer
// leave the destination untouched. A zero size fills everything with the
// pivot's value. Arguments are clamped to the int16 range.
func (f *Framebuffer) ScaleAround(cx, cy, newW, newH int) {
	if f.w == 0 || f.h == 0 {
		return
	}
	cx, cy = clamp(cx, lineMin, lineMax), clamp(cy, lineMin, lineMax)
	newW, newH = clamp(newW, lineMin, lineMax), clamp(newH, lineMin, lineMax)
	pre := f.preimage()
	for y := 0; y < f.h; y++ {
		sy := cy + floorDiv((y-cy)*newH, f.h)
		if sy < 0 || sy >= f.h {
			continue
		}
		for x := 0; x < f.w; x++ {
			sx := cx + floorDiv((x-cx)*newW, f.w)
			if sx < 0 || sx >= f.w {
				continue
			}
			f.PutPixel(x, y, pre.Pixel(sx, sy))
		}
	}
}

// Mode7 remaps every row through its own transform. rowToAffine(y) maps
// source to destination for row y; each destination pixel is fetched through
// the inverse from a snapshot. Sources outside the buffer become clear, or set
// when clearWithWhite is true. Rows whose transform has no inverse are left
// as they are.
func (f *Framebuffer) Mode7(rowToAffine func(y int) affine.Affine2, clearWithWhite bool) {
	pre := f.preimage()
	for y := 0; y < f.h; y++ {
		inv, ok := rowToAffine(y).Inverse()
		if !ok {
			continue
		}
		sx, sy := inv.Apply(0, affine.I(y))
		for x := 0; x < f.w; x++ {
			ix, iy := affine.Floor(sx), affine.Floor(sy)
			if pre.In(ix, iy) {
				f.PutPixel(x, y, pre.Pixel(ix, iy))
			} else {
				f.PutPixel(x, y, clearWithWhite)
			}
			sx += inv.M00
			sy += inv.M10
		}
	}
}
