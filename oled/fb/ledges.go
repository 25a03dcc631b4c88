package fb

import "image"

// Ledges appends to dst the top edges of the drawn shapes: horizontal runs
// of at least minRun set pixels whose pixels above are clear. Each ledge is a
// one-row rectangle. At most limit ledges are returned, scanning top to
// bottom and left to right.
func (f *Framebuffer) Ledges(dst []image.Rectangle, minRun, limit int) []image.Rectangle {
	minRun = max(minRun, 1)
	for y := 0; y < f.h; y++ {
		run := 0
		for x := 0; x <= f.w; x++ {
			if x < f.w && f.Pixel(x, y) && !f.Pixel(x, y-1) {
				run++
				continue
			}
			if run >= minRun {
				if len(dst) >= limit {
					return dst
				}
				dst = append(dst, image.Rect(x-run, y, x, y+1))
			}
			run = 0
		}
	}
	return dst
}
