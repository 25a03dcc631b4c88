package fb

// bayer4 is the 4×4 ordered-dither threshold matrix, indexed [y%4][x%4].
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Bayer returns the tiled threshold of pixel (x, y), in 0..15.
func Bayer(x, y int) int { return int(bayer4[y&3][x&3]) }

// ditherMask returns, for a byte in column x, the bits whose threshold is at
// most t. Pages start at multiples of 8 so row%4 is bit%4.
func ditherMask(x, t int) byte {
	var m byte
	for bit := 0; bit < 8; bit++ {
		if int(bayer4[bit&3][x&3]) <= t {
			m |= 1 << uint(bit)
		}
	}
	return m
}

// Dither forces every pixel whose threshold is at most progress*2 to the
// value of inverted. progress 0 touches one pixel in sixteen, 8 and above
// touches all of them.
func (f *Framebuffer) Dither(progress int, inverted bool) {
	t := progress * 2
	var masks [4]byte
	for i := range masks {
		masks[i] = ditherMask(i, t)
	}
	for i := range f.pix {
		m := masks[(i%f.w)&3]
		if inverted {
			f.pix[i] |= m
		} else {
			f.pix[i] &^= m
		}
	}
	f.trimLastPage()
}

// DitherBlend copies src onto f wherever the tiled threshold is at most t.
// Transitions use it to reveal the incoming frame through the same matrix
// Dither uses.
func (f *Framebuffer) DitherBlend(src *Framebuffer, t int) {
	if src.w != f.w || src.h != f.h {
		for y := 0; y < f.h; y++ {
			for x := 0; x < f.w; x++ {
				if Bayer(x, y) <= t {
					f.PutPixel(x, y, src.Pixel(x, y))
				}
			}
		}
		return
	}
	var masks [4]byte
	for i := range masks {
		masks[i] = ditherMask(i, t)
	}
	for i := range f.pix {
		m := masks[(i%f.w)&3]
		f.pix[i] = f.pix[i]&^m | src.pix[i]&m
	}
}
