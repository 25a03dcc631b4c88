package fb

// Bitmap is a packed 1-bit image. Bytes are column-major: each column holds
// ceil(Height/8) bytes of 8 vertical pixels, bit 0 being the topmost.
type Bitmap struct {
	Width  uint8
	Height uint8
	Bytes  []byte
}

// Pages returns the number of bytes per column.
func (b Bitmap) Pages() int { return pages(int(b.Height)) }

// At reports whether pixel (x, y) of the bitmap is set.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= int(b.Width) || y >= int(b.Height) {
		return false
	}
	i := x*b.Pages() + y/8
	if i >= len(b.Bytes) {
		return false
	}
	return b.Bytes[i]&(1<<uint(y%8)) != 0
}

// DrawImage copies every pixel of img to the buffer at (x, y).
func (f *Framebuffer) DrawImage(x, y int, img Bitmap) { f.drawImage(x, y, img, false) }

// DrawImageInverted is DrawImage with every bit flipped.
func (f *Framebuffer) DrawImageInverted(x, y int, img Bitmap) { f.drawImage(x, y, img, true) }

func (f *Framebuffer) drawImage(x, y int, img Bitmap, inverted bool) {
	for ix := 0; ix < int(img.Width); ix++ {
		if x+ix < 0 || x+ix >= f.w {
			continue
		}
		for iy := 0; iy < int(img.Height); iy++ {
			f.PutPixel(x+ix, y+iy, img.At(ix, iy) != inverted)
		}
	}
}
