//go:build linux && !tinygo

package main

import (
	"image"

	"oledkb/oled/fb"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Controller memory is landscape.
const (
	panelWidth  = fb.Height
	panelHeight = fb.Width
)

func newPanelImage() *image1bit.VerticalLSB {
	return image1bit.NewVerticalLSB(image.Rect(0, 0, panelWidth, panelHeight))
}

// rotate copies the portrait frame into the landscape panel image, turning
// it a quarter clockwise, or counter-clockwise when flip is set. src is
// usually a framebuffer's View.
func rotate(dst, src *image1bit.VerticalLSB, flip bool) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := h-1-y, x
			if flip {
				px, py = y, w-1-x
			}
			dst.SetBit(px, py, src.BitAt(b.Min.X+x, b.Min.Y+y))
		}
	}
}
