package screen

import "oledkb/oled/fb"

const (
	borderThickness = 2
	borderRounding  = 2
	borderCorner    = borderRounding + borderThickness*2
)

// drawBorder frames f with a rounded border whose bottom edge sits offset
// pixels above the bottom of the screen.
func drawBorder(f *fb.Framebuffer, offset int) {
	w := f.Width()
	h := f.Height() - offset

	f.FillRect(0, 0, w, borderThickness)
	f.FillRect(0, 0, borderThickness, h)
	f.FillRect(w-borderThickness, 0, borderThickness, h)
	f.FillRect(0, h-borderThickness, w, borderThickness)

	for i := 0; i < borderRounding; i++ {
		f.DrawLine(0, borderCorner-i-1, borderCorner-i-1, 0)
		f.DrawLine(w-borderCorner+i, 0, w, borderCorner-i)
		f.DrawLine(w-borderCorner+i-1, h, w, h-borderCorner+i-1)
		f.DrawLine(0, h-borderCorner+i, borderCorner-i, h)
	}
}
