package pages

import (
	"math"

	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

const (
	colourStep     = 4
	gradientTop    = 20
	gradientHeight = 85
)

// Colour edits the backlight hue, saturation and value. Encoder 0 adjusts hue,
// or value while the other encoder is held; encoder 1 adjusts saturation.
// Clicking encoder 0 stores the colour and returns to Home.
type Colour struct {
	page.Base
	hsv      [3]uint8
	gradient fb.Bitmap
}

func NewColour() page.Page {
	return &Colour{gradient: ditherGradient(8, gradientHeight)}
}

// ditherGradient builds a w×h bitmap that fades from solid at the top to
// empty at the bottom through the Bayer matrix.
func ditherGradient(w, h int) fb.Bitmap {
	img := fb.Bitmap{Width: uint8(w), Height: uint8(h)}
	pages := (h + 7) / 8
	img.Bytes = make([]byte, w*pages)
	for y := 0; y < h; y++ {
		level := 16 - y*17/h
		for x := 0; x < w; x++ {
			if fb.Bayer(x, y) < level {
				img.Bytes[x*pages+y/8] |= 1 << uint(y%8)
			}
		}
	}
	return img
}

func (c *Colour) Init(ctx *page.Context) {
	if ctx.Settings != nil {
		c.hsv = ctx.Settings.HSV
	}
}

func adjust(v uint8, up bool) uint8 {
	if up {
		if v > math.MaxUint8-colourStep {
			return math.MaxUint8
		}
		return v + colourStep
	}
	if v < colourStep {
		return 0
	}
	return v - colourStep
}

// colourY maps a channel value to the arrow's row on the gradient.
func colourY(v uint8) int {
	frac := float64(v) / 255
	return int(math.Round((1-frac)*(105-24)+24)) - 4
}

func (c *Colour) Render(ctx *page.Context) page.Page {
	for {
		e, ok := ctx.Input.Poll()
		if !ok {
			break
		}
		switch e.Kind {
		case input.EncoderClick:
			if e.Index != 0 {
				continue
			}
			if ctx.Settings != nil {
				ctx.Settings.HSV = c.hsv
				ctx.Defer(page.ActionSaveSettings)
			}
			return NewHome()
		case input.EncoderScroll:
			switch {
			case e.Index == 0 && ctx.Input.EncoderDown(1):
				c.hsv[2] = adjust(c.hsv[2], e.Clockwise)
			case e.Index == 0:
				c.hsv[0] = adjust(c.hsv[0], e.Clockwise)
			case e.Index == 1:
				c.hsv[1] = adjust(c.hsv[1], e.Clockwise)
			}
		}
	}

	ctx.FB.DrawTextCentered(fb.Width/2, 8, "Colour", fb.TextNormal)
	for i := range c.hsv {
		x := 2 + i*20
		ctx.FB.DrawImage(x+6, gradientTop, c.gradient)
		y := colourY(c.hsv[i])
		ctx.FB.DrawImage(x, y, rightArrow)
		ctx.FB.DrawImage(x+15, y, leftArrow)
	}
	return nil
}
