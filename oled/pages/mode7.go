package pages

import (
	"math"

	"oledkb/oled/affine"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

// degPerTick turns the tick into the wobble phase: one radian every 7 ticks.
const degPerTick = 180 / (7 * math.Pi)

// Mode7 bends the logo and a checkered floor through a per-row transform that
// bulges the middle rows and swings the top. Any click returns to Home.
type Mode7 struct {
	page.Base
	tick uint32
}

func NewMode7() page.Page { return &Mode7{} }

func drawChecker(f *fb.Framebuffer, top, cell int) {
	for y := top; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if (x/cell+(y-top)/cell)%2 == 0 {
				f.DrawPixel(x, y)
			}
		}
	}
}

// mode7Row returns the transform for one row at the given wobble.
func mode7Row(row int, wobble affine.Num) affine.Affine2 {
	cx, cy := affine.I(fb.Width/2), affine.I(fb.Height/2)
	bulge := affine.One + affine.Sin(affine.Frac(row*180, fb.Height-1))/2
	swing := wobble * affine.Num(fb.Height-row) / 4
	lift := wobble * 32
	if lift > 0 {
		lift = -lift
	}

	return affine.Identity().
		Origin(cx, cy, func(a affine.Affine2) affine.Affine2 { return a.Scale(bulge, bulge) }).
		Origin(cx, 0, func(a affine.Affine2) affine.Affine2 { return a.Rotate(swing) }).
		Translate(0, lift)
}

func (p *Mode7) Render(ctx *page.Context) page.Page {
	for {
		e, ok := ctx.Input.Poll()
		if !ok {
			break
		}
		if e.Kind == input.EncoderClick {
			return NewHome()
		}
	}
	p.tick++

	f := ctx.FB
	f.DrawImage((fb.Width-int(Logo.Width))/2, 24, Logo)
	drawChecker(f, 80, 8)

	wobble := affine.Sin(affine.F(float32(p.tick) * degPerTick))
	f.Mode7(func(row int) affine.Affine2 { return mode7Row(row, wobble) }, false)
	return nil
}

func (*Mode7) DrawBorder() bool { return false }
