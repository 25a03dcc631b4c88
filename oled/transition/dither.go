package transition

import (
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

const ditherSteps = 8

// Dither reveals the incoming page through the Bayer matrix over eight
// frames.
type Dither struct {
	dest
	progress int
	scratch  *fb.Framebuffer
}

func NewDither(to page.Page) *Dither { return &Dither{dest: dest{to: to}} }

func (d *Dither) Kind() config.Transition { return config.TransitionDither }

func (d *Dither) Render(ctx *page.Context, from page.Page) bool {
	if d.progress >= ditherSteps {
		return true
	}
	ctx.Input.Drain()
	from.Render(ctx)

	s := scratchFor(&d.scratch, ctx.FB)
	d.to.Render(ctx.WithFramebuffer(s))
	ctx.FB.DitherBlend(s, d.progress*2)

	d.progress++
	return false
}
