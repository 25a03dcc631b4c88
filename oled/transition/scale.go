package transition

import (
	"oledkb/oled/anim"
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

const (
	scaleSteps   = 9
	scaleOutStep = 7
)

// Scale zooms into the outgoing page while the incoming page zooms out of the
// centre and dithers in on top.
type Scale struct {
	dest
	progress int
	scratch  *fb.Framebuffer
}

func NewScale(to page.Page) *Scale { return &Scale{dest: dest{to: to}} }

func (s *Scale) Kind() config.Transition { return config.TransitionScale }

func (s *Scale) Render(ctx *page.Context, from page.Page) bool {
	if s.progress >= scaleSteps {
		return true
	}
	ctx.Input.Drain()

	w, h := ctx.FB.Width(), ctx.FB.Height()
	p := s.progress

	if p < scaleOutStep {
		from.Render(ctx)
		e := anim.EaseOutExpoExtreme(float64(scaleOutStep-p) / scaleSteps)
		ctx.FB.ScaleAround(w/2, h/2, int(float64(w)*e), int(float64(h)*e))
	}

	if p > 0 {
		buf := scratchFor(&s.scratch, ctx.FB)
		s.to.Render(ctx.WithFramebuffer(buf))
		if p < scaleOutStep {
			e := anim.EaseOutExpoExtreme(float64(p) / scaleOutStep)
			buf.ScaleAround(w/2, h/2, int(float64(w)*e), int(float64(h)*e))
		}
		ctx.FB.DitherBlend(buf, p*2+1)
	}

	s.progress++
	return false
}
