package transition

import (
	"oledkb/oled/anim"
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

const (
	slideStart = 5
	slideEnd   = 15
	slideScale = 20
)

// Slide pushes the outgoing page down off the screen, uncovering the incoming
// page underneath.
type Slide struct {
	dest
	progress int
	scratch  *fb.Framebuffer
}

func NewSlide(to page.Page) *Slide {
	return &Slide{dest: dest{to: to}, progress: slideStart}
}

func (s *Slide) Kind() config.Transition { return config.TransitionSlide }

// slideOffset returns the outgoing frame's vertical offset for progress p on a
// screen h pixels tall.
func slideOffset(p, h int) int {
	return int(anim.EaseInOutExpo(float64(p)/slideScale) * float64(h))
}

func (s *Slide) Render(ctx *page.Context, from page.Page) bool {
	if s.progress >= slideEnd {
		return true
	}
	ctx.Input.Drain()

	s.to.Render(ctx)
	buf := scratchFor(&s.scratch, ctx.FB)
	from.Render(ctx.WithFramebuffer(buf))
	ctx.FB.DrawFramebuffer(0, slideOffset(s.progress, ctx.FB.Height()), buf, fb.Opaque)

	s.progress++
	return false
}
