package screen

import (
	"strings"

	"oledkb/oled/affine"
	"oledkb/oled/anim"
	"oledkb/oled/fb"
)

const (
	marqueeHeight = fb.CharHeight + 4
	marqueeSpeed  = 1
	marqueeFPS    = 15
	marqueeOmega  = 9
	marqueeZeta   = 0.2
)

// Marquee is a banner that springs up from the bottom edge and scrolls its
// text right to left. Its height is shared with the border so the border
// shrinks to make room for it.
type Marquee struct {
	text   string
	spring *anim.Follower
	buf    *fb.Framebuffer
}

func NewMarquee() *Marquee {
	s := anim.NewSpring(anim.FPS(marqueeFPS), marqueeOmega, marqueeZeta)
	return &Marquee{spring: anim.NewFollower(s, 0)}
}

// Show sets the banner text and raises the banner.
func (m *Marquee) Show(text string) {
	pad := max(0, fb.Width/fb.CharWidth-len(text))
	m.text = text + "  " + strings.Repeat(" ", pad)
	m.spring.Set(marqueeHeight)
}

// Hide lowers the banner if it is currently showing text. Requests for other
// text are ignored so one owner cannot hide another's banner.
func (m *Marquee) Hide(text string) {
	if m.text == "" || strings.TrimSpace(m.text) != text {
		return
	}
	m.spring.Set(0)
}

// Text returns the banner text without padding.
func (m *Marquee) Text() string { return strings.TrimSpace(m.text) }

// Offset is the banner's current height in pixels. It can briefly go negative
// or above the resting height while the spring overshoots.
func (m *Marquee) Offset() float64 { return m.spring.Pos }

// Visible reports whether the banner is up or still moving.
func (m *Marquee) Visible() bool {
	return m.text != "" && !(m.spring.Target == 0 && m.spring.Settled(0.5))
}

// Step advances the spring one frame.
func (m *Marquee) Step() { m.spring.Step() }

// Draw composites the banner onto f for the given tick.
func (m *Marquee) Draw(f *fb.Framebuffer, tick uint32) {
	if m.text == "" {
		return
	}
	w, h := f.Width(), f.Height()
	springY := m.spring.Pos

	span := uint32(fb.TextWidth(m.text) + w)
	x0 := w - int(tick*marqueeSpeed%span)

	bannerY := h - int(springY)
	textY := (h+bannerY)/2 - fb.CharHeight/2
	f.FillRect(0, bannerY, w, h)

	if m.buf == nil || m.buf.Width() != w {
		m.buf = fb.New(w, fb.CharHeight)
	}
	buf := m.buf
	buf.Fill()
	buf.DrawText(x0, -1, m.text, fb.TextInverted)

	fade := anim.Remap(springY, 0, marqueeHeight, 20, -12)
	zoom := anim.Remap(springY, 0, marqueeHeight, 0.1, 0)
	if zoom != 0 {
		cx, cy := affine.I(w/2), affine.I(fb.CharHeight/2)
		buf.Mode7(func(row int) affine.Affine2 {
			s := affine.F(float32(float64(row)*zoom + 1))
			return affine.Identity().Origin(cx, cy, func(a affine.Affine2) affine.Affine2 {
				return a.Scale(s, s)
			})
		}, true)
	}
	if p := int(anim.Clamp(fade, 0, 8)); p > 0 {
		buf.Dither(p, true)
	}
	f.DrawFramebuffer(0, textY, buf, fb.IgnoreWhite)
}
