// Package transition implements the animated handoff between two pages.
//
// A transition owns the incoming page until it completes. Each Render call
// advances one tick against the outgoing page and reports true exactly once,
// when the handoff is visually complete; TakePage then returns the incoming
// page. Every variant finishes in a fixed, bounded number of ticks.
package transition

import (
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

// Transition blends the outgoing page into the incoming one.
type Transition interface {
	// Render draws one tick into ctx.FB. from is the page being replaced.
	Render(ctx *page.Context, from page.Page) bool
	// Page returns the incoming page without giving up ownership.
	Page() page.Page
	// TakePage hands the incoming page back. Call it only after Render has
	// returned true.
	TakePage() page.Page
	Kind() config.Transition
}

// New constructs the transition selected by kind around to.
func New(kind config.Transition, to page.Page) Transition {
	switch kind {
	case config.TransitionScale:
		return NewScale(to)
	case config.TransitionSlide:
		return NewSlide(to)
	case config.TransitionDoom:
		return NewDoom(to)
	case config.TransitionNone:
		return NewNone(to)
	default:
		return NewDither(to)
	}
}

type dest struct {
	to page.Page
}

func (d *dest) Page() page.Page { return d.to }

func (d *dest) TakePage() page.Page {
	p := d.to
	d.to = nil
	return p
}

// scratchFor returns buf cleared and sized like target, allocating on first
// use.
func scratchFor(buf **fb.Framebuffer, target *fb.Framebuffer) *fb.Framebuffer {
	s := *buf
	if s == nil || s.Width() != target.Width() || s.Height() != target.Height() {
		s = fb.New(target.Width(), target.Height())
		*buf = s
		return s
	}
	s.Clear()
	return s
}

// None swaps pages without animation.
type None struct {
	dest
}

func NewNone(to page.Page) *None { return &None{dest{to: to}} }

func (n *None) Kind() config.Transition { return config.TransitionNone }

func (n *None) Render(ctx *page.Context, from page.Page) bool {
	ctx.FB.Clear()
	if n.to != nil {
		n.to.Render(ctx)
	}
	return true
}
