// Package screen drives the page state machine one tick at a time and
// composites the marquee and border over the result.
package screen

import (
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
	"oledkb/oled/transition"
)

// maxPasses bounds the page/transition loop within one tick. A tick needs at
// most three: navigate, complete an instant transition, render the new page.
const maxPasses = 4

const gameLayerText = "Game layer activated"

// Frame is the finished output of one tick. FB and Actions are owned by the
// Renderer and valid until the next Tick.
type Frame struct {
	FB      *fb.Framebuffer
	Border  bool
	Actions []page.Action
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger routes renderer and page log lines to l.
func WithLogger(l page.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// WithFramebuffer renders into f instead of a display-sized buffer.
func WithFramebuffer(f *fb.Framebuffer) Option {
	return func(r *Renderer) { r.fb = f }
}

// WithCat draws c over every finished frame, after the marquee and border.
func WithCat(c *Cat) Option {
	return func(r *Renderer) { r.cat = c }
}

// Renderer owns the current page, the active transition and the tick
// counter. It is not safe for concurrent use; one Tick call is the critical
// section.
type Renderer struct {
	fb         *fb.Framebuffer
	current    page.Page
	transition transition.Transition
	tick       uint32
	started    bool

	input    *input.Handler
	settings *config.Settings
	actions  page.Actions
	marquee  *Marquee
	cat      *Cat
	log      page.Logger

	secondary bool
}

// New returns a renderer showing start. A nil input handler or settings get
// fresh defaults. start.Init runs on the first Tick.
func New(start page.Page, in *input.Handler, settings *config.Settings, opts ...Option) *Renderer {
	if in == nil {
		in = input.New()
	}
	if settings == nil {
		s := config.Default()
		settings = &s
	}
	r := &Renderer{
		current:  start,
		input:    in,
		settings: settings,
		marquee:  NewMarquee(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fb == nil {
		r.fb = fb.NewDisplay()
	}
	return r
}

func (r *Renderer) Input() *input.Handler        { return r.input }
func (r *Renderer) Settings() *config.Settings   { return r.settings }
func (r *Renderer) Marquee() *Marquee            { return r.marquee }
func (r *Renderer) Current() page.Page           { return r.current }
func (r *Renderer) Framebuffer() *fb.Framebuffer { return r.fb }

// NewSecondary returns a renderer for a second screen that shows p for good.
// Navigation returned by p is ignored and the border is always drawn.
func NewSecondary(p page.Page, opts ...Option) *Renderer {
	r := New(p, nil, nil, opts...)
	r.secondary = true
	return r
}

func (r *Renderer) Cat() *Cat { return r.cat }

// Ticks returns the number of completed ticks.
func (r *Renderer) Ticks() uint32 { return r.tick }

// Transitioning reports whether a transition is active.
func (r *Renderer) Transitioning() bool { return r.transition != nil }

// SetGameLayer suppresses keyboard input and raises the game layer banner
// while on is true.
func (r *Renderer) SetGameLayer(on bool) {
	r.input.SetSuppressed(on)
	if on {
		r.marquee.Show(gameLayerText)
		return
	}
	r.marquee.Hide(gameLayerText)
}

func (r *Renderer) logLine(s string) {
	if r.log != nil {
		r.log.WriteLineString("screen: " + s)
	}
}

// Tick renders one frame.
func (r *Renderer) Tick() Frame {
	r.fb.Clear()
	r.actions.Reset()

	ctx := &page.Context{
		FB:       r.fb,
		Tick:     r.tick,
		Input:    r.input,
		Actions:  &r.actions,
		Settings: r.settings,
		Log:      r.log,
	}
	if !r.started {
		r.started = true
		r.current.Init(ctx)
	}

	border := true
	if r.secondary {
		r.current.Render(ctx)
	} else {
		border = r.drawScreen(ctx)
	}

	r.marquee.Step()
	r.marquee.Draw(r.fb, r.tick)
	if border {
		drawBorder(r.fb, int(r.marquee.Offset()))
	}
	if r.cat != nil {
		r.cat.Draw(r.fb, r.tick)
	}

	r.tick++
	return Frame{FB: r.fb, Border: border, Actions: r.actions.List()}
}

// drawScreen runs the page/transition passes for one tick and reports
// whether the visually active page wants a border.
func (r *Renderer) drawScreen(ctx *page.Context) bool {
	for pass := 0; pass < maxPasses; pass++ {
		if r.transition != nil {
			ctx.Transitioning = true
			if !r.transition.Render(ctx, r.current) {
				return r.transition.Page().DrawBorder()
			}
			ctx.Transitioning = false
			r.current = r.transition.TakePage()
			r.transition = nil
			r.logLine("page installed")
			r.fb.Clear()
			continue
		}

		next := r.current.Render(ctx)
		if next == nil {
			return r.current.DrawBorder()
		}
		next.Init(ctx)
		r.transition = transition.New(r.settings.Transition, next)
		r.logLine("page -> " + r.transition.Kind().String())
		r.fb.Clear()
	}
	if r.transition != nil {
		return r.transition.Page().DrawBorder()
	}
	return r.current.DrawBorder()
}
