// Package page defines the contract between the renderer and the pages it
// shows, and the per-tick context passed to them.
package page

import (
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
)

// Page is one screen of the UI.
//
// Render draws the page into ctx.FB and returns a replacement page to
// navigate to, or nil to stay. Init runs once, when the page becomes current.
// DrawBorder reports whether the rounded border is composited on top.
type Page interface {
	Render(ctx *Context) Page
	Init(ctx *Context)
	DrawBorder() bool
}

// Base supplies the default Init and DrawBorder. Embed it in pages.
type Base struct{}

func (Base) Init(*Context)    {}
func (Base) DrawBorder() bool { return true }

// Logger receives best-effort log lines.
type Logger interface {
	WriteLineString(s string)
}

// Context is rebuilt every tick and never retained by pages.
type Context struct {
	FB       *fb.Framebuffer
	Tick     uint32
	Input    *input.Handler
	Actions  *Actions
	Settings *config.Settings
	Log      Logger

	// Transitioning is true while a transition is running.
	Transitioning bool
}

// Defer queues an action to run after the frame has been presented.
func (c *Context) Defer(kind ActionKind) {
	if c.Actions != nil {
		c.Actions.Add(Action{Kind: kind})
	}
}

// LogLine writes a log line if a logger is attached.
func (c *Context) LogLine(s string) {
	if c.Log != nil {
		c.Log.WriteLineString(s)
	}
}

// WithFramebuffer returns a copy of c drawing into f. Input and actions are
// shared with c.
func (c *Context) WithFramebuffer(f *fb.Framebuffer) *Context {
	d := *c
	d.FB = f
	return &d
}

// Detached returns a copy of c drawing into f with its own empty input queue,
// for renders whose input must not be consumed.
func (c *Context) Detached(f *fb.Framebuffer) *Context {
	d := c.WithFramebuffer(f)
	d.Input = input.New()
	return d
}
