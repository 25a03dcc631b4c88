package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"oledkb/hal"
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
	"oledkb/oled/pages"
	"oledkb/oled/storage"

	"tinygo.org/x/tinyfs"
)

type fakeHAL struct {
	lines  []string
	frames [][]byte
	keys   chan hal.KeyEvent
	enc    chan hal.EncoderEvent
	flash  tinyfs.BlockDevice
	resets int
	boots  int
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		keys:  make(chan hal.KeyEvent, 8),
		enc:   make(chan hal.EncoderEvent, 8),
		flash: tinyfs.NewMemoryDevice(256, 4096, 64),
	}
}

func (h *fakeHAL) Logger() hal.Logger                { return h }
func (h *fakeHAL) Display() hal.Display              { return h }
func (h *fakeHAL) Input() hal.Input                  { return h }
func (h *fakeHAL) Flash() tinyfs.BlockDevice         { return h.flash }
func (h *fakeHAL) Time() hal.Time                    { return nil }
func (h *fakeHAL) System() hal.System                { return h }
func (h *fakeHAL) WriteLineString(s string)          { h.lines = append(h.lines, s) }
func (h *fakeHAL) WriteLineBytes(b []byte)           { h.lines = append(h.lines, string(b)) }
func (h *fakeHAL) Size() (int, int)                  { return fb.Width, fb.Height }
func (h *fakeHAL) Keys() <-chan hal.KeyEvent         { return h.keys }
func (h *fakeHAL) Encoders() <-chan hal.EncoderEvent { return h.enc }
func (h *fakeHAL) Reset() error                      { h.resets++; return nil }
func (h *fakeHAL) EnterBootloader() error            { h.boots++; return nil }

func (h *fakeHAL) Present(buf []byte) error {
	h.frames = append(h.frames, append([]byte(nil), buf...))
	return nil
}

func (h *fakeHAL) logged(substr string) bool {
	for _, l := range h.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// testPage records its input and runs an optional hook each render.
type testPage struct {
	page.Base
	events []input.Event
	hook   func(ctx *page.Context)
}

func (p *testPage) Render(ctx *page.Context) page.Page {
	p.events = append(p.events, ctx.Input.Collect()...)
	ctx.FB.DrawPixel(10, 20)
	if p.hook != nil {
		p.hook(ctx)
	}
	return nil
}

func (*testPage) DrawBorder() bool { return false }

func newTestApp(t *testing.T, h *fakeHAL, start page.Page) *App {
	t.Helper()
	a := newApp(h, Config{Start: start, GameLayerKey: hal.KeyF1})
	t.Cleanup(func() { a.Close() })
	return a
}

func TestStepPresentsFrame(t *testing.T) {
	h := newFakeHAL()
	a := newTestApp(t, h, &testPage{})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(h.frames) != 1 {
		t.Fatalf("presented %d frames, want 1", len(h.frames))
	}
	f := h.frames[0]
	if len(f) != fb.Width*fb.Height/8 {
		t.Fatalf("frame is %d bytes", len(f))
	}
	if f[10+(20/8)*fb.Width]&(1<<(20%8)) == 0 {
		t.Fatalf("page pixel missing from the presented frame")
	}
}

func TestInputReachesPage(t *testing.T) {
	h := newFakeHAL()
	p := &testPage{}
	a := newTestApp(t, h, p)

	h.enc <- hal.EncoderEvent{Index: 1, Clockwise: true}
	h.keys <- hal.KeyEvent{Code: input.KeyEncoder0, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyA, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyA, Press: false}
	a.Step()

	want := map[input.Event]bool{
		input.Scroll(1, true): true,
		input.Click(0):        true,
		input.Key(hal.KeyA):   true,
	}
	if len(p.events) != len(want) {
		t.Fatalf("events = %v", p.events)
	}
	for _, e := range p.events {
		if !want[e] {
			t.Fatalf("unexpected event %v", e)
		}
	}
	if !a.Renderer().Input().EncoderDown(0) || a.Renderer().Input().IsDown(hal.KeyA) {
		t.Fatalf("held state not tracked")
	}
}

func TestGameLayerKey(t *testing.T) {
	h := newFakeHAL()
	p := &testPage{}
	a := newTestApp(t, h, p)

	h.keys <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyF1, Press: false}
	h.keys <- hal.KeyEvent{Code: hal.KeyA, Press: true}
	a.Step()
	if len(p.events) != 0 {
		t.Fatalf("input reached the page with the game layer on: %v", p.events)
	}
	if !a.Renderer().Marquee().Visible() {
		t.Fatalf("game layer banner not raised")
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyA, Press: true}
	a.Step()
	if len(p.events) != 1 {
		t.Fatalf("input still suppressed after leaving the game layer")
	}
}

func TestSaveSettingsPersists(t *testing.T) {
	h := newFakeHAL()
	saved := false
	a := newTestApp(t, h, &testPage{hook: func(ctx *page.Context) {
		if !saved {
			saved = true
			ctx.Settings.Transition = config.TransitionDoom
			ctx.Defer(page.ActionSaveSettings)
		}
	}})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b := newTestApp(t, h, &testPage{})
	if b.Settings().Transition != config.TransitionDoom {
		t.Fatalf("transition after reload = %v, want doom", b.Settings().Transition)
	}
	if !h.logged("settings loaded (doom)") {
		t.Fatalf("load not logged: %q", h.lines)
	}
}

func TestClearSettings(t *testing.T) {
	h := newFakeHAL()
	a := newTestApp(t, h, &testPage{hook: func(ctx *page.Context) {
		ctx.Defer(page.ActionClearSettings)
	}})
	a.Settings().StartupSkip = true
	if err := a.store.Save(a.Settings()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	a.Step()
	if *a.Settings() != config.Default() {
		t.Fatalf("settings not reset: %+v", *a.Settings())
	}
	if _, err := a.store.Load(); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("stored settings survived: %v", err)
	}
}

func TestSystemActions(t *testing.T) {
	h := newFakeHAL()
	a := newTestApp(t, h, &testPage{hook: func(ctx *page.Context) {
		ctx.Defer(page.ActionBootloader)
		ctx.Defer(page.ActionReset)
	}})
	a.Step()
	if h.boots != 1 || h.resets != 1 {
		t.Fatalf("boots=%d resets=%d", h.boots, h.resets)
	}
	// The bootloader request follows the frame it was queued on.
	if len(h.frames) != 1 {
		t.Fatalf("frame not presented before the actions")
	}
}

func TestNoVolume(t *testing.T) {
	h := newFakeHAL()
	h.flash = nil
	a := newTestApp(t, h, &testPage{hook: func(ctx *page.Context) {
		ctx.Defer(page.ActionSaveSettings)
	}})
	a.Step()
	if !h.logged("save-settings: no settings volume") {
		t.Fatalf("missing volume not logged: %q", h.lines)
	}
}

func TestTransitionOverride(t *testing.T) {
	h := newFakeHAL()
	tr := config.TransitionNone
	a := newApp(h, Config{Start: &testPage{}, Transition: &tr})
	defer a.Close()
	if a.Settings().Transition != config.TransitionNone {
		t.Fatalf("override ignored")
	}
}

func TestPanicHaltsWithScreen(t *testing.T) {
	h := newFakeHAL()
	a := newTestApp(t, h, &testPage{hook: func(*page.Context) { panic("bad page") }})
	err := a.Step()
	if err == nil || !strings.Contains(err.Error(), "bad page") {
		t.Fatalf("Step after panic: err=%v", err)
	}
	if len(h.frames) != 1 {
		t.Fatalf("panic screen not presented")
	}
	if !h.logged("oledkb panic: bad page") {
		t.Fatalf("panic not logged")
	}
	if err := a.Step(); !errors.Is(err, errHalted) {
		t.Fatalf("second Step: err=%v, want errHalted", err)
	}
}

func TestTakeRunes(t *testing.T) {
	cases := []struct {
		s, prefix, rest string
		n               int
	}{
		{"hello", "hel", "lo", 3},
		{"hi", "hi", "", 3},
		{"héllo", "hé", "llo", 2},
		{"", "", "", 4},
	}
	for _, c := range cases {
		p, r := takeRunes(c.s, c.n)
		if p != c.prefix || r != c.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", c.s, c.n, p, r)
		}
	}
}

func TestSecondaryShowsClock(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{Secondary: true, Cat: true, Now: func() time.Time { return time.Unix(1700000000, 0) }})
	defer a.Close()
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, ok := a.Renderer().Current().(*pages.Clock); !ok {
		t.Fatalf("secondary start page is %T", a.Renderer().Current())
	}
	if unix, ok, _ := a.Clock().Get(); !ok || unix != 1700000000 {
		t.Fatalf("clock = %d, %v", unix, ok)
	}
	if a.Renderer().Cat() == nil {
		t.Fatalf("cat not configured")
	}
	f := h.frames[0]
	if f[fb.Width/2]&1 == 0 {
		t.Fatalf("border missing from the secondary frame")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.GameLayerKey != hal.KeyF1 || !c.Cat || c.Secondary {
		t.Fatalf("DefaultConfig = %+v", c)
	}
}
