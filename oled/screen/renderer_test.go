package screen

import (
	"image"
	"strings"
	"testing"

	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

// markPage draws a single pixel and navigates to next on tick at.
type markPage struct {
	x, y     int
	next     page.Page
	at       uint32
	border   bool
	deferred page.ActionKind

	inits   int
	renders int
}

func (p *markPage) Init(*page.Context) { p.inits++ }

func (p *markPage) DrawBorder() bool { return p.border }

func (p *markPage) Render(ctx *page.Context) page.Page {
	p.renders++
	ctx.FB.DrawPixel(p.x, p.y)
	if p.deferred != 0 {
		ctx.Defer(p.deferred)
	}
	if p.next != nil && ctx.Tick == p.at {
		return p.next
	}
	return nil
}

// loopPage navigates to another loopPage on every render.
type loopPage struct{ page.Base }

func (loopPage) Render(*page.Context) page.Page { return loopPage{} }

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }

func settingsWith(t config.Transition) *config.Settings {
	s := config.Default()
	s.Transition = t
	return &s
}

func TestNoneTransitionShowsNextPageSameTick(t *testing.T) {
	next := &markPage{x: 20, y: 30}
	start := &markPage{x: 10, y: 10, next: next, at: 10}
	r := New(start, nil, settingsWith(config.TransitionNone))

	for tick := uint32(0); tick < 10; tick++ {
		f := r.Tick()
		if !f.FB.Pixel(10, 10) || f.FB.Pixel(20, 30) {
			t.Fatalf("tick %d: unexpected frame before navigation", tick)
		}
	}
	f := r.Tick()
	if !f.FB.Pixel(20, 30) {
		t.Fatalf("next page not visible on the navigation tick")
	}
	if f.FB.Pixel(10, 10) {
		t.Fatalf("previous page still visible after instant transition")
	}
	if r.Current() != page.Page(next) || r.Transitioning() {
		t.Fatalf("next page not installed")
	}
	if start.inits != 1 || next.inits != 1 {
		t.Fatalf("inits: start=%d next=%d, want 1 and 1", start.inits, next.inits)
	}
}

func TestInitRunsAtNavigation(t *testing.T) {
	next := &markPage{x: 20, y: 30}
	start := &markPage{x: 10, y: 10, next: next}
	r := New(start, nil, settingsWith(config.TransitionDither))

	r.Tick()
	if !r.Transitioning() {
		t.Fatalf("navigation on tick 0 did not start a transition")
	}
	if next.inits != 1 {
		t.Fatalf("destination inits = %d at navigation, want 1", next.inits)
	}
	ticks := 1
	for r.Transitioning() {
		r.Tick()
		ticks++
		if ticks > 20 {
			t.Fatalf("dither transition never completed")
		}
	}
	if ticks != 9 {
		t.Fatalf("dither took %d ticks, want 9", ticks)
	}
	if next.inits != 1 || r.Current() != page.Page(next) {
		t.Fatalf("destination not installed exactly once (inits=%d)", next.inits)
	}
	if !r.Framebuffer().Pixel(20, 30) {
		t.Fatalf("destination not drawn on the completion tick")
	}
}

func TestEveryTransitionInstallsDestination(t *testing.T) {
	for _, kind := range config.Transitions() {
		t.Run(kind.String(), func(t *testing.T) {
			next := &markPage{x: 20, y: 30}
			r := New(&markPage{next: next}, nil, settingsWith(kind))
			for i := 0; i < 200 && r.Current() != page.Page(next); i++ {
				r.Tick()
			}
			if r.Current() != page.Page(next) || next.inits != 1 {
				t.Fatalf("%v never installed the destination", kind)
			}
		})
	}
}

func TestNavigationLoopIsBounded(t *testing.T) {
	r := New(loopPage{}, nil, settingsWith(config.TransitionNone))
	for i := 0; i < 5; i++ {
		r.Tick()
	}
	if r.Ticks() != 5 {
		t.Fatalf("Ticks() = %d, want 5", r.Ticks())
	}
}

func TestBorderFollowsActivePage(t *testing.T) {
	r := New(&markPage{x: 30, y: 60}, nil, nil)
	if f := r.Tick(); f.Border || f.FB.Pixel(0, 0) {
		t.Fatalf("border drawn for a page that declined it")
	}

	r = New(&markPage{x: 30, y: 60, border: true}, nil, nil)
	f := r.Tick()
	if !f.Border {
		t.Fatalf("border flag not set")
	}
	for _, p := range [][2]int{{0, 0}, {fb.Width - 1, 64}, {32, 1}, {32, fb.Height - 1}, {1, 64}} {
		if !f.FB.Pixel(p[0], p[1]) {
			t.Fatalf("border pixel %v not set", p)
		}
	}
	if f.FB.Pixel(10, 64) {
		t.Fatalf("border bled into the page")
	}
}

func TestActionsAreCollectedPerTick(t *testing.T) {
	p := &markPage{deferred: page.ActionReset}
	r := New(p, nil, nil)
	f := r.Tick()
	if len(f.Actions) != 1 || f.Actions[0].Kind != page.ActionReset {
		t.Fatalf("actions = %v, want one reset", f.Actions)
	}
	p.deferred = 0
	if f := r.Tick(); len(f.Actions) != 0 {
		t.Fatalf("actions leaked into the next tick: %v", f.Actions)
	}
}

func TestRendererLogsNavigation(t *testing.T) {
	var l lines
	next := &markPage{}
	r := New(&markPage{next: next}, nil, settingsWith(config.TransitionSlide), WithLogger(&l))
	r.Tick()
	if len(l) == 0 || !strings.HasPrefix(l[0], "screen: ") || !strings.Contains(l[0], "slide") {
		t.Fatalf("log = %q", l)
	}
}

func TestGameLayerRaisesMarquee(t *testing.T) {
	in := input.New()
	r := New(&markPage{x: 5, y: 5}, in, nil)
	r.SetGameLayer(true)
	if in.Push(input.Click(0)) {
		t.Fatalf("input accepted while the game layer is active")
	}
	var f Frame
	for i := 0; i < 120; i++ {
		f = r.Tick()
	}
	if off := r.Marquee().Offset(); off < marqueeHeight-1 || off > marqueeHeight+1 {
		t.Fatalf("marquee offset = %v, want about %d", off, marqueeHeight)
	}
	if !f.FB.Pixel(0, fb.Height-1) || f.FB.Pixel(0, fb.Height-marqueeHeight-2) {
		t.Fatalf("marquee banner not drawn at the bottom")
	}

	r.Marquee().Hide("something else")
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if r.Marquee().Offset() < marqueeHeight/2 {
		t.Fatalf("marquee hidden by a different owner")
	}

	r.SetGameLayer(false)
	for i := 0; i < 120; i++ {
		f = r.Tick()
	}
	if !in.Push(input.Click(0)) {
		t.Fatalf("input still suppressed")
	}
	if r.Marquee().Visible() || f.FB.Pixel(0, fb.Height-1) {
		t.Fatalf("marquee still visible after hiding")
	}
}

func TestMarqueeScrolls(t *testing.T) {
	m := NewMarquee()
	m.Show("HELLO")
	for i := 0; i < 120; i++ {
		m.Step()
	}
	a, b := fb.NewDisplay(), fb.NewDisplay()
	m.Draw(a, 20)
	m.Draw(b, 21)
	if string(a.Bytes()) == string(b.Bytes()) {
		t.Fatalf("marquee did not move between ticks")
	}
	if m.Text() != "HELLO" {
		t.Fatalf("Text() = %q", m.Text())
	}
}

func setIn(f *fb.Framebuffer, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCatDrawnOverFrame(t *testing.T) {
	cat := NewCat(fb.Width, fb.Height)
	r := New(&markPage{x: -1, y: -1}, nil, nil, WithCat(cat))
	plain := New(&markPage{x: -1, y: -1}, nil, nil)

	for tick := 0; tick < 50; tick++ {
		f := r.Tick()
		p := plain.Tick()
		if setIn(p.FB, image.Rect(0, 0, fb.Width, fb.Height)) != 0 {
			t.Fatalf("tick %d: blank page drew pixels", tick)
		}
		if setIn(f.FB, cat.Bounds()) == 0 {
			t.Fatalf("tick %d: no cat pixels inside %v", tick, cat.Bounds())
		}
	}
	if r.Cat() != cat {
		t.Fatalf("Cat() did not return the configured cat")
	}
}

func TestSecondaryIgnoresNavigation(t *testing.T) {
	next := &markPage{x: 20, y: 30}
	start := &markPage{x: 10, y: 10, next: next, at: 0}
	r := NewSecondary(start)

	for tick := 0; tick < 5; tick++ {
		f := r.Tick()
		if !f.Border || !f.FB.Pixel(32, 0) {
			t.Fatalf("tick %d: border missing on secondary screen", tick)
		}
		if !f.FB.Pixel(10, 10) || f.FB.Pixel(20, 30) {
			t.Fatalf("tick %d: wrong page drawn", tick)
		}
	}
	if r.Current() != page.Page(start) || r.Transitioning() {
		t.Fatalf("secondary renderer navigated")
	}
	if start.inits != 1 || next.inits != 0 {
		t.Fatalf("inits: start=%d next=%d", start.inits, next.inits)
	}
}
