package pages

import (
	"bytes"
	"errors"
	"testing"

	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

func newContext() *page.Context {
	s := config.Default()
	return &page.Context{
		FB:       fb.NewDisplay(),
		Input:    input.New(),
		Actions:  &page.Actions{},
		Settings: &s,
	}
}

func push(ctx *page.Context, events ...input.Event) {
	for _, e := range events {
		ctx.Input.Push(e)
	}
}

func hasAction(ctx *page.Context, kind page.ActionKind) bool {
	for _, a := range ctx.Actions.List() {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func TestListSelection(t *testing.T) {
	cases := []struct {
		name      string
		events    []input.Event
		want      int
		activated bool
	}{
		{"none", nil, 0, false},
		{"down", []input.Event{input.Scroll(0, true)}, 1, false},
		{"wrap up", []input.Event{input.Scroll(0, false)}, 2, false},
		{"wrap down", []input.Event{input.Scroll(0, true), input.Scroll(0, true), input.Scroll(0, true)}, 0, false},
		{"other encoder", []input.Event{input.Scroll(1, true), input.Click(1)}, 0, false},
		{"click", []input.Event{input.Scroll(0, true), input.Click(0)}, 1, true},
		{"keys ignored", []input.Event{input.Key(4)}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewList()
			got, ok := l.Update(3, c.events)
			if got != c.want || ok != c.activated {
				t.Fatalf("Update = %d, %v; want %d, %v", got, ok, c.want, c.activated)
			}
		})
	}
}

func TestListDrawsSelectedRowInverted(t *testing.T) {
	f := fb.NewDisplay()
	l := NewList()
	l.Selected = 1
	l.Draw(f, []string{"A", "B"})
	row1 := l.Y + l.ItemHeight
	if !f.Pixel(0, row1) || f.Pixel(0, l.Y) {
		t.Fatalf("selected row not filled")
	}
}

func TestHomeNavigates(t *testing.T) {
	ctx := newContext()
	home := NewHome()
	push(ctx, input.Scroll(0, true), input.Scroll(0, true), input.Click(0))
	next := home.Render(ctx)
	if _, ok := next.(*menu); !ok || next.(*menu).title(ctx) != "Settings" {
		t.Fatalf("Home entry 2 opened %T, want the settings menu", next)
	}
	if home.Render(ctx) != nil {
		t.Fatalf("Home navigated without input")
	}
}

func TestTransitionPickerStoresChoice(t *testing.T) {
	ctx := newContext()
	p := NewTransitionSettings()
	// Back, Dither, Scale, Slide, Doom, None
	push(ctx, input.Scroll(0, true), input.Scroll(0, true), input.Scroll(0, true), input.Scroll(0, true), input.Click(0))
	if p.Render(ctx) != nil {
		t.Fatalf("picking a transition navigated away")
	}
	if ctx.Settings.Transition != config.TransitionDoom {
		t.Fatalf("transition = %v, want doom", ctx.Settings.Transition)
	}
	if !hasAction(ctx, page.ActionSaveSettings) {
		t.Fatalf("save not queued")
	}
	if got := p.(*menu).title(ctx); got != "Doom" {
		t.Fatalf("title = %q", got)
	}
}

func TestStartupSettings(t *testing.T) {
	ctx := newContext()
	p := NewStartupSettings()
	push(ctx, input.Scroll(0, false), input.Click(0))
	p.Render(ctx)
	if !ctx.Settings.StartupSkip || !hasAction(ctx, page.ActionSaveSettings) {
		t.Fatalf("Anim Off did not store the setting")
	}
}

func TestSettingsReset(t *testing.T) {
	ctx := newContext()
	p := NewSettings()
	push(ctx, input.Scroll(0, false), input.Click(0))
	p.Render(ctx)
	if !hasAction(ctx, page.ActionClearSettings) {
		t.Fatalf("Reset did not queue a clear")
	}
}

func TestStartup(t *testing.T) {
	t.Run("skip", func(t *testing.T) {
		ctx := newContext()
		ctx.Settings.StartupSkip = true
		if NewStartup().Render(ctx) == nil {
			t.Fatalf("startup not skipped")
		}
	})
	t.Run("plays", func(t *testing.T) {
		ctx := newContext()
		p := NewStartup()
		frames := 0
		lit := false
		for p.Render(ctx) == nil {
			frames++
			if frames == 20 && countSet(ctx.FB) > 0 {
				lit = true
			}
			ctx.FB.Clear()
			if frames > 100 {
				t.Fatalf("startup never finished")
			}
		}
		if frames != startupTicks+1 {
			t.Fatalf("startup ran %d frames, want %d", frames, startupTicks+1)
		}
		if !lit {
			t.Fatalf("logo not visible while holding")
		}
	})
}

func TestConsoleSince(t *testing.T) {
	var next []string
	c := NewConsole(loggerFunc(func(s string) { next = append(next, s) }))
	c.WriteLineString("a")
	c.WriteLineString("b")
	lines, seq := c.Since(0)
	if len(lines) != 2 || lines[0] != "a" || seq != 2 || len(next) != 2 {
		t.Fatalf("Since(0) = %q, %d", lines, seq)
	}
	for i := 0; i < consoleLines+5; i++ {
		c.WriteLineString("x")
	}
	lines, _ = c.Since(seq)
	if len(lines) != consoleLines {
		t.Fatalf("overwritten lines replayed: got %d", len(lines))
	}
	if lines, _ := c.Since(c.seq); len(lines) != 0 {
		t.Fatalf("nothing new but got %q", lines)
	}
}

type loggerFunc func(string)

func (f loggerFunc) WriteLineString(s string) { f(s) }

func TestDebugShowsLog(t *testing.T) {
	ctx := newContext()
	c := NewConsole(nil)
	ctx.Log = c
	c.WriteLineString("hello")

	d := NewDebug()
	if d.Render(ctx) != nil {
		t.Fatalf("debug navigated without input")
	}
	term := d.(*Debug).screen
	if countSet(term) == 0 {
		t.Fatalf("log line not written to the terminal")
	}
	ctx.FB.Clear()
	push(ctx, input.Click(0))
	if d.Render(ctx) == nil {
		t.Fatalf("click did not leave the debug page")
	}
}

func TestBootRequestsOnceAfterTransition(t *testing.T) {
	ctx := newContext()
	b := NewBoot()
	ctx.Transitioning = true
	b.Render(ctx)
	if ctx.Actions.Len() != 0 {
		t.Fatalf("bootloader requested during the transition")
	}
	ctx.Transitioning = false
	b.Render(ctx)
	b.Render(ctx)
	if ctx.Actions.Len() != 1 || !hasAction(ctx, page.ActionBootloader) {
		t.Fatalf("actions = %v, want a single bootloader request", ctx.Actions.List())
	}
}

func TestColour(t *testing.T) {
	ctx := newContext()
	ctx.Settings.HSV = [3]uint8{100, 2, 254}
	p := NewColour()
	p.Init(ctx)
	push(ctx,
		input.Scroll(0, true),  // hue +4
		input.Scroll(1, false), // sat clamps at 0
		input.Click(0),
	)
	if p.Render(ctx) == nil {
		t.Fatalf("click did not return home")
	}
	if want := [3]uint8{104, 0, 254}; ctx.Settings.HSV != want {
		t.Fatalf("HSV = %v, want %v", ctx.Settings.HSV, want)
	}
	if !hasAction(ctx, page.ActionSaveSettings) {
		t.Fatalf("save not queued")
	}
	if adjust(254, true) != 255 {
		t.Fatalf("value did not clamp at 255")
	}
}

func TestUptime(t *testing.T) {
	cases := []struct {
		ticks uint32
		want  string
	}{
		{0, "0 secs"},
		{TicksPerSecond, "1 sec"},
		{TicksPerSecond * 59, "59 secs"},
		{TicksPerSecond * 60, "1 min"},
		{TicksPerSecond * 60 * 60 * 2, "2 hrs"},
		{TicksPerSecond * 60 * 60 * 24 * 3, "3 days"},
	}
	for _, c := range cases {
		if got := Uptime(c.ticks); got != c.want {
			t.Fatalf("Uptime(%d) = %q, want %q", c.ticks, got, c.want)
		}
	}
}

func TestInfoCountsKeys(t *testing.T) {
	ctx := newContext()
	p := NewInfo()
	for i := 0; i < 10; i++ {
		push(ctx, input.Key(4))
	}
	if p.Render(ctx) != nil {
		t.Fatalf("key presses left the info page")
	}
	info := p.(*Info)
	if len(info.keys) != 10 || info.history[wpmHistory-1] == 0 {
		t.Fatalf("keys = %d, wpm = %v", len(info.keys), info.history[wpmHistory-1])
	}
	push(ctx, input.Click(1))
	if p.Render(ctx) == nil {
		t.Fatalf("encoder event did not return home")
	}
}

func TestSpringFollowsCursor(t *testing.T) {
	ctx := newContext()
	p := NewSpring().(*Spring)
	for i := 0; i < 20; i++ {
		push(ctx, input.Scroll(0, true))
	}
	push(ctx, input.Click(0))
	p.Render(ctx)
	for i := 0; i < 120; i++ {
		p.Render(ctx)
	}
	if x := p.x.Pos; x < 19 || x > 21 {
		t.Fatalf("box x = %v, want about 20", x)
	}
	push(ctx, input.Click(1))
	if p.Render(ctx) == nil {
		t.Fatalf("encoder 1 click did not return home")
	}
}

func TestMode7Renders(t *testing.T) {
	if _, ok := mode7Row(0, 0).Inverse(); !ok {
		t.Fatalf("row transform not invertible")
	}
	ctx := newContext()
	p := NewMode7()
	for i := 0; i < 30; i++ {
		ctx.FB.Clear()
		p.Render(ctx)
	}
	if countSet(ctx.FB) == 0 {
		t.Fatalf("mode 7 drew nothing")
	}
}

func countSet(f *fb.Framebuffer) int {
	n := 0
	for _, b := range f.Bytes() {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestClockPacket(t *testing.T) {
	good := ClockPacket(1700000000, 21)
	cases := []struct {
		name string
		b    []byte
		ok   bool
	}{
		{"valid", good, true},
		{"trailing bytes", append(append([]byte{}, good...), 1, 2), true},
		{"short", good[:ClockPacketSize-1], false},
		{"bad magic", append([]byte{0xFF, 0xCC, 0x00, 0xAB}, good[4:]...), false},
		{"empty", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var feed ClockFeed
			err := feed.HandlePacket(c.b)
			unix, set, level := feed.Get()
			if !c.ok {
				if !errors.Is(err, ErrBadClockPacket) || set {
					t.Fatalf("err = %v, set = %v", err, set)
				}
				return
			}
			if err != nil || !set || unix != 1700000000 || level != 21 {
				t.Fatalf("got %d %v %d, err %v", unix, set, level, err)
			}
		})
	}
}

func TestClockRender(t *testing.T) {
	cases := []struct {
		name  string
		feed  func(*ClockFeed)
		lines []string
		bar   int
	}{
		{"no time", func(*ClockFeed) {}, []string{"No Time"}, 0},
		{"epoch", func(c *ClockFeed) { c.SetTime(0); c.SetLevel(20) }, []string{"01/01/70", "00:00:00"}, 20},
		{"packet", func(c *ClockFeed) { _ = c.HandlePacket(ClockPacket(1700000000, 500)) }, []string{"14/11/23", "22:13:20"}, fb.Width - 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewClock(nil)
			c.feed(p.Feed())
			ctx := newContext()
			if next := p.Render(ctx); next != nil {
				t.Fatalf("clock navigated to %T", next)
			}

			want := fb.NewDisplay()
			want.DrawTextCentered(fb.Width/2, 20, "Clock", fb.TextNormal)
			for i, l := range c.lines {
				want.DrawTextCentered(fb.Width/2, 40+10*i, l, fb.TextNormal)
			}
			want.FillRect(8, 100, c.bar, 16)
			if !bytes.Equal(ctx.FB.Bytes(), want.Bytes()) {
				t.Fatalf("frame differs from expected layout")
			}
			if !p.DrawBorder() {
				t.Fatalf("clock page should draw a border")
			}
		})
	}
}
