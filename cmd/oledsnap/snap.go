//go:build !tinygo

package main

import (
	"fmt"
	"image"
	"sort"
	"strconv"
	"strings"

	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
	"oledkb/oled/pages"
	"oledkb/oled/screen"

	"github.com/fogleman/gg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var pageTable = map[string]func() page.Page{
	"startup":     pages.NewStartup,
	"home":        pages.NewHome,
	"settings":    pages.NewSettings,
	"transitions": pages.NewTransitionSettings,
	"anims":       pages.NewStartupSettings,
	"colour":      pages.NewColour,
	"info":        pages.NewInfo,
	"debug":       pages.NewDebug,
	"spring":      pages.NewSpring,
	"mode7":       pages.NewMode7,
	"boot":        pages.NewBoot,
	"clock":       func() page.Page { return pages.NewClock(nil) },
}

func pageNames() []string {
	names := make([]string, 0, len(pageTable))
	for n := range pageTable {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newPage(name string) (page.Page, bool) {
	fn, ok := pageTable[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// scripted is an input event delivered before the given tick renders.
type scripted struct {
	tick uint32
	ev   input.Event
	game bool
}

func parseScript(s string) ([]scripted, error) {
	var out []scripted
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		at, name, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("%q: want tick:event", item)
		}
		tick, err := strconv.ParseUint(at, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: bad tick: %w", item, err)
		}
		sc := scripted{tick: uint32(tick)}
		switch name {
		case "up":
			sc.ev = input.Scroll(0, false)
		case "down":
			sc.ev = input.Scroll(0, true)
		case "left":
			sc.ev = input.Scroll(1, false)
		case "right":
			sc.ev = input.Scroll(1, true)
		case "click0", "click":
			sc.ev = input.Click(0)
		case "click1":
			sc.ev = input.Click(1)
		case "game":
			sc.game = true
		default:
			code, found := strings.CutPrefix(name, "key:")
			if !found {
				return nil, fmt.Errorf("%q: unknown event %q", item, name)
			}
			n, err := strconv.ParseUint(code, 0, 16)
			if err != nil {
				return nil, fmt.Errorf("%q: bad key: %w", item, err)
			}
			sc.ev = input.Key(uint16(n))
		}
		out = append(out, sc)
	}
	return out, nil
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }

type session struct {
	r        *screen.Renderer
	log      *lineLog
	console  *pages.Console
	settings config.Settings
	game     bool
}

func newSession(start page.Page, tr config.Transition, cat bool) *session {
	s := &session{log: &lineLog{}, settings: config.Default()}
	s.settings.Transition = tr
	s.console = pages.NewConsole(s.log)
	opts := []screen.Option{screen.WithLogger(s.console)}
	if cat {
		opts = append(opts, screen.WithCat(screen.NewCat(fb.Width, fb.Height)))
	}
	s.r = screen.New(start, nil, &s.settings, opts...)
	return s
}

// step delivers the events scheduled for the coming tick and renders it.
func (s *session) step(script []scripted) *fb.Framebuffer {
	now := s.r.Ticks()
	for _, sc := range script {
		if sc.tick != now {
			continue
		}
		if sc.game {
			s.game = !s.game
			s.r.SetGameLayer(s.game)
			continue
		}
		s.r.Input().Push(sc.ev)
	}
	return s.r.Tick().FB
}

var (
	pngOn  = [3]int{0xE8, 0xF4, 0xFF}
	pngOff = [3]int{0x00, 0x00, 0x00}
)

// renderImage draws f with every lit pixel as a scale×scale square.
func renderImage(f *fb.Framebuffer, scale int) image.Image {
	v := f.View()
	b := v.Bounds()
	dc := gg.NewContext(b.Dx()*scale, b.Dy()*scale)
	dc.SetRGB255(pngOff[0], pngOff[1], pngOff[2])
	dc.Clear()
	dc.SetRGB255(pngOn[0], pngOn[1], pngOn[2])
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if v.BitAt(x, y) == image1bit.On {
				dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			}
		}
	}
	dc.Fill()
	return dc.Image()
}

func writePNG(path string, f *fb.Framebuffer, scale int) error {
	if err := gg.SavePNG(path, renderImage(f, scale)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// renderPreview draws f with half-block characters, two rows per line.
// Columns are halved when the terminal is narrower than the panel.
func renderPreview(f *fb.Framebuffer, cols int) string {
	step := 1
	if cols > 0 && cols < f.Width() {
		step = 2
	}
	lit := func(x, y int) bool {
		for dx := 0; dx < step; dx++ {
			if f.Pixel(x+dx, y) {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	for y := 0; y < f.Height(); y += 2 {
		for x := 0; x < f.Width(); x += step {
			top, bottom := lit(x, y), lit(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
