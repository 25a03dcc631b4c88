package pages

import (
	"strconv"

	"oledkb/internal/buildinfo"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

// TicksPerSecond is the nominal render rate the uptime and typing speed are
// measured against.
const TicksPerSecond = 20

const (
	wpmWindow  = TicksPerSecond * 5
	wpmHistory = 20
	wpmSpan    = 50

	graphWidth  = 32
	graphHeight = 32
	graphY      = fb.Height - 12 - graphHeight
)

// Info shows uptime, build and a rolling words-per-minute graph. Any encoder
// event returns to Home.
type Info struct {
	page.Base
	keys    []uint32
	history [wpmHistory]float64
	tick    uint32
}

func NewInfo() page.Page { return &Info{} }

func (p *Info) Render(ctx *page.Context) page.Page {
	for {
		e, ok := ctx.Input.Poll()
		if !ok {
			break
		}
		if e.Kind != input.KeyDown {
			return NewHome()
		}
		p.keys = append(p.keys, p.tick)
	}

	n := 0
	for n < len(p.keys) && p.tick-p.keys[n] > wpmWindow {
		n++
	}
	p.keys = p.keys[n:]

	// Five keystrokes make a word; scale the window up to a minute.
	wpm := float64(len(p.keys)) / 5 * (60 / (float64(wpmWindow) / TicksPerSecond))
	copy(p.history[:], p.history[1:])
	p.history[len(p.history)-1] = wpm

	f := ctx.FB
	f.DrawTextCentered(fb.Width/2, 8, "Uptime", fb.TextNormal)
	f.DrawTextCentered(fb.Width/2, 18, Uptime(ctx.Tick), fb.TextNormal)
	f.DrawTextCentered(fb.Width/2, 32, buildinfo.Short(), fb.TextNormal)
	p.drawGraph(f)

	p.tick++
	return nil
}

func (p *Info) drawGraph(f *fb.Framebuffer) {
	hi := float64(wpmSpan)
	for _, v := range p.history {
		hi = max(hi, v)
	}
	lo := hi - wpmSpan
	hiLabel := strconv.Itoa(int(hi))
	loLabel := strconv.Itoa(int(lo))
	labelWidth := max(len(hiLabel), len(loLabel)) * fb.CharWidth

	x0 := (fb.Width-graphWidth)/2 + labelWidth - 8
	f.DrawTextCentered(fb.Width/2, graphY-12, "WPM", fb.TextNormal)
	f.FillRect(x0, graphY, 1, graphHeight)
	f.FillRect(x0, graphY+graphHeight, graphWidth, 1)

	bar := float64(graphWidth) / float64(len(p.history))
	yOf := func(v float64) int {
		return graphY + graphHeight - int((v-lo)/(hi-lo)*graphHeight)
	}
	for i := 1; i < len(p.history); i++ {
		xa := x0 + 2 + int(float64(i-1)*bar+bar/2) - 1
		xb := x0 + 2 + int(float64(i)*bar+bar/2) - 1
		f.DrawLine(xa, yOf(p.history[i-1]), xb, yOf(p.history[i]))
	}

	f.DrawText(x0-fb.CharWidth*len(loLabel)-2, graphY+graphHeight-fb.CharHeight+2, loLabel, fb.TextTransparent)
	f.DrawText(x0-fb.CharWidth*len(hiLabel)-2, graphY, hiLabel, fb.TextTransparent)
}

// Uptime formats a tick count as a coarse human duration: "1 sec",
// "5 mins", "2 hrs", "3 days".
func Uptime(ticks uint32) string {
	s := ticks / TicksPerSecond
	switch {
	case s < 60:
		return plural(s, "sec")
	case s < 60*60:
		return plural(s/60, "min")
	case s < 60*60*24:
		return plural(s/(60*60), "hr")
	default:
		return plural(s/(60*60*24), "day")
	}
}

func plural(n uint32, unit string) string {
	s := strconv.FormatUint(uint64(n), 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
