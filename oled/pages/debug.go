package pages

import (
	"strconv"

	"oledkb/oled/fb"
	"oledkb/oled/fonts/font6x8"
	"oledkb/oled/input"
	"oledkb/oled/page"

	"tinygo.org/x/tinyterm"
)

const debugTermTop = 16

// Debug shows the tick counter and a scrolling console of recent log lines.
// Clicking encoder 0 returns to Home.
type Debug struct {
	page.Base
	screen *fb.Framebuffer
	term   *tinyterm.Terminal
	seq    uint32
}

func NewDebug() page.Page {
	d := &Debug{screen: fb.New(fb.Width, fb.Height-debugTermTop-4)}
	d.term = tinyterm.NewTerminal(d.screen)
	d.term.Configure(&tinyterm.Config{
		Font:              font6x8.Font,
		FontHeight:        font6x8.Height,
		FontOffset:        font6x8.Baseline,
		UseSoftwareScroll: true,
	})
	return d
}

func (d *Debug) Render(ctx *page.Context) page.Page {
	for {
		e, ok := ctx.Input.Poll()
		if !ok {
			break
		}
		if e.Kind == input.EncoderClick && e.Index == 0 {
			return NewHome()
		}
	}

	if src, ok := ctx.Log.(LineSource); ok {
		var lines []string
		lines, d.seq = src.Since(d.seq)
		for _, l := range lines {
			_, _ = d.term.Write([]byte(l + "\r\n"))
		}
	}

	ctx.FB.DrawTextCentered(fb.Width/2, 4, strconv.FormatUint(uint64(ctx.Tick), 10), fb.TextNormal)
	ctx.FB.DrawLine(0, debugTermTop-3, fb.Width-1, debugTermTop-3)
	ctx.FB.DrawFramebuffer(0, debugTermTop, d.screen, fb.Opaque)
	return nil
}

func (*Debug) DrawBorder() bool { return false }
