package pages

import (
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

const startupTicks = 44

// Startup fades the logo in, holds it, and fades it out before handing over
// to Home. It is skipped entirely when the settings ask for it.
type Startup struct {
	page.Base
	tick int
}

func NewStartup() page.Page { return &Startup{} }

// startupFade maps the animation tick to a dither level: fade in over 15
// ticks, hold, then fade out.
func startupFade(n int) int {
	switch {
	case n <= 15:
		return 15 - n
	case n <= 29:
		return 0
	case n <= 44:
		return n - 30
	default:
		return 15
	}
}

func (s *Startup) Render(ctx *page.Context) page.Page {
	if s.tick == 0 && ctx.Settings != nil && ctx.Settings.StartupSkip {
		return NewHome()
	}
	if s.tick > startupTicks {
		return NewHome()
	}
	s.tick++

	ctx.FB.DrawImage((fb.Width-int(Logo.Width))/2, (fb.Height-int(Logo.Height))/2, Logo)
	if level := startupFade(s.tick); level > 0 {
		ctx.FB.Dither(level, false)
	}
	return nil
}

func (*Startup) DrawBorder() bool { return false }
