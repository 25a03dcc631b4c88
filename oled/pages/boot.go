package pages

import (
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

// Boot shows the logo and asks for the bootloader once it is fully on
// screen. The request is queued only after the incoming transition finishes,
// so the last frame shown before the reset is the finished page.
type Boot struct {
	page.Base
	requested bool
}

func NewBoot() page.Page { return &Boot{} }

func (b *Boot) Render(ctx *page.Context) page.Page {
	ctx.FB.DrawImage((fb.Width-int(Logo.Width))/2, (fb.Height-int(Logo.Height))/2, Logo)
	ctx.FB.DrawTextCentered(fb.Width/2, fb.Height-24, "Flash me", fb.TextNormal)
	if b.requested || ctx.Transitioning {
		return nil
	}
	b.requested = true
	ctx.Defer(page.ActionBootloader)
	return nil
}
