package pages

import (
	"oledkb/oled/anim"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
)

const springBox = 32

// Spring moves a crosshair with the encoders and springs a box to it on
// click. Clicking encoder 1 returns to Home.
type Spring struct {
	page.Base
	x, y   *anim.Follower
	cursor [2]int
}

func NewSpring() page.Page {
	s := anim.NewSpring(anim.FPS(15), 6, 0.7)
	return &Spring{x: anim.NewFollower(s, 0), y: anim.NewFollower(s, 0)}
}

func (p *Spring) Render(ctx *page.Context) page.Page {
	for {
		e, ok := ctx.Input.Poll()
		if !ok {
			break
		}
		switch e.Kind {
		case input.EncoderClick:
			if e.Index != 0 {
				return NewHome()
			}
			p.x.Set(float64(p.cursor[0]))
			p.y.Set(float64(p.cursor[1]))
		case input.EncoderScroll:
			if e.Index > 1 {
				continue
			}
			limit := fb.Width
			if e.Index == 1 {
				limit = fb.Height
			}
			d := -1
			if e.Clockwise {
				d = 1
			}
			p.cursor[e.Index] = min(max(p.cursor[e.Index]+d, 0), limit-1)
		}
	}

	x, y := p.x.Step(), p.y.Step()
	f := ctx.FB
	f.FillRect(int(x)-springBox/2, int(y)-springBox/2, springBox, springBox)
	f.FillRect(0, p.cursor[1], fb.Width, 2)
	f.FillRect(p.cursor[0], 0, 2, fb.Height)
	return nil
}

func (*Spring) DrawBorder() bool { return false }
