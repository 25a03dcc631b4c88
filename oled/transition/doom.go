package transition

import (
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

const (
	meltColumnWidth = 2
	meltFall        = 6
)

// meltTable is the fixed jitter source for column start delays. It is read
// through a rotating index shared by every Doom transition.
var meltTable = [64]byte{
	0xfc, 0x85, 0xda, 0x0b, 0xe8, 0x01, 0xa6, 0xe7, 0x94, 0x3d, 0x32, 0x83, 0x00, 0x39, 0x7e, 0xdf,
	0x2c, 0xf5, 0x8a, 0xfb, 0x18, 0x71, 0x56, 0xd7, 0xc4, 0xad, 0xe2, 0x73, 0x30, 0xa9, 0x2e, 0xcf,
	0x5c, 0x65, 0x3a, 0xeb, 0x48, 0xe1, 0x06, 0xc7, 0xf4, 0x1d, 0x92, 0x63, 0x60, 0x19, 0xde, 0xbf,
	0x8c, 0xd5, 0xea, 0xdb, 0x78, 0x51, 0xb6, 0xb7, 0x24, 0x8d, 0x42, 0x53, 0x90, 0x89, 0x8e, 0xaf,
}

var meltIndex uint8

// meltJitter returns -1, 0 or +1.
func meltJitter() int {
	b := meltTable[meltIndex%uint8(len(meltTable))]
	meltIndex++
	return int(b%3) - 1
}

type meltColumn struct {
	until uint8
	y     int
}

// tick counts down the start delay, then drops the column by meltFall
// until it reaches bottom.
func (c *meltColumn) tick(bottom int) {
	if c.until > 0 {
		c.until--
	}
	if c.until == 0 && c.y < bottom {
		c.y = min(c.y+meltFall, bottom)
	}
}

// Doom melts the outgoing page away in staggered 2-pixel columns, the way the
// classic screen wipe does.
type Doom struct {
	dest
	cols   []meltColumn
	snap   *fb.Framebuffer
	height int
}

func NewDoom(to page.Page) *Doom { return &Doom{dest: dest{to: to}} }

func (d *Doom) Kind() config.Transition { return config.TransitionDoom }

func (d *Doom) layout(w int) {
	d.cols = make([]meltColumn, w/meltColumnWidth)
	for i := 1; i < len(d.cols); i++ {
		until := int(d.cols[i-1].until) + meltJitter()
		d.cols[i].until = uint8(max(0, min(until, 0xFF)))
	}
}

// capture renders the outgoing page once.
func (d *Doom) capture(ctx *page.Context, from page.Page) {
	d.height = ctx.FB.Height()
	d.snap = fb.New(ctx.FB.Width(), d.height)
	from.Render(ctx.Detached(d.snap))
}

func (d *Doom) finished() bool {
	for _, c := range d.cols {
		if c.y < d.height {
			return false
		}
	}
	return true
}

func (d *Doom) Render(ctx *page.Context, from page.Page) bool {
	if d.cols == nil {
		d.layout(ctx.FB.Width())
		d.capture(ctx, from)
	}
	if d.finished() {
		return true
	}

	busy := false
	for _, c := range d.cols {
		if c.y < d.height/4 {
			busy = true
			break
		}
	}
	if busy {
		ctx.Input.Drain()
	}

	d.to.Render(ctx)
	for i := range d.cols {
		d.cols[i].tick(d.height)
	}
	for i, c := range d.cols {
		if c.y >= d.height {
			continue
		}
		x := i * meltColumnWidth
		ctx.FB.CopyRect(d.snap, x, 0, meltColumnWidth, d.height-c.y, x, c.y, fb.Opaque)
	}
	return d.finished()
}
