package pages

import (
	"oledkb/oled/fb"
	"oledkb/oled/input"
)

// List is a vertical menu. Scrolling encoder 0 moves the selection with
// wraparound, clicking it activates the selected row. The selected row is
// drawn inverted.
type List struct {
	X, Y       int
	ItemWidth  int
	ItemHeight int
	Gap        int
	Selected   int
}

// NewList returns a full-width list starting below the page title.
func NewList() List {
	return List{Y: 20, ItemWidth: fb.Width, ItemHeight: 11}
}

// Update applies events to the selection. It returns the selected index and
// true if the list was activated.
func (l *List) Update(n int, events []input.Event) (int, bool) {
	if n == 0 {
		return 0, false
	}
	activated := false
	for _, e := range events {
		if e.Index != 0 {
			continue
		}
		switch e.Kind {
		case input.EncoderScroll:
			if e.Clockwise {
				l.Selected = (l.Selected + 1) % n
			} else {
				l.Selected = (l.Selected + n - 1) % n
			}
		case input.EncoderClick:
			activated = true
		}
	}
	l.Selected %= n
	return l.Selected, activated
}

// Draw renders options into f.
func (l *List) Draw(f *fb.Framebuffer, options []string) {
	step := l.ItemHeight + l.Gap
	for i, opt := range options {
		y := l.Y + i*step
		style := fb.TextNormal
		if i == l.Selected {
			f.FillRect(l.X, y, l.ItemWidth, l.ItemHeight)
			style = fb.TextInverted
		}
		f.DrawText(l.X+4, y+2, opt, style)
	}
}

// Render is Update followed by Draw.
func (l *List) Render(f *fb.Framebuffer, options []string, events []input.Event) (int, bool) {
	i, ok := l.Update(len(options), events)
	l.Draw(f, options)
	return i, ok
}
