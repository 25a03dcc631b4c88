package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"oledkb/oled/fb"
)

const panicCols = fb.Width / fb.CharWidth

// panicked logs v with the stack and replaces the screen with the panic
// report. The renderer is not used again.
func (a *App) panicked(v any) error {
	err := fmt.Errorf("panic: %v", v)
	l := a.h.Logger()

	lines := []string{"oledkb panic:", fmt.Sprint(v)}
	if l != nil {
		l.WriteLineString("oledkb panic: " + fmt.Sprint(v))
	}
	if stack := debug.Stack(); len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			if l != nil {
				l.WriteLineString(line)
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	f := fb.NewDisplay()
	f.Fill()
	y := 0
	for _, line := range lines {
		for len(line) > 0 && y+fb.CharHeight <= fb.Height {
			chunk, rest := takeRunes(line, panicCols)
			f.DrawText(0, y, chunk, fb.TextInverted)
			y += fb.CharHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.h.Display().Present(f.Bytes())
	return err
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
