package pages

import "oledkb/oled/page"

const consoleLines = 16

// Console keeps the most recent log lines for the Debug page and forwards
// every line to an optional next logger.
type Console struct {
	next  page.Logger
	lines [consoleLines]string
	seq   uint32
}

// NewConsole returns a console that also writes to next, which may be nil.
func NewConsole(next page.Logger) *Console { return &Console{next: next} }

func (c *Console) WriteLineString(s string) {
	c.lines[c.seq%consoleLines] = s
	c.seq++
	if c.next != nil {
		c.next.WriteLineString(s)
	}
}

// Since returns the lines written after sequence number after, oldest first,
// and the sequence number to pass next time. Lines that have already been
// overwritten are skipped.
func (c *Console) Since(after uint32) ([]string, uint32) {
	if c.seq-after > consoleLines {
		after = c.seq - consoleLines
	}
	out := make([]string, 0, c.seq-after)
	for i := after; i != c.seq; i++ {
		out = append(out, c.lines[i%consoleLines])
	}
	return out, c.seq
}

// LineSource is implemented by loggers that can replay recent lines.
type LineSource interface {
	Since(after uint32) ([]string, uint32)
}
