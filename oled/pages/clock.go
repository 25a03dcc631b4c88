package pages

import (
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"oledkb/oled/fb"
	"oledkb/oled/page"
)

// ClockPacketSize is the length of a host time packet: four magic bytes, a
// little-endian int64 unix time and a little-endian uint32 level.
const ClockPacketSize = 16

var clockMagic = [4]byte{0xFF, 0xCC, 0x00, 0xAA}

var ErrBadClockPacket = errors.New("clock: bad packet")

// ClockFeed holds the host supplied time and level. It is written from the
// host link and read by the Clock page, so it is safe for concurrent use.
type ClockFeed struct {
	mu    sync.Mutex
	unix  int64
	set   bool
	level uint32
}

// SetTime records the current unix time.
func (c *ClockFeed) SetTime(unix int64) {
	c.mu.Lock()
	c.unix, c.set = unix, true
	c.mu.Unlock()
}

// SetLevel records the bar level shown under the time.
func (c *ClockFeed) SetLevel(level uint32) {
	c.mu.Lock()
	c.level = level
	c.mu.Unlock()
}

// Get returns the last time, whether one was ever set, and the level.
func (c *ClockFeed) Get() (unix int64, ok bool, level uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unix, c.set, c.level
}

// HandlePacket decodes a host time packet. Packets without the magic prefix
// or shorter than ClockPacketSize are rejected and leave the feed unchanged.
func (c *ClockFeed) HandlePacket(b []byte) error {
	if len(b) < ClockPacketSize || [4]byte(b[:4]) != clockMagic {
		return ErrBadClockPacket
	}
	unix := int64(binary.LittleEndian.Uint64(b[4:12]))
	level := binary.LittleEndian.Uint32(b[12:16])
	c.mu.Lock()
	c.unix, c.set, c.level = unix, true, level
	c.mu.Unlock()
	return nil
}

// ClockPacket encodes a host time packet.
func ClockPacket(unix int64, level uint32) []byte {
	b := make([]byte, ClockPacketSize)
	copy(b, clockMagic[:])
	binary.LittleEndian.PutUint64(b[4:12], uint64(unix))
	binary.LittleEndian.PutUint32(b[12:16], level)
	return b
}

// Clock shows the host time in UTC and a level bar. It never navigates.
type Clock struct {
	page.Base
	feed *ClockFeed
}

// NewClock returns a clock page reading feed. A nil feed gets a fresh one.
func NewClock(feed *ClockFeed) *Clock {
	if feed == nil {
		feed = &ClockFeed{}
	}
	return &Clock{feed: feed}
}

func (p *Clock) Feed() *ClockFeed { return p.feed }

func (p *Clock) Render(ctx *page.Context) page.Page {
	f := ctx.FB
	w := f.Width()
	f.DrawTextCentered(w/2, 20, "Clock", fb.TextNormal)

	unix, ok, level := p.feed.Get()
	if ok {
		t := time.Unix(unix, 0).UTC()
		f.DrawTextCentered(w/2, 40, t.Format("02/01/06"), fb.TextNormal)
		f.DrawTextCentered(w/2, 50, t.Format("15:04:05"), fb.TextNormal)
	} else {
		f.DrawTextCentered(w/2, 40, "No Time", fb.TextNormal)
	}

	f.FillRect(8, 100, int(min(level, uint32(max(w-16, 0)))), 16)
	return nil
}
