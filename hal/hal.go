package hal

import (
	"errors"

	"tinygo.org/x/tinyfs"
)

// Logger is a minimal line-oriented logger. Implementations should be best-effort.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Display receives finished frames.
//
// Present gets the framebuffer bytes verbatim in the panel's page-major
// layout: byte x + (y/8)*Width holds column x, rows y&^7 .. y|7, LSB on top.
// The whole buffer is sent every frame. The slice is only valid during the
// call.
type Display interface {
	Size() (width, height int)
	Present(buf []byte) error
}

// KeyEvent is a key press or release. Encoder push buttons arrive as key
// events carrying input.KeyEncoder0 / input.KeyEncoder1.
type KeyEvent struct {
	Code  uint16
	Press bool
}

// EncoderEvent is one detent of a rotary encoder.
type EncoderEvent struct {
	Index     uint8
	Clockwise bool
}

// Input delivers raw events. Channels may be nil when a source is absent.
// Events are drained by the tick driver between frames.
type Input interface {
	Keys() <-chan KeyEvent
	Encoders() <-chan EncoderEvent
}

// Time delivers one tick per frame.
type Time interface {
	Ticks() <-chan uint64
}

// Board-level requests that leave the UI.
type System interface {
	Reset() error
	EnterBootloader() error
}

// HAL is the platform boundary of the UI.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	// Flash is the settings volume, or nil when the platform has none.
	Flash() tinyfs.BlockDevice
	Time() Time
	System() System
}
