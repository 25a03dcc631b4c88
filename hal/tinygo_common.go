//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/tinyfs"
)

const (
	oledWidth  = 64
	oledHeight = 128

	framePeriod = time.Second / 20
	pollPeriod  = time.Millisecond
)

type tinyGoHAL struct {
	logger Logger
	disp   Display
	in     Input
	t      *tinyGoTime
	flash  tinyfs.BlockDevice
	sys    System
}

func (h *tinyGoHAL) Logger() Logger            { return h.logger }
func (h *tinyGoHAL) Display() Display          { return h.disp }
func (h *tinyGoHAL) Input() Input              { return h.in }
func (h *tinyGoHAL) Flash() tinyfs.BlockDevice { return h.flash }
func (h *tinyGoHAL) Time() Time                { return h.t }
func (h *tinyGoHAL) System() System            { return h.sys }

type nullDisplay struct{}

func (nullDisplay) Size() (int, int)       { return oledWidth, oledHeight }
func (nullDisplay) Present(_ []byte) error { return ErrNotImplemented }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime(period time.Duration) *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 4)}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// quadSteps maps (previous<<2 | current) AB states to a step.
var quadSteps = [16]int8{0, -1, 1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, -1, 0}

// One detent is a full quadrature cycle.
const stepsPerDetent = 4

type encoderPins struct {
	a, b, button machine.Pin
	keycode      uint16

	state   uint8
	acc     int8
	pressed bool
}

func (e *encoderPins) configure() {
	for _, p := range []machine.Pin{e.a, e.b, e.button} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	e.state = e.read()
}

func (e *encoderPins) read() uint8 {
	var s uint8
	if e.a.Get() {
		s |= 2
	}
	if e.b.Get() {
		s |= 1
	}
	return s
}

// pinInput polls the encoder pins. Keyboard matrix keys are delivered by the
// keymap firmware and are not scanned here.
type pinInput struct {
	keys chan KeyEvent
	enc  chan EncoderEvent
	pins []*encoderPins
}

func newPinInput(pins []*encoderPins, period time.Duration) *pinInput {
	in := &pinInput{
		keys: make(chan KeyEvent, 16),
		enc:  make(chan EncoderEvent, 16),
		pins: pins,
	}
	for _, p := range pins {
		p.configure()
	}
	go func() {
		for {
			in.poll()
			time.Sleep(period)
		}
	}()
	return in
}

func (in *pinInput) Keys() <-chan KeyEvent         { return in.keys }
func (in *pinInput) Encoders() <-chan EncoderEvent { return in.enc }

func (in *pinInput) poll() {
	for i, p := range in.pins {
		cur := p.read()
		p.acc += quadSteps[p.state<<2|cur]
		p.state = cur
		if p.acc >= stepsPerDetent || p.acc <= -stepsPerDetent {
			select {
			case in.enc <- EncoderEvent{Index: uint8(i), Clockwise: p.acc > 0}:
			default:
			}
			p.acc = 0
		}

		down := !p.button.Get()
		if down != p.pressed {
			p.pressed = down
			select {
			case in.keys <- KeyEvent{Code: p.keycode, Press: down}:
			default:
			}
		}
	}
}

type serialLogger struct{}

func (serialLogger) WriteLineString(s string) { println(s) }
func (serialLogger) WriteLineBytes(b []byte)  { println(string(b)) }
