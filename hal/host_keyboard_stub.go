//go:build !tinygo && !cgo

package hal

type hostKeyboard struct {
	keys chan KeyEvent
	enc  chan EncoderEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{
		keys: make(chan KeyEvent, 64),
		enc:  make(chan EncoderEvent, 64),
	}
}

func (k *hostKeyboard) Keys() <-chan KeyEvent         { return k.keys }
func (k *hostKeyboard) Encoders() <-chan EncoderEvent { return k.enc }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
