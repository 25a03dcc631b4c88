//go:build !tinygo && cgo

package hal

import (
	"oledkb/oled/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// The desktop stands in for the keyboard: Up/Down turn encoder 0, Left/Right
// turn encoder 1, Enter and Space press the encoder buttons and letters,
// digits and a few control keys arrive as HID usages.
type hostKeyboard struct {
	keys chan KeyEvent
	enc  chan EncoderEvent
}

type hostKey struct {
	key  ebiten.Key
	code uint16
}

var hostKeymap = buildHostKeymap()

func buildHostKeymap() []hostKey {
	m := []hostKey{
		{ebiten.KeyEnter, input.KeyEncoder0},
		{ebiten.KeySpace, input.KeyEncoder1},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyF1, KeyF1},
		{ebiten.KeyDigit0, Key0},
	}
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		m = append(m, hostKey{k, KeyA + uint16(i)})
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
		ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		m = append(m, hostKey{k, Key1 + uint16(i)})
	}
	return m
}

var hostEncoders = []struct {
	key ebiten.Key
	ev  EncoderEvent
}{
	{ebiten.KeyArrowUp, EncoderEvent{Index: 0, Clockwise: false}},
	{ebiten.KeyArrowDown, EncoderEvent{Index: 0, Clockwise: true}},
	{ebiten.KeyArrowLeft, EncoderEvent{Index: 1, Clockwise: false}},
	{ebiten.KeyArrowRight, EncoderEvent{Index: 1, Clockwise: true}},
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
	emit := func(code uint16, press bool) {
		select {
		case k.keys <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for _, e := range hostEncoders {
		if inpututil.IsKeyJustPressed(e.key) {
			select {
			case k.enc <- e.ev:
			default:
			}
		}
	}
	for _, m := range hostKeymap {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			emit(m.code, false)
		}
	}
}
