// Package input queues keyboard and encoder events for the page renderer.
package input

import "fmt"

// Kind tags an Event.
type Kind uint8

const (
	KeyDown Kind = iota + 1
	EncoderScroll
	EncoderClick
)

// Keycodes reserved for the encoder push buttons.
const (
	KeyEncoder0 uint16 = 0x6F
	KeyEncoder1 uint16 = 0x70
)

// Event is a discrete input event.
type Event struct {
	Kind      Kind
	Key       uint16 // KeyDown
	Index     uint8  // EncoderScroll, EncoderClick
	Clockwise bool   // EncoderScroll
}

func Key(code uint16) Event             { return Event{Kind: KeyDown, Key: code} }
func Scroll(index uint8, cw bool) Event { return Event{Kind: EncoderScroll, Index: index, Clockwise: cw} }
func Click(index uint8) Event           { return Event{Kind: EncoderClick, Index: index} }

func (e Event) String() string {
	switch e.Kind {
	case KeyDown:
		return fmt.Sprintf("key(%#04x)", e.Key)
	case EncoderScroll:
		dir := "ccw"
		if e.Clockwise {
			dir = "cw"
		}
		return fmt.Sprintf("scroll(%d,%s)", e.Index, dir)
	case EncoderClick:
		return fmt.Sprintf("click(%d)", e.Index)
	default:
		return "none"
	}
}

const (
	queueSlots = 32
	heldSlots  = 8
)

// Handler is a fixed-size event queue plus held-key state. It is not safe
// for concurrent use; the tick driver feeds it between renders.
type Handler struct {
	head  uint8
	tail  uint8
	slots [queueSlots]Event

	held    [heldSlots]uint16
	nheld   int
	encDown [2]bool

	suppressed bool
	dropped    uint32
}

// New returns an empty handler.
func New() *Handler { return &Handler{} }

// SetSuppressed discards incoming events while on, e.g. while a game layer
// owns the encoders.
func (h *Handler) SetSuppressed(on bool) { h.suppressed = on }

// Push queues an event. It reports false if the event was discarded because
// the queue is full or input is suppressed.
func (h *Handler) Push(e Event) bool {
	if h.suppressed {
		return false
	}
	if h.head-h.tail >= queueSlots {
		h.dropped++
		return false
	}
	h.slots[h.head%queueSlots] = e
	h.head++
	return true
}

// Poll removes and returns the oldest event.
func (h *Handler) Poll() (Event, bool) {
	if h.tail == h.head {
		return Event{}, false
	}
	e := h.slots[h.tail%queueSlots]
	h.tail++
	return e, true
}

// Collect removes and returns every queued event, oldest first.
func (h *Handler) Collect() []Event {
	n := h.Len()
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for {
		e, ok := h.Poll()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// Drain discards every queued event.
func (h *Handler) Drain() { h.tail = h.head }

// Len returns the number of queued events.
func (h *Handler) Len() int { return int(h.head - h.tail) }

// Dropped returns how many events were lost to a full queue.
func (h *Handler) Dropped() uint32 { return h.dropped }

// Press records a key press and queues its event. Encoder button keycodes
// become EncoderClick events.
func (h *Handler) Press(code uint16) {
	h.down(code)
	switch code {
	case KeyEncoder0:
		h.Push(Click(0))
	case KeyEncoder1:
		h.Push(Click(1))
	default:
		h.Push(Key(code))
	}
}

// Release records a key release.
func (h *Handler) Release(code uint16) {
	switch code {
	case KeyEncoder0:
		h.encDown[0] = false
	case KeyEncoder1:
		h.encDown[1] = false
	}
	for i := 0; i < h.nheld; i++ {
		if h.held[i] == code {
			h.nheld--
			h.held[i] = h.held[h.nheld]
			return
		}
	}
}

func (h *Handler) down(code uint16) {
	switch code {
	case KeyEncoder0:
		h.encDown[0] = true
	case KeyEncoder1:
		h.encDown[1] = true
	}
	if h.IsDown(code) || h.nheld == heldSlots {
		return
	}
	h.held[h.nheld] = code
	h.nheld++
}

// IsDown reports whether code is currently held.
func (h *Handler) IsDown(code uint16) bool {
	for _, k := range h.held[:h.nheld] {
		if k == code {
			return true
		}
	}
	return false
}

// EncoderDown reports whether encoder i's button is held.
func (h *Handler) EncoderDown(i int) bool {
	if i < 0 || i >= len(h.encDown) {
		return false
	}
	return h.encDown[i]
}

// Held returns the held keycodes.
func (h *Handler) Held() []uint16 { return h.held[:h.nheld] }
