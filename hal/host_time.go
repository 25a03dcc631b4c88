//go:build !tinygo

package hal

import (
	"context"
	"time"
)

// hostTime emits one tick per frame. The window advances it from its update
// loop; the headless runner drives it from a ticker.
type hostTime struct {
	ch  chan uint64
	seq uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 64)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step() {
	t.seq++
	select {
	case t.ch <- t.seq:
	default:
	}
}

// run steps once per period until ctx is done.
func (t *hostTime) run(ctx context.Context, period time.Duration) {
	tk := time.NewTicker(period)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.step()
		}
	}
}
