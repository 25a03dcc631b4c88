//go:build tinygo && baremetal && !rp2040 && !rp2350

package hal

import "tinygo.org/x/tinyfs"

// New returns a HAL without panel, encoders or flash. Logs go to the board's
// default serial port.
func New() HAL {
	return &tinyGoHAL{
		logger: serialLogger{},
		disp:   nullDisplay{},
		in:     newPinInput(nil, pollPeriod),
		t:      newTinyGoTime(framePeriod),
		flash:  boardFlash(),
		sys:    boardSystem{},
	}
}

func boardFlash() tinyfs.BlockDevice { return nil }

type boardSystem struct{}

func (boardSystem) Reset() error           { return ErrNotImplemented }
func (boardSystem) EnterBootloader() error { return ErrNotImplemented }
