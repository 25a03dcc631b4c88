//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"machine"

	"tinygo.org/x/tinyfs"
)

// boardFlash is the part of the onboard flash past the firmware image.
func boardFlash() tinyfs.BlockDevice { return machine.Flash }

type boardSystem struct{}

func (boardSystem) Reset() error {
	machine.CPUReset()
	return nil
}

func (boardSystem) EnterBootloader() error {
	machine.EnterBootloader()
	return nil
}
