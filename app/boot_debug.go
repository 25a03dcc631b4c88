//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"oledkb/hal"
	"oledkb/oled/fb"
)

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
)

func bootDiagSetStep(msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()
}

// bootDiagStart repeats the current boot step on the logger and USB CDC, so
// a hang during bring-up can be located without a debugger.
func bootDiagStart(h hal.HAL) {
	l := h.Logger()
	go func() {
		for {
			bootDiagMu.Lock()
			step := bootDiagStep
			bootDiagMu.Unlock()

			if step == "" {
				step = "<empty>"
			}
			line := "bootdiag: " + step

			if l != nil {
				l.WriteLineString(line)
			}
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}

func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	disp := h.Display()
	if disp == nil {
		return
	}
	f := fb.NewDisplay()
	f.DrawText(0, 0, "oledkb boot", fb.TextNormal)
	f.DrawText(0, 16, msg, fb.TextNormal)
	_ = disp.Present(f.Bytes())
}
