//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"tinygo.org/x/tinyfs"
)

// Panel geometry of the keyboard's OLED, portrait.
const (
	hostDisplayWidth  = 64
	hostDisplayHeight = 128
)

// HostConfig selects host resources.
type HostConfig struct {
	// FlashPath is the file backing the settings volume. Empty uses
	// $OLEDKB_FLASH_PATH, then hostFlashDefaultPath.
	FlashPath string
	// NoFlash runs without a settings volume.
	NoFlash bool
}

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    *hostKeyboard
	t      *hostTime
	flash  *hostFlash
	sys    hostSystem
}

// New returns a host HAL implementation with default resources.
func New() HAL { return NewHost(HostConfig{}) }

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) HAL { return newHostHAL(cfg) }

func newHostHAL(cfg HostConfig) *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	h := &hostHAL{
		logger: logger,
		disp:   newHostDisplay(hostDisplayWidth, hostDisplayHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		sys:    hostSystem{logger: logger},
	}
	if !cfg.NoFlash {
		f, err := newHostFlash(hostFlashPath(cfg.FlashPath))
		if err != nil {
			logger.WriteLineString(fmt.Sprintf("hal: flash unavailable: %v", err))
		} else {
			h.flash = f
		}
	}
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return h.kbd }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) System() System   { return h.sys }

func (h *hostHAL) Flash() tinyfs.BlockDevice {
	if h.flash == nil {
		return nil
	}
	return h.flash
}

// Close releases the flash file.
func (h *hostHAL) Close() error {
	if h.flash == nil {
		return nil
	}
	return h.flash.Close()
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostDisplay keeps the last presented frame for the window to draw.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
	frames uint64
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]byte, width*((height+7)/8)),
	}
}

func (d *hostDisplay) Size() (int, int) { return d.width, d.height }

func (d *hostDisplay) Present(buf []byte) error {
	if len(buf) != len(d.buf) {
		return fmt.Errorf("present %d bytes to a %dx%d display: %w", len(buf), d.width, d.height, os.ErrInvalid)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.buf, buf)
	d.frames++
	return nil
}

// Frames returns how many frames have been presented.
func (d *hostDisplay) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// snapshotRGBA expands the last frame into dst, 4 bytes per pixel.
func (d *hostDisplay) snapshotRGBA(dst []byte, on, off [4]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := off
			if d.buf[x+(y/8)*d.width]&(1<<(y%8)) != 0 {
				c = on
			}
			copy(dst[(y*d.width+x)*4:], c[:])
		}
	}
}

type hostSystem struct {
	logger Logger
}

func (s hostSystem) Reset() error {
	s.logger.WriteLineString("system: reset requested")
	return nil
}

func (s hostSystem) EnterBootloader() error {
	s.logger.WriteLineString("system: bootloader requested")
	return nil
}
