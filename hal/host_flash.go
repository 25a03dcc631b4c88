//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostFlashDefaultPath      = "oledkb.flash"
	hostFlashDefaultSizeBytes = 256 * 1024
	hostFlashWriteBlockBytes  = 256
	hostFlashEraseBlockBytes  = 4096
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

func hostFlashPath(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv("OLEDKB_FLASH_PATH"); p != "" {
		return p
	}
	return hostFlashDefaultPath
}

// hostFlash emulates NOR flash in a file: writes may only clear bits, erase
// sets whole blocks to 0xFF. It implements tinyfs.BlockDevice.
type hostFlash struct {
	mu     sync.Mutex
	f      *os.File
	size   int64
	erased [hostFlashEraseBlockBytes]byte
}

func newHostFlash(path string) (*hostFlash, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash %s: %w", path, err)
	}

	hf := &hostFlash{f: f, size: hostFlashDefaultSizeBytes}
	for i := range hf.erased {
		hf.erased[i] = 0xFF
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash %s: %w", path, err)
	}
	if st.Size() > 0 {
		if st.Size()%hostFlashEraseBlockBytes != 0 {
			_ = f.Close()
			return nil, fmt.Errorf("flash %s: size %d is not a multiple of %d: %w", path, st.Size(), hostFlashEraseBlockBytes, os.ErrInvalid)
		}
		hf.size = st.Size()
		return hf, nil
	}

	// A new file starts out erased.
	for off := int64(0); off < hf.size; off += hostFlashEraseBlockBytes {
		if _, err := f.WriteAt(hf.erased[:], off); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("init flash %s: %w", path, err)
		}
	}
	return hf, nil
}

func (f *hostFlash) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

func (f *hostFlash) Size() int64           { return f.size }
func (f *hostFlash) WriteBlockSize() int64 { return hostFlashWriteBlockBytes }
func (f *hostFlash) EraseBlockSize() int64 { return hostFlashEraseBlockBytes }

func (f *hostFlash) ReadAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, os.ErrClosed
	}
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	if maxN := f.size - off; int64(len(p)) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, off)
}

func (f *hostFlash) WriteAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, os.ErrClosed
	}
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	if maxN := f.size - off; int64(len(p)) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, off); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, off)
}

// EraseBlocks erases n blocks starting at block start.
func (f *hostFlash) EraseBlocks(start, n int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return os.ErrClosed
	}
	if n == 0 {
		return nil
	}
	off := start * hostFlashEraseBlockBytes
	end := off + n*hostFlashEraseBlockBytes
	if start < 0 || n < 0 || end > f.size {
		return fmt.Errorf("flash erase blocks %d+%d: %w", start, n, os.ErrInvalid)
	}

	for ; off < end; off += hostFlashEraseBlockBytes {
		if _, err := f.f.WriteAt(f.erased[:], off); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
	}
	return nil
}
