// Package storage persists user settings on a littlefs volume.
//
// Writes go to a temporary file that is synced and renamed over the
// destination, so a reset mid-write leaves the previous settings intact.
// Leftover temporary files are removed at mount.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"oledkb/oled/config"

	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

const (
	dataDir      = "/oledkb"
	settingsFile = "/oledkb/settings.bin"
	tempSuffix   = ".tmp"
)

var (
	ErrNotFound        = errors.New("storage: settings not found")
	ErrVersionMismatch = errors.New("storage: settings version mismatch")
	ErrClosed          = errors.New("storage: closed")
)

// Store reads and writes settings on a block device.
type Store struct {
	fs      *littlefs.LFS
	dev     tinyfs.BlockDevice
	mounted bool
}

// Open mounts the littlefs volume on dev. When format is true a volume that
// fails to mount is formatted and mounted again.
func Open(dev tinyfs.BlockDevice, format bool) (*Store, error) {
	lfs := littlefs.New(dev)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 128,
	})

	if err := lfs.Mount(); err != nil {
		if !format {
			return nil, fmt.Errorf("storage: mount: %w", err)
		}
		if err := lfs.Format(); err != nil {
			return nil, fmt.Errorf("storage: format: %w", err)
		}
		if err := lfs.Mount(); err != nil {
			return nil, fmt.Errorf("storage: mount: %w", err)
		}
	}

	s := &Store{fs: lfs, dev: dev, mounted: true}
	s.cleanup()
	return s, nil
}

// Close unmounts the volume.
func (s *Store) Close() error {
	if !s.mounted {
		return nil
	}
	s.mounted = false
	return s.fs.Unmount()
}

// Size returns the capacity of the underlying device in bytes.
func (s *Store) Size() int64 { return s.dev.Size() }

func (s *Store) cleanup() {
	f, err := s.fs.Open(dataDir)
	if err != nil {
		return
	}
	defer f.Close()
	if !f.IsDir() {
		return
	}
	entries, err := f.Readdir(-1)
	if err != nil {
		return
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), tempSuffix) {
			_ = s.fs.Remove(path.Join(dataDir, e.Name()))
		}
	}
}

// Load reads the stored settings. It returns ErrNotFound when nothing has been
// saved and ErrVersionMismatch, along with defaults, when the stored layout is
// from another version.
func (s *Store) Load() (config.Settings, error) {
	if !s.mounted {
		return config.Default(), ErrClosed
	}
	f, err := s.fs.Open(settingsFile)
	if err != nil {
		if isNotExist(err) {
			return config.Default(), ErrNotFound
		}
		return config.Default(), fmt.Errorf("storage: open: %w", err)
	}
	defer f.Close()

	buf := make([]byte, config.Size)
	n, err := f.Read(buf)
	if err != nil {
		return config.Default(), fmt.Errorf("storage: read: %w", err)
	}

	var st config.Settings
	if err := st.UnmarshalBinary(buf[:n]); err != nil {
		return config.Default(), fmt.Errorf("storage: decode: %w", err)
	}
	if st.Version != config.CurrentVersion {
		return config.Default(), fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, st.Version, config.CurrentVersion)
	}
	return st, nil
}

// LoadOrDefault returns the stored settings, or defaults if they cannot be
// read.
func (s *Store) LoadOrDefault() config.Settings {
	st, err := s.Load()
	if err != nil {
		return config.Default()
	}
	return st
}

// Save writes st, stamping the current version.
func (s *Store) Save(st *config.Settings) error {
	if !s.mounted {
		return ErrClosed
	}
	if err := s.fs.Mkdir(dataDir, 0755); err != nil && !isExist(err) {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	st.Version = config.CurrentVersion
	data, err := st.MarshalBinary()
	if err != nil {
		return err
	}
	return s.atomicWrite(settingsFile, data)
}

// Clear removes the stored settings. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if !s.mounted {
		return ErrClosed
	}
	if err := s.fs.Remove(settingsFile); err != nil && !isNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

func (s *Store) atomicWrite(name string, data []byte) error {
	tmp := name + tempSuffix
	_ = s.fs.Remove(tmp)

	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("storage: create: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("storage: write: %w", err)
	}
	if syncer, ok := f.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			f.Close()
			_ = s.fs.Remove(tmp)
			return fmt.Errorf("storage: sync: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("storage: close: %w", err)
	}

	// littlefs rename does not replace an existing file.
	_ = s.fs.Remove(name)
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "No directory entry")
}

func isExist(err error) bool {
	return os.IsExist(err) || strings.Contains(err.Error(), "already exists")
}
