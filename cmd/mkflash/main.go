//go:build !tinygo

// Command mkflash writes a flash image holding a settings volume, for the
// desktop build or for flashing next to the firmware.
//
//	mkflash -out oledkb.flash -transition slide -hsv 128,255,200 -skip-startup
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"oledkb/oled/config"
	"oledkb/oled/storage"
)

const (
	defaultFlashPath = "oledkb.flash"
	defaultFlashSize = 256 * 1024
	defaultEraseSize = 4096
	pageSize         = 256
)

func main() {
	var outPath string
	var flashSize, eraseSize int64
	var transition, hsv string
	var skipStartup bool
	flag.StringVar(&outPath, "out", defaultFlashPath, "Output flash image path.")
	flag.Int64Var(&flashSize, "size", defaultFlashSize, "Flash image size (bytes).")
	flag.Int64Var(&eraseSize, "erase", defaultEraseSize, "Erase block size (bytes).")
	flag.StringVar(&transition, "transition", "dither", "Page transition.")
	flag.StringVar(&hsv, "hsv", "", "Backlight colour as h,s,v (0-255 each).")
	flag.BoolVar(&skipStartup, "skip-startup", false, "Skip the startup animation.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	st := config.Default()
	t, err := config.ParseTransition(transition)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	st.Transition = t
	if hsv != "" {
		if st.HSV, err = parseHSV(hsv); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
	}
	st.StartupSkip = skipStartup

	if err := run(outPath, flashSize, eraseSize, &st); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, flashSize, eraseSize int64, st *config.Settings) error {
	ff, err := createFlashFile(outPath, flashSize, eraseSize)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	s, err := storage.Open(ff, true)
	if err != nil {
		return err
	}
	if err := s.Save(st); err != nil {
		_ = s.Close()
		return err
	}
	return s.Close()
}

func parseHSV(s string) ([3]uint8, error) {
	var out [3]uint8
	parts := strings.Split(s, ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("hsv %q: want three values", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return out, fmt.Errorf("hsv %q: %w", s, err)
		}
		out[i] = uint8(v)
	}
	return out, nil
}
