//go:build !tinygo

// Command oledsnap renders the UI headlessly and writes the final frame as a
// PNG, optionally every Nth frame, with a preview on the terminal.
//
//	oledsnap -page home -events 5:down,6:click -ticks 30 -o home.png
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"oledkb/oled/config"

	"golang.org/x/term"
)

func main() {
	var (
		pageName   = flag.String("page", "startup", "Start page: "+strings.Join(pageNames(), ", ")+".")
		ticks      = flag.Int("ticks", 60, "Number of ticks to render.")
		events     = flag.String("events", "", "Input script: comma separated tick:event (up, down, left, right, click0, click1, key:<usage>, game).")
		transition = flag.String("transition", "dither", "Page transition.")
		outPath    = flag.String("o", "snap.png", "Output PNG. Empty skips the file.")
		every      = flag.Int("every", 0, "Also write every Nth frame as <o>-NNNN.png.")
		scale      = flag.Int("scale", 4, "PNG pixels per OLED pixel.")
		preview    = flag.String("preview", "auto", "Terminal preview: auto, on or off.")
		cat        = flag.Bool("cat", false, "Draw the cat overlay.")
	)
	flag.Parse()

	tr, err := config.ParseTransition(*transition)
	if err != nil {
		fatalf("%v", err)
	}
	script, err := parseScript(*events)
	if err != nil {
		fatalf("events: %v", err)
	}
	start, ok := newPage(*pageName)
	if !ok {
		fatalf("unknown page %q", *pageName)
	}
	if *ticks <= 0 || *scale <= 0 {
		fatalf("ticks and scale must be positive")
	}

	s := newSession(start, tr, *cat)
	for i := 0; i < *ticks; i++ {
		f := s.step(script)
		if *every > 0 && *outPath != "" && i%*every == 0 {
			if err := writePNG(framePath(*outPath, i), f, *scale); err != nil {
				fatalf("%v", err)
			}
		}
	}
	for _, line := range s.log.lines {
		fmt.Fprintln(os.Stderr, line)
	}

	if *outPath != "" {
		if err := writePNG(*outPath, s.r.Framebuffer(), *scale); err != nil {
			fatalf("%v", err)
		}
	}

	show := false
	switch *preview {
	case "on":
		show = true
	case "auto":
		show = term.IsTerminal(int(os.Stdout.Fd()))
	case "off":
	default:
		fatalf("unknown preview mode %q", *preview)
	}
	if show {
		cols := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols = w
		}
		fmt.Print(renderPreview(s.r.Framebuffer(), cols))
	}
}

func framePath(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(out, ext), i, ext)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "oledsnap: "+format+"\n", args...)
	os.Exit(2)
}
