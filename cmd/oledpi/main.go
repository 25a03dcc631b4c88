//go:build linux && !tinygo

// Command oledpi runs the UI on a Linux single-board computer with the panel
// on I²C. The panel is mounted portrait, so frames are rotated onto the
// controller's landscape memory before they are sent.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/pages"
	"oledkb/oled/screen"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

func main() {
	var (
		busName    = flag.String("i2c", "", "I²C bus name (empty for the first bus).")
		hz         = flag.Int("hz", 20, "Frame rate.")
		transition = flag.String("transition", "dither", "Page transition.")
		flip       = flag.Bool("flip", false, "Rotate the other way (panel mounted upside down).")
		cat        = flag.Bool("cat", true, "Draw the cat overlay.")
	)
	flag.Parse()

	tr, err := config.ParseTransition(*transition)
	if err != nil {
		log.Fatal(err)
	}
	if *hz <= 0 {
		log.Fatalf("invalid hz %d", *hz)
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph init: %v", err)
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("open i2c %q: %v", *busName, err)
	}
	defer bus.Close()

	opts := ssd1306.DefaultOpts
	opts.W, opts.H = panelWidth, panelHeight
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		log.Fatalf("ssd1306: %v", err)
	}
	defer dev.Halt()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, dev, tr, *hz, *flip, *cat); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, dev *ssd1306.Dev, tr config.Transition, hz int, flip, cat bool) error {
	settings := config.Default()
	settings.Transition = tr
	logger := pages.NewConsole(stdoutLogger{})
	opts := []screen.Option{screen.WithLogger(logger)}
	if cat {
		opts = append(opts, screen.WithCat(screen.NewCat(fb.Width, fb.Height)))
	}
	r := screen.New(pages.NewStartup(), nil, &settings, opts...)
	out := newPanelImage()

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		frame := r.Tick()
		rotate(out, frame.FB.View(), flip)
		if err := dev.Draw(out.Bounds(), out, out.Bounds().Min); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
}

type stdoutLogger struct{}

func (stdoutLogger) WriteLineString(s string) { fmt.Println(s) }
