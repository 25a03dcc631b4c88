//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"oledkb/app"
	"oledkb/hal"
	"oledkb/oled/config"
)

func main() {
	var cfg hal.HeadlessConfig
	var transition string
	var noGameKey, noCat, right bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 20, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Host.FlashPath, "flash", "", "Settings flash image (default $OLEDKB_FLASH_PATH or oledkb.flash).")
	flag.BoolVar(&cfg.Host.NoFlash, "no-flash", false, "Run without a settings volume.")
	flag.StringVar(&transition, "transition", "", "Override the page transition (dither, scale, slide, doom, none).")
	flag.BoolVar(&noGameKey, "no-game-key", false, "Disable the F1 game layer toggle.")
	flag.BoolVar(&noCat, "no-cat", false, "Hide the cat.")
	flag.BoolVar(&right, "right", false, "Show the right-hand screen (clock) instead of the menus.")
	flag.Parse()

	appCfg := app.DefaultConfig()
	if noGameKey {
		appCfg.GameLayerKey = 0
	}
	appCfg.Cat = !noCat
	if right {
		appCfg.Secondary = true
		appCfg.Now = time.Now
	}
	if transition != "" {
		t, err := config.ParseTransition(transition)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		appCfg.Transition = &t
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
