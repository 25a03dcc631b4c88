package app

import (
	"errors"
	"fmt"
	"time"

	"oledkb/hal"
	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
	"oledkb/oled/page"
	"oledkb/oled/pages"
	"oledkb/oled/screen"
	"oledkb/oled/storage"
)

type Config struct {
	// Start is the first page. Nil plays the startup animation into Home.
	Start page.Page
	// Transition overrides the stored transition for this run.
	Transition *config.Transition
	// GameLayerKey toggles the game layer. Zero disables the toggle.
	GameLayerKey uint16
	// Cat adds the cat overlay.
	Cat bool
	// Secondary drives the right-hand screen: Start (or a Clock when nil)
	// is shown for good with a border and navigation is ignored.
	Secondary bool
	// Now, when set, feeds the clock every tick.
	Now func() time.Time
}

// DefaultConfig is what New and Run use.
func DefaultConfig() Config {
	return Config{GameLayerKey: hal.KeyF1, Cat: true}
}

// App feeds platform input into the renderer, presents frames and runs the
// actions pages queue.
type App struct {
	h        hal.HAL
	console  *pages.Console
	renderer *screen.Renderer
	clock    *pages.ClockFeed
	now      func() time.Time
	store    *storage.Store
	settings config.Settings

	gameLayerKey uint16
	gameLayer    bool
	presentFail  bool
	halted       bool
}

// New initializes the UI with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newApp(h, cfg).Step
}

// Run starts the UI and steps it once per tick forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	bootDiagStart(h)
	a := newApp(h, cfg)
	for range h.Time().Ticks() {
		if err := a.Step(); err != nil {
			break
		}
	}
	select {}
}

func newApp(h hal.HAL, cfg Config) *App {
	a := &App{
		h:        h,
		console:  pages.NewConsole(h.Logger()),
		clock:    &pages.ClockFeed{},
		now:      cfg.Now,
		settings: config.Default(),
	}

	bootScreen(h, "mount flash")
	if dev := h.Flash(); dev != nil {
		s, err := storage.Open(dev, true)
		if err != nil {
			a.logf("app: settings volume: %v", err)
		} else {
			a.store = s
			a.settings, err = s.Load()
			switch {
			case err == nil:
				a.logf("app: settings loaded (%s)", a.settings.Transition)
			case errors.Is(err, storage.ErrNotFound):
			default:
				a.logf("app: settings: %v", err)
			}
		}
	}
	if cfg.Transition != nil {
		a.settings.Transition = *cfg.Transition
	}

	opts := []screen.Option{screen.WithLogger(a.console)}
	if cfg.Cat {
		opts = append(opts, screen.WithCat(screen.NewCat(fb.Width, fb.Height)))
	}
	start := cfg.Start
	bootScreen(h, "start ui")
	if cfg.Secondary {
		if start == nil {
			start = pages.NewClock(a.clock)
		}
		a.renderer = screen.NewSecondary(start, opts...)
		return a
	}
	if start == nil {
		start = pages.NewStartup()
	}
	a.renderer = screen.New(start, nil, &a.settings, opts...)
	a.gameLayerKey = cfg.GameLayerKey
	return a
}

func (a *App) logf(format string, args ...any) {
	a.console.WriteLineString(fmt.Sprintf(format, args...))
}

// Renderer returns the page renderer.
func (a *App) Renderer() *screen.Renderer { return a.renderer }

// Clock returns the feed the clock page reads.
func (a *App) Clock() *pages.ClockFeed { return a.clock }

// Settings returns the live settings.
func (a *App) Settings() *config.Settings { return &a.settings }

// Step runs one tick: drain input, render, present, then execute the
// frame's actions. After a panic it shows the panic screen and keeps
// returning the panic as an error.
func (a *App) Step() (err error) {
	if a.halted {
		return errHalted
	}
	defer func() {
		if v := recover(); v != nil {
			a.halted = true
			err = a.panicked(v)
		}
	}()

	if a.now != nil {
		a.clock.SetTime(a.now().Unix())
	}
	a.drainInput()
	frame := a.renderer.Tick()

	if err := a.h.Display().Present(frame.FB.Bytes()); err != nil {
		if !a.presentFail {
			a.logf("app: present: %v", err)
		}
		a.presentFail = true
	} else {
		a.presentFail = false
	}

	for _, act := range frame.Actions {
		if err := a.run(act); err != nil {
			a.logf("app: %s: %v", act.Kind, err)
		}
	}
	return nil
}

func (a *App) drainInput() {
	in := a.h.Input()
	if in == nil {
		return
	}
	h := a.renderer.Input()
	keys, encoders := in.Keys(), in.Encoders()
	for {
		select {
		case ev := <-keys:
			a.key(ev)
			continue
		case ev := <-encoders:
			h.Push(input.Scroll(ev.Index, ev.Clockwise))
			continue
		default:
		}
		return
	}
}

func (a *App) key(ev hal.KeyEvent) {
	if a.gameLayerKey != 0 && ev.Code == a.gameLayerKey {
		if ev.Press {
			a.gameLayer = !a.gameLayer
			a.renderer.SetGameLayer(a.gameLayer)
		}
		return
	}
	if ev.Press {
		a.renderer.Input().Press(ev.Code)
		return
	}
	a.renderer.Input().Release(ev.Code)
}

func (a *App) run(act page.Action) error {
	switch act.Kind {
	case page.ActionSaveSettings:
		if a.store == nil {
			return errNoVolume
		}
		return a.store.Save(&a.settings)
	case page.ActionClearSettings:
		a.settings = config.Default()
		if a.store == nil {
			return errNoVolume
		}
		return a.store.Clear()
	case page.ActionReset:
		return a.h.System().Reset()
	case page.ActionBootloader:
		return a.h.System().EnterBootloader()
	default:
		return fmt.Errorf("unknown action %d", act.Kind)
	}
}

// Close unmounts the settings volume.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

var (
	errNoVolume = errors.New("no settings volume")
	errHalted   = errors.New("halted after panic")
)
