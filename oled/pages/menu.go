// Package pages holds the pages shown on the keyboard display: the startup
// splash, the menus reached from Home, and the demo and status screens.
package pages

import (
	"oledkb/oled/fb"
	"oledkb/oled/page"
)

// entry is one menu row. open returns the page to navigate to, or nil to
// stay on the menu.
type entry struct {
	label string
	open  func(ctx *page.Context) page.Page
}

// menu is a titled List of entries.
type menu struct {
	page.Base
	title   func(ctx *page.Context) string
	list    List
	entries []entry
	labels  []string
}

func newMenu(title string, entries ...entry) *menu {
	m := &menu{
		title:   func(*page.Context) string { return title },
		list:    NewList(),
		entries: entries,
		labels:  make([]string, len(entries)),
	}
	for i, e := range entries {
		m.labels[i] = e.label
	}
	return m
}

func (m *menu) Render(ctx *page.Context) page.Page {
	i, ok := m.list.Render(ctx.FB, m.labels, ctx.Input.Collect())
	if ok {
		if next := m.entries[i].open(ctx); next != nil {
			return next
		}
	}
	ctx.FB.DrawTextCentered(fb.Width/2, 8, m.title(ctx), fb.TextNormal)
	return nil
}

// to returns an opener that always navigates to the page built by fn.
func to(fn func() page.Page) func(*page.Context) page.Page {
	return func(*page.Context) page.Page { return fn() }
}

// NewHome returns the top-level menu.
func NewHome() page.Page {
	return newMenu("Home",
		entry{"Spring", to(NewSpring)},
		entry{"Colour", to(NewColour)},
		entry{"Settings", to(NewSettings)},
		entry{"Info", to(NewInfo)},
		entry{"Debug", to(NewDebug)},
		entry{"Mode 7", to(NewMode7)},
		entry{"Boot", to(NewBoot)},
	)
}

// NewSettings returns the settings menu.
func NewSettings() page.Page {
	return newMenu("Settings",
		entry{"Back", to(NewHome)},
		entry{"Anims", to(NewTransitionSettings)},
		entry{"Startup", to(NewStartupSettings)},
		entry{"Reset", func(ctx *page.Context) page.Page {
			ctx.Defer(page.ActionClearSettings)
			return nil
		}},
	)
}

// NewStartupSettings toggles the startup animation.
func NewStartupSettings() page.Page {
	set := func(skip bool) func(*page.Context) page.Page {
		return func(ctx *page.Context) page.Page {
			if ctx.Settings != nil {
				ctx.Settings.StartupSkip = skip
				ctx.Defer(page.ActionSaveSettings)
			}
			return nil
		}
	}
	return newMenu("Startup",
		entry{"Back", to(NewSettings)},
		entry{"Anim On", set(false)},
		entry{"Anim Off", set(true)},
	)
}
