package pages

import (
	"strings"

	"oledkb/oled/config"
	"oledkb/oled/page"
)

// NewTransitionSettings picks the page transition. The title shows the one in
// use; choosing another stores it and queues a save.
func NewTransitionSettings() page.Page {
	entries := []entry{{"Back", to(NewSettings)}}
	for _, t := range config.Transitions() {
		entries = append(entries, entry{label: title(t.String()), open: pickTransition(t)})
	}
	m := newMenu("", entries...)
	m.title = func(ctx *page.Context) string {
		if ctx.Settings == nil {
			return "Anims"
		}
		return title(ctx.Settings.Transition.String())
	}
	return m
}

func pickTransition(t config.Transition) func(*page.Context) page.Page {
	return func(ctx *page.Context) page.Page {
		if ctx.Settings == nil || ctx.Settings.Transition == t {
			return nil
		}
		ctx.Settings.Transition = t
		ctx.Defer(page.ActionSaveSettings)
		ctx.LogLine("settings: transition " + t.String())
		return nil
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
