//go:build !tinygo

package main

import (
	"image/color"
	"strings"
	"testing"

	"oledkb/oled/config"
	"oledkb/oled/fb"
	"oledkb/oled/input"
)

func TestParseScript(t *testing.T) {
	got, err := parseScript("1:down, 2:click0,3:key:0x04,4:game")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	want := []scripted{
		{tick: 1, ev: input.Scroll(0, true)},
		{tick: 2, ev: input.Click(0)},
		{tick: 3, ev: input.Key(4)},
		{tick: 4, game: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"down", "x:down", "1:jump", "1:key:zz"} {
		if _, err := parseScript(bad); err == nil {
			t.Fatalf("parseScript(%q) accepted", bad)
		}
	}
}

func TestSessionNavigates(t *testing.T) {
	p, ok := newPage("home")
	if !ok {
		t.Fatalf("home page missing")
	}
	s := newSession(p, config.TransitionNone, false)
	script, _ := parseScript("2:down,2:down,2:click")
	for i := 0; i < 4; i++ {
		s.step(script)
	}
	if !strings.Contains(strings.Join(s.log.lines, "\n"), "screen: page -> none") {
		t.Fatalf("navigation not logged: %q", s.log.lines)
	}
}

func TestRenderImageScales(t *testing.T) {
	f := fb.New(4, 8)
	f.DrawPixel(1, 2)
	img := renderImage(f, 3)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 24 {
		t.Fatalf("bounds = %v", b)
	}
	on := color.RGBAModel.Convert(img.At(4, 7)).(color.RGBA)
	off := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if on.B != 0xFF || off.B != 0 {
		t.Fatalf("on=%v off=%v", on, off)
	}
}

func TestRenderPreview(t *testing.T) {
	f := fb.New(4, 4)
	f.DrawPixel(0, 0)
	f.DrawPixel(1, 1)
	f.DrawPixel(2, 0)
	f.DrawPixel(2, 1)
	got := renderPreview(f, 0)
	want := "▀▄█ \n    \n"
	if got != want {
		t.Fatalf("preview = %q, want %q", got, want)
	}
	if narrow := renderPreview(f, 2); narrow != "██\n  \n" {
		t.Fatalf("narrow preview = %q", narrow)
	}
}

func TestSessionDrawsCat(t *testing.T) {
	p, ok := newPage("clock")
	if !ok {
		t.Fatalf("clock page missing")
	}
	s := newSession(p, config.TransitionNone, true)
	var f *fb.Framebuffer
	for i := 0; i < 3; i++ {
		f = s.step(nil)
	}
	b := s.r.Cat().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if f.Pixel(x, y) {
				return
			}
		}
	}
	t.Fatalf("no cat pixels inside %v", b)
}
