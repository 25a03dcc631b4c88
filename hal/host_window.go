//go:build !tinygo && cgo

package hal

import (
	"oledkb/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowScale = 4
	windowTPS   = 20
)

var (
	pixelOn  = [4]byte{0xE8, 0xF4, 0xFF, 0xFF}
	pixelOff = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// RunWindow starts a desktop window that displays the panel and forwards
// keyboard input. It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg)
	defer h.Close()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	w, ht := h.disp.Size()
	ebiten.SetWindowTitle("oledkb (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*windowScale, ht*windowScale)
	ebiten.SetTPS(windowTPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.h.disp.Size()
	if g.fbImg == nil {
		g.pix = make([]byte, w*h*4)
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.h.disp.snapshotRGBA(g.pix, pixelOn, pixelOff)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.Size()
}
