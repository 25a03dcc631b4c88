package font6x8

import (
	"image/color"
	"testing"
)

type pixelRecorder struct {
	set map[[2]int16]bool
}

func (p *pixelRecorder) Size() (int16, int16) { return 64, 128 }
func (p *pixelRecorder) SetPixel(x, y int16, c color.RGBA) {
	p.set[[2]int16{x, y}] = true
}
func (p *pixelRecorder) Display() error { return nil }

func TestGlyphDrawMatchesColumns(t *testing.T) {
	rec := &pixelRecorder{set: map[[2]int16]bool{}}
	Font.GetGlyph('A').Draw(rec, 10, 20+Baseline, color.RGBA{255, 255, 255, 255})

	cols, ok := Columns('A')
	if !ok {
		t.Fatalf("Columns('A'): missing glyph")
	}
	want := 0
	for col, b := range cols {
		for row := 0; row < Height; row++ {
			on := b&(1<<row) != 0
			if on {
				want++
			}
			if rec.set[[2]int16{int16(10 + col), int16(20 + row)}] != on {
				t.Fatalf("pixel col=%d row=%d: got %v want %v", col, row, !on, on)
			}
		}
	}
	if len(rec.set) != want {
		t.Fatalf("drew %d pixels, want %d", len(rec.set), want)
	}
}

func TestSpaceAndNonASCII(t *testing.T) {
	rec := &pixelRecorder{set: map[[2]int16]bool{}}
	Font.GetGlyph(' ').Draw(rec, 0, Baseline, color.RGBA{255, 255, 255, 255})
	Font.GetGlyph('Ж').Draw(rec, 0, Baseline, color.RGBA{255, 255, 255, 255})
	if len(rec.set) != 0 {
		t.Fatalf("expected no pixels, got %d", len(rec.set))
	}
	if info := Font.GetGlyph('x').Info(); info.XAdvance != Width || info.YOffset != -Baseline {
		t.Fatalf("unexpected glyph info %+v", info)
	}
}
