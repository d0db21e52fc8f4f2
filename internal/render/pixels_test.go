package render

import (
	"image/color"
	"testing"

	"growfield/internal/field"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 10, G: 20, B: 30, A: 40},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 4, 10, 20, 30, 40, 10, 20, 30, 40}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected cleared buffer, byte %d = %d", i, b)
		}
	}
}

func TestGlyphs(t *testing.T) {
	want := map[field.Kind]string{
		field.KindNone:  " ",
		field.KindHeart: "H",
		field.KindVein:  "v",
		field.KindZyg:   "z",
	}
	for kind, glyph := range want {
		if got := Glyph(kind); got != glyph {
			t.Fatalf("Glyph(%v) = %q, want %q", kind, got, glyph)
		}
	}
}
