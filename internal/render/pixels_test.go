package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v want %v", buf, want)
	}
}

func TestFillPaletteClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 10, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	want := []byte{0, 0, 0, 255, 10, 0, 0, 255, 10, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v want %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear the buffer, got %v", buf)
	}
}

func TestBandColorCycles(t *testing.T) {
	if BandColor(0) != BandColor(len(bandColors)) {
		t.Fatal("band colours should cycle")
	}
	if BandColor(0) == BandColor(1) {
		t.Fatal("adjacent bands should differ")
	}
}
