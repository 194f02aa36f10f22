package ui

import (
	"image"
	"testing"

	"gridpar/internal/engine"
)

func TestPartitionBandsSkipEmpty(t *testing.T) {
	parts, err := engine.Partitions(3, 5)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	bands := partitionBands(parts, 4, 2)
	if len(bands) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(bands))
	}
	covered := 0
	for _, b := range bands {
		if b.rect.Dx() != 8 {
			t.Fatalf("band %d width %d", b.index, b.rect.Dx())
		}
		covered += b.rect.Dy()
	}
	if covered != 6 {
		t.Fatalf("bands cover %d pixels, want 6", covered)
	}
}

func TestPartitionBandsScale(t *testing.T) {
	parts := []engine.Partition{{Start: 0, End: 2}, {Start: 2, End: 5}}
	bands := partitionBands(parts, 3, 0)
	want := image.Rect(0, 2, 3, 5)
	if bands[1].rect != want || bands[1].index != 1 {
		t.Fatalf("unexpected band %+v", bands[1])
	}
}
