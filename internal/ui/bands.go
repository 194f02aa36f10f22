package ui

import (
	"image"

	"gridpar/internal/engine"
)

// PartitionProvider is implemented by sims that can report the row split of
// their current execution mode.
type PartitionProvider interface {
	Partitions() []engine.Partition
}

// band is one non-empty partition in screen pixels.
type band struct {
	index int
	rect  image.Rectangle
}

// partitionBands maps parts onto a width-column grid drawn at scale. Empty
// partitions own no rows and produce no band.
func partitionBands(parts []engine.Partition, width, scale int) []band {
	scale = max(scale, 1)
	out := make([]band, 0, len(parts))
	for i, p := range parts {
		if p.Empty() {
			continue
		}
		out = append(out, band{index: i, rect: image.Rect(0, p.Start*scale, width*scale, p.End*scale)})
	}
	return out
}
