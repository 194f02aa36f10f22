package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := toRGBA(on)
	offRGBA := toRGBA(off)
	for i, c := range cells {
		col := offRGBA
		if c != 0 {
			col = onRGBA
		}
		putRGBA(buf[i*4:], col)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry; an empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		putRGBA(buf[i*4:], palette[min(int(c), last)])
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
}

// BandColor returns the tint used for partition i in the overlay.
func BandColor(i int) color.RGBA {
	return bandColors[i%len(bandColors)]
}

var bandColors = []color.RGBA{
	{R: 230, G: 80, B: 80, A: 70},
	{R: 80, G: 200, B: 110, A: 70},
	{R: 90, G: 130, B: 240, A: 70},
	{R: 230, G: 200, B: 70, A: 70},
	{R: 190, G: 90, B: 220, A: 70},
	{R: 70, G: 210, B: 210, A: 70},
}
