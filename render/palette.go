package render

import (
	"fmt"
	"image/color"
)

// Palette is the curve colour cycle, ordered so that neighbours contrast.
var Palette = []color.NRGBA{
	{R: 0xeb, G: 0xae, B: 0x6a, A: 0xff},
	{R: 0xeb, G: 0x6a, B: 0xc0, A: 0xff},
	{R: 0xbd, G: 0xe0, B: 0xa6, A: 0xff},
	{R: 0x8c, G: 0x6a, B: 0xeb, A: 0xff},
	{R: 0x6a, G: 0xeb, B: 0xc0, A: 0xff},
	{R: 0x6a, G: 0xd1, B: 0xeb, A: 0xff},
	{R: 0x6a, G: 0x8c, B: 0xeb, A: 0xff},
	{R: 0x6a, G: 0xeb, B: 0x7b, A: 0xff},
	{R: 0xd1, G: 0x6a, B: 0xeb, A: 0xff},
	{R: 0xdd, G: 0xe0, B: 0xa6, A: 0xff},
}

// ShadedFill paints regions the description does not ask for.
var ShadedFill = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

// colorOf returns the palette entry of the i-th curve.
func colorOf(i int) color.NRGBA { return Palette[i%len(Palette)] }

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
