package logo

import "simplefb/device/video/console"

// ColorBars is a built-in logo showing the 16 color console palette as two
// rows of bars.
var ColorBars = newColorBars(8, 8)

func newColorBars(barWidth, barHeight uint32) Image {
	palette := console.Palette()
	l := Image{
		Width:  barWidth * 8,
		Height: barHeight * 2,
		Align:  AlignCenter,
	}

	l.Pixels = make([]uint32, l.Width*l.Height)
	for y := uint32(0); y < l.Height; y++ {
		bank := (y / barHeight) * 8
		for x := uint32(0); x < l.Width; x++ {
			l.Pixels[y*l.Width+x] = console.Pack(palette[bank+x/barWidth])
		}
	}

	return l
}

func init() {
	Register(&ColorBars)
}
