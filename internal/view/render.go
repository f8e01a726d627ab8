// Package view previews a console framebuffer inside a terminal. Every
// terminal cell shows two vertically stacked framebuffer pixels using the
// upper half block glyph: the foreground color paints the top pixel and the
// background color paints the bottom one.
package view

import (
	"github.com/gdamore/tcell/v2"

	"simplefb/device/video/console"
)

const upperHalfBlock = '▀'

// CellSetter is the subset of tcell.Screen used for rendering.
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Scale returns the number of framebuffer pixels per terminal column needed to
// fit fb into a cols*rows terminal while keeping the aspect ratio. The result
// is at least 1.
func Scale(fb *console.Framebuffer, cols, rows int) uint32 {
	if cols <= 0 || rows <= 0 {
		return 1
	}

	step := ceilDiv(fb.Width, uint32(cols))
	if s := ceilDiv(fb.Height, uint32(rows)*2); s > step {
		step = s
	}

	if step == 0 {
		return 1
	}
	return step
}

// Render samples fb into dst. Cells outside the scaled framebuffer are
// cleared.
func Render(dst CellSetter, fb *console.Framebuffer) {
	cols, rows := dst.Size()
	step := Scale(fb, cols, rows)

	for cy := 0; cy < rows; cy++ {
		topY := uint32(cy) * 2 * step
		bottomY := topY + step

		for cx := 0; cx < cols; cx++ {
			x := uint32(cx) * step
			if x >= fb.Width || topY >= fb.Height {
				dst.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}

			bottom := tcell.ColorDefault
			if bottomY < fb.Height {
				bottom = rgbColor(fb.Pixel(x, bottomY))
			}

			style := tcell.StyleDefault.Foreground(rgbColor(fb.Pixel(x, topY))).Background(bottom)
			dst.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
}

func rgbColor(rgb uint32) tcell.Color {
	return tcell.NewHexColor(int32(rgb & 0xFFFFFF))
}

func ceilDiv(a, b uint32) uint32 {
	return (a + b - 1) / b
}
