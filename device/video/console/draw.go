package console

import "simplefb/kernel/mem"

// drawChar renders ch into a cellSize*cellSize block whose top-left corner is
// at pixel (x, y). Each target pixel (dx, dy) samples the glyph pixel
// (dx*glyphWidth/cellSize, dy*glyphHeight/cellSize). Characters without a
// glyph are rendered using the glyph for '?'. Only the part of the cell that
// overlaps the framebuffer is visited.
func (cons *FbConsole) drawChar(ch byte, x, y, fg, bg uint32) {
	if x >= cons.fb.Width || y >= cons.fb.Height {
		return
	}

	glyph, ok := cons.font.Glyph(ch)
	if !ok {
		if glyph, ok = cons.font.Glyph('?'); !ok {
			return
		}
	}

	var (
		size        = cons.cellSize
		glyphWidth  = cons.font.GlyphWidth
		glyphHeight = cons.font.GlyphHeight
		color       uint32
	)

	visibleW := min(size, cons.fb.Width-x)
	visibleH := min(size, cons.fb.Height-y)

	for dy := uint32(0); dy < visibleH; dy++ {
		srcY := uint32(uint64(dy) * uint64(glyphHeight) / uint64(size))
		for dx := uint32(0); dx < visibleW; dx++ {
			if cons.font.PixelSet(glyph, uint32(uint64(dx)*uint64(glyphWidth)/uint64(size)), srcY) {
				color = fg
			} else {
				color = bg
			}

			cons.fb.plot(x+dx, y+dy, color)
		}
	}
}

// scrollUp moves the framebuffer contents up by one cell row and fills the
// exposed rows at the bottom with the current background color.
func (cons *FbConsole) scrollUp() {
	var (
		pixels    = cons.fb.Pixels[:cons.fb.pixelCount()]
		rowPixels = int(cons.cellSize) * int(cons.fb.Width)
	)

	if rowPixels >= len(pixels) {
		mem.Fill32(pixels, cons.bg)
		return
	}

	keep := len(pixels) - rowPixels
	copy(pixels[:keep], pixels[rowPixels:])
	mem.Fill32(pixels[keep:], cons.bg)
}
