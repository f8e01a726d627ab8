package console

// DrawPicture copies a width*height block of packed 0x00RRGGBB pixels, stored
// row by row, to fb with its top-left corner at (x, y). Pixels that fall
// outside the framebuffer are clipped. If pixels holds fewer than
// width*height entries the call is a no-op.
func DrawPicture(fb *Framebuffer, x, y, width, height uint32, pixels []uint32) {
	if uint64(len(pixels)) < uint64(width)*uint64(height) {
		return
	}

	for row := uint32(0); row < height; row++ {
		screenY := y + row
		if screenY >= fb.Height || screenY < y {
			break
		}

		rowData := pixels[row*width : (row+1)*width]
		for col, rgb := range rowData {
			screenX := x + uint32(col)
			if screenX >= fb.Width || screenX < x {
				break
			}

			fb.plot(screenX, screenY, rgb)
		}
	}
}
