package font

var (
	// The list of available fonts.
	availableFonts []*Font
)

// Font describes a bitmap font that can be used by a console device.
type Font struct {
	// The name of the font
	Name string

	// The width of each glyph in pixels.
	GlyphWidth uint32

	// The height of each glyph in pixels.
	GlyphHeight uint32

	// The recommended console resolution for this font.
	RecommendedWidth  uint32
	RecommendedHeight uint32

	// Font priority (lower is better). When auto-detecting a font to use, the font with
	// the lowest priority will be preferred
	Priority uint32

	// The number of bytes describing a row in a glyph.
	BytesPerRow uint32

	// LSBFirst is set when bit 0 of each row byte holds the leftmost pixel.
	// Otherwise the leftmost pixel is stored in bit 7.
	LSBFirst bool

	// The font bitmap. Glyphs are stored in character order starting at
	// character 0; each glyph consists of BytesPerRow * GlyphHeight bytes
	// where each bit indicates whether a pixel should be set to the
	// foreground or the background color.
	Data []byte
}

// Glyph returns the bitmap rows for ch. The second return value is false if
// the font does not contain a glyph for ch.
func (f *Font) Glyph(ch byte) ([]byte, bool) {
	glyphSize := f.BytesPerRow * f.GlyphHeight
	if glyphSize == 0 {
		return nil, false
	}

	offset := uint32(ch) * glyphSize
	if offset+glyphSize > uint32(len(f.Data)) {
		return nil, false
	}

	return f.Data[offset : offset+glyphSize], true
}

// PixelSet reports whether pixel (x, y) of glyph is set. The glyph must have
// been returned by a call to Glyph on the same font.
func (f *Font) PixelSet(glyph []byte, x, y uint32) bool {
	rowData := glyph[y*f.BytesPerRow+(x>>3)]
	if f.LSBFirst {
		return rowData&(1<<(x&7)) != 0
	}

	return rowData&(0x80>>(x&7)) != 0
}

// FindByName looks up a font instance by name. If the font is not found then
// the function returns nil.
func FindByName(name string) *Font {
	for _, f := range availableFonts {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// BestFit returns the best font from the available font list given the
// specified console dimensions. If multiple fonts match the dimension criteria
// then their priority attribute is used to select one.
//
// The algorithm for selecting the best font is the following:
//  For each font:
//    - calculate the sum of abs differences between the font recommended dimension
//      and the console dimensions.
//    - if the font score is lower than the current best font's score then the
//      font becomes the new best font.
//    - if the font score is equal to the current best font's score then the
//      font with the lowest priority becomes the new best font.
func BestFit(consoleWidth, consoleHeight uint32) *Font {
	var (
		best      *Font
		bestDelta uint32
	)

	for _, f := range availableFonts {
		delta := absDiff(f.RecommendedWidth, consoleWidth) + absDiff(f.RecommendedHeight, consoleHeight)

		switch {
		case best == nil,
			delta < bestDelta,
			delta == bestDelta && f.Priority < best.Priority:
			best, bestDelta = f, delta
		}
	}

	return best
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
