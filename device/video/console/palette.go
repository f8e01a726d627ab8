package console

import "image/color"

const (
	// DefaultFg is the default foreground color (white).
	DefaultFg uint32 = 0xFFFFFF

	// DefaultBg is the default background color (black).
	DefaultBg uint32 = 0x000000
)

// ansiPalette contains the standard low (0-7) and high (8-15) intensity ANSI
// colors.
var ansiPalette = [16]uint32{
	0x000000, // black
	0xCC0000, // red
	0x00CC00, // green
	0xCCCC00, // yellow
	0x0000CC, // blue
	0xCC00CC, // magenta
	0x00CCCC, // cyan
	0xCCCCCC, // white
	0x666666, // bright black
	0xFF0000, // bright red
	0x00FF00, // bright green
	0xFFFF00, // bright yellow
	0x0000FF, // bright blue
	0xFF00FF, // bright magenta
	0x00FFFF, // bright cyan
	0xFFFFFF, // bright white
}

// SGRColor maps an SGR color parameter to its RGB value. Codes 30-37 and 40-47
// select the low intensity colors, codes 90-97 and 100-107 the high intensity
// ones. The second return value is false for any other code.
func SGRColor(code uint8) (uint32, bool) {
	switch {
	case code >= 30 && code <= 37:
		return ansiPalette[code-30], true
	case code >= 40 && code <= 47:
		return ansiPalette[code-40], true
	case code >= 90 && code <= 97:
		return ansiPalette[code-90+8], true
	case code >= 100 && code <= 107:
		return ansiPalette[code-100+8], true
	default:
		return 0, false
	}
}

// isForegroundSGR returns true if code selects a foreground color.
func isForegroundSGR(code uint8) bool {
	return (code >= 30 && code <= 37) || (code >= 90 && code <= 97)
}

// Palette returns the 16 ANSI colors used by the SGR color codes.
func Palette() color.Palette {
	pal := make(color.Palette, len(ansiPalette))
	for index, rgb := range ansiPalette {
		pal[index] = RGBA(rgb)
	}
	return pal
}

// RGBA converts a packed 0x00RRGGBB value to an opaque color.RGBA.
func RGBA(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// Pack converts c to a packed 0x00RRGGBB value. Alpha is discarded.
func Pack(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}
