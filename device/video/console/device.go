package console

import (
	"io"

	"simplefb/device/video/console/font"
)

// Dimension defines the types of dimensions that can be queried off a device.
type Dimension uint8

const (
	// Characters describes the number of characters in
	// the console depending on the active cell size.
	Characters Dimension = iota

	// Pixels describes the number of pixels in the console framebuffer.
	Pixels
)

// The Device interface is implemented by objects that can function as system
// consoles. Writes are interpreted as a byte stream that may contain ANSI SGR
// escape sequences; every write is also recorded in the console history.
type Device interface {
	io.Writer
	io.ByteWriter

	// Dimensions returns the width and height of the console
	// using a particular dimension.
	Dimensions(Dimension) (uint32, uint32)

	// DefaultColors returns the default foreground and background colors
	// used by this console as 0x00RRGGBB values.
	DefaultColors() (fg, bg uint32)

	// Clear fills the console with the current background color and moves
	// the cursor to the top-left corner.
	Clear()

	// SetFontHeight sets the character cell size in pixels. A value of 0
	// selects the native 8px cell. The caller must invoke Redraw to
	// re-render the history with the new geometry.
	SetFontHeight(uint32)

	// SetFgColor and SetBgColor set the current colors directly,
	// bypassing the ANSI parser.
	SetFgColor(uint32)
	SetBgColor(uint32)

	// HistoryLen returns the number of bytes held in the console history.
	HistoryLen() int

	// Redraw clears the console and replays its history.
	Redraw()
}

// FontSetter is an interface implemented by console devices that
// support loadable bitmap fonts.
//
// SetFont selects a bitmap font to be used by the console.
type FontSetter interface {
	SetFont(*font.Font)
}
