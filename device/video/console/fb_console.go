package console

import (
	"fmt"
	"io"

	"simplefb/device/video/console/font"
	"simplefb/kernel"
	"simplefb/kernel/kfmt"
	"simplefb/kernel/mem"
)

// baseCellSize is the native size of the built-in font glyphs. It is used
// when a zero font height is requested.
const baseCellSize = 8

var errFramebufferTooSmall = &kernel.Error{Module: "simplefb_console", Message: "framebuffer memory is smaller than width*height pixels"}

// FbConsole implements a text console on top of a linear 32bpp RGB
// framebuffer. Glyphs are rendered into square cells of an arbitrary size by
// nearest-neighbor sampling of the active font. Every byte written to the
// console is recorded in a history ring buffer so that the screen can be
// re-rendered via Redraw after the cell size changes.
//
// FbConsole performs no locking; see Locked for a serialized wrapper.
type FbConsole struct {
	fb   *Framebuffer
	font *font.Font

	// The square cell size in pixels.
	cellSize uint32

	// Console dimensions in characters
	widthInChars  uint32
	heightInChars uint32

	cursorX uint32
	cursorY uint32

	fg, bg               uint32
	defaultFg, defaultBg uint32

	history *kfmt.RingBuffer
	parser  ansiParser
}

// NewFbConsole creates a console that renders to fb using cells that are
// fontHeight pixels tall and wide. A fontHeight of 0 selects the native 8px
// cell. All written bytes are recorded in history; a nil history disables
// recording.
func NewFbConsole(fb *Framebuffer, fontHeight uint32, history *kfmt.RingBuffer) *FbConsole {
	if history == nil {
		history = kfmt.NewRingBuffer(0)
	}

	cons := &FbConsole{
		fb:        fb,
		font:      &font.Font8x8Basic,
		fg:        DefaultFg,
		bg:        DefaultBg,
		defaultFg: DefaultFg,
		defaultBg: DefaultBg,
		history:   history,
	}
	cons.setCellSize(fontHeight)

	return cons
}

// SetFont selects the bitmap font used for rendering glyphs. Glyphs are
// rescaled to the current cell size regardless of their native dimensions.
func (cons *FbConsole) SetFont(f *font.Font) {
	if f == nil {
		return
	}

	cons.font = f
}

// SetFontHeight sets the cell size and recomputes the console dimensions,
// clamping the cursor to the new grid. It does not redraw the screen.
func (cons *FbConsole) SetFontHeight(height uint32) {
	cons.setCellSize(height)

	if cons.cursorX >= cons.widthInChars {
		cons.cursorX = lastIndex(cons.widthInChars)
	}

	if cons.cursorY >= cons.heightInChars {
		cons.cursorY = lastIndex(cons.heightInChars)
	}
}

func (cons *FbConsole) setCellSize(size uint32) {
	if size == 0 {
		size = baseCellSize
	}

	cons.cellSize = size
	cons.widthInChars = cons.fb.Width / size
	cons.heightInChars = cons.fb.Height / size
}

// FontHeight returns the active cell size in pixels.
func (cons *FbConsole) FontHeight() uint32 {
	return cons.cellSize
}

// Dimensions returns the console width and height in the specified dimension.
func (cons *FbConsole) Dimensions(dim Dimension) (uint32, uint32) {
	switch dim {
	case Characters:
		return cons.widthInChars, cons.heightInChars
	default:
		return cons.fb.Width, cons.fb.Height
	}
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (cons *FbConsole) DefaultColors() (fg uint32, bg uint32) {
	return cons.defaultFg, cons.defaultBg
}

// SetDefaultColors updates the colors restored by SGR reset codes and by
// Redraw. The current colors are reset to the new defaults.
func (cons *FbConsole) SetDefaultColors(fg, bg uint32) {
	cons.defaultFg, cons.defaultBg = fg, bg
	cons.fg, cons.bg = fg, bg
}

// Colors returns the current foreground and background colors.
func (cons *FbConsole) Colors() (fg uint32, bg uint32) {
	return cons.fg, cons.bg
}

// SetFgColor sets the current foreground color.
func (cons *FbConsole) SetFgColor(rgb uint32) {
	cons.fg = rgb
}

// SetBgColor sets the current background color.
func (cons *FbConsole) SetBgColor(rgb uint32) {
	cons.bg = rgb
}

// CursorPosition returns the current 0-based cursor column and row.
func (cons *FbConsole) CursorPosition() (uint32, uint32) {
	return cons.cursorX, cons.cursorY
}

// Framebuffer returns the framebuffer that the console renders to.
func (cons *FbConsole) Framebuffer() *Framebuffer {
	return cons.fb
}

// HistoryLen returns the number of bytes held in the console history.
func (cons *FbConsole) HistoryLen() int {
	return cons.history.Len()
}

// History returns the ring buffer that records console writes.
func (cons *FbConsole) History() *kfmt.RingBuffer {
	return cons.history
}

// Write implements io.Writer. It never fails.
func (cons *FbConsole) Write(p []byte) (int, error) {
	for _, b := range p {
		cons.WriteByte(b)
	}

	return len(p), nil
}

// WriteByte implements io.ByteWriter. The byte is recorded in the history and
// then interpreted. It never fails.
func (cons *FbConsole) WriteByte(b byte) error {
	cons.history.Push(b)
	cons.interpret(b)
	return nil
}

// Clear fills the framebuffer with the current background color and moves the
// cursor to the top-left corner. Colors and history are not affected.
func (cons *FbConsole) Clear() {
	mem.Fill32(cons.fb.Pixels[:cons.fb.pixelCount()], cons.bg)
	cons.cursorX, cons.cursorY = 0, 0
}

// Redraw resets the cursor, colors and parser state, clears the framebuffer
// and replays the history through the same interpreter as the live write
// path. The replayed bytes are not recorded again.
func (cons *FbConsole) Redraw() {
	cons.fg, cons.bg = cons.defaultFg, cons.defaultBg
	cons.parser.reset()
	cons.Clear()

	for b := range cons.history.All() {
		cons.interpret(b)
	}
}

// DrawPicture copies a width*height block of packed pixels to the framebuffer
// at (x, y). It does not affect the text state.
func (cons *FbConsole) DrawPicture(x, y, width, height uint32, pixels []uint32) {
	DrawPicture(cons.fb, x, y, width, height, pixels)
}

// emit draws ch at the cursor position and advances the cursor, wrapping to a
// new line first if the cursor is past the last column.
func (cons *FbConsole) emit(ch byte) {
	if cons.cursorX >= cons.widthInChars {
		cons.lf()
	}

	cons.drawChar(ch, cons.cursorX*cons.cellSize, cons.cursorY*cons.cellSize, cons.fg, cons.bg)
	cons.cursorX++
}

// lf moves the cursor to the beginning of the next line, scrolling the
// framebuffer contents up if the cursor moves past the last line.
func (cons *FbConsole) lf() {
	cons.cursorX = 0
	cons.cursorY++

	if cons.cursorY >= cons.heightInChars {
		cons.scrollUp()
		cons.cursorY = lastIndex(cons.heightInChars)
	}
}

// DriverName returns the name of this driver.
func (cons *FbConsole) DriverName() string {
	return "simplefb_console"
}

// DriverVersion returns the version of this driver.
func (cons *FbConsole) DriverVersion() (uint16, uint16, uint16) {
	return 0, 0, 1
}

// DriverInit initializes this driver.
func (cons *FbConsole) DriverInit(w io.Writer) *kernel.Error {
	if len(cons.fb.Pixels) < int(cons.fb.Width)*int(cons.fb.Height) {
		return errFramebufferTooSmall
	}

	cons.Clear()

	fmt.Fprintf(w, "framebuffer %dx%d, %dx%d characters using %dpx cells\n",
		cons.fb.Width, cons.fb.Height, cons.widthInChars, cons.heightInChars, cons.cellSize,
	)

	return nil
}

// lastIndex returns the last valid index for a dimension of size n or 0 for
// an empty dimension.
func lastIndex(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return n - 1
}
