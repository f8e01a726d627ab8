package console

import "simplefb/kernel/sync"

// Locked serializes access to an FbConsole using a spinlock. It is meant for
// callers that write to the console from more than one execution context;
// the console itself performs no locking.
type Locked struct {
	lock sync.Spinlock
	cons *FbConsole
}

// NewLocked wraps cons.
func NewLocked(cons *FbConsole) *Locked {
	return &Locked{cons: cons}
}

// Write implements io.Writer. The whole slice is written while holding the
// lock so that output from concurrent writers is not interleaved.
func (l *Locked) Write(p []byte) (int, error) {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.Write(p)
}

// WriteByte implements io.ByteWriter.
func (l *Locked) WriteByte(b byte) error {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.WriteByte(b)
}

// Dimensions returns the console width and height in the specified dimension.
func (l *Locked) Dimensions(dim Dimension) (uint32, uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.Dimensions(dim)
}

// DefaultColors returns the default foreground and background colors.
func (l *Locked) DefaultColors() (uint32, uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.DefaultColors()
}

// Clear clears the wrapped console.
func (l *Locked) Clear() {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.Clear()
}

// SetFontHeight sets the cell size of the wrapped console.
func (l *Locked) SetFontHeight(height uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.SetFontHeight(height)
}

// SetFgColor sets the current foreground color.
func (l *Locked) SetFgColor(rgb uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.SetFgColor(rgb)
}

// SetBgColor sets the current background color.
func (l *Locked) SetBgColor(rgb uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.SetBgColor(rgb)
}

// HistoryLen returns the number of bytes held in the console history.
func (l *Locked) HistoryLen() int {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.HistoryLen()
}

// Redraw replays the console history.
func (l *Locked) Redraw() {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.Redraw()
}

// Reconfigure sets the cell size and replays the history in a single critical
// section.
func (l *Locked) Reconfigure(fontHeight uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.SetFontHeight(fontHeight)
	l.cons.Redraw()
}

// DrawPicture blits pixels to the wrapped console's framebuffer.
func (l *Locked) DrawPicture(x, y, width, height uint32, pixels []uint32) {
	l.lock.Acquire()
	defer l.lock.Release()
	l.cons.DrawPicture(x, y, width, height, pixels)
}

// FontHeight returns the active cell size of the wrapped console.
func (l *Locked) FontHeight() uint32 {
	l.lock.Acquire()
	defer l.lock.Release()
	return l.cons.FontHeight()
}
