package view

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"simplefb/device/video/console"
)

// Font height limits for interactive resizing.
const (
	minFontHeight = 2
	maxFontHeight = 64
)

// Viewer shows a console in a terminal and lets the user change the console
// font height. Every change re-renders the console history.
type Viewer struct {
	screen tcell.Screen
	cons   *console.Locked
	fb     *console.Framebuffer
	logger *log.Logger

	fontHeight uint32
}

// New creates a viewer for cons. The screen must already be initialized.
func New(screen tcell.Screen, cons *console.FbConsole, logger *log.Logger) *Viewer {
	return &Viewer{
		screen:     screen,
		cons:       console.NewLocked(cons),
		fb:         cons.Framebuffer(),
		logger:     logger,
		fontHeight: cons.FontHeight(),
	}
}

// FontHeight returns the current console cell size.
func (v *Viewer) FontHeight() uint32 {
	return v.fontHeight
}

// Run displays the console until the user quits or ctx is done. Chunks
// received from input are written to the console as they arrive.
func (v *Viewer) Run(ctx context.Context, input <-chan []byte) error {
	var (
		events = make(chan tcell.Event)
		done   = make(chan struct{})
	)
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-input:
			if !ok {
				input = nil
				continue
			}

			v.cons.Write(data)
			v.draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return nil
				}
				v.draw()
			}
		}
	}
}

// handleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case '+', '=':
		v.setFontHeight(v.fontHeight + 1)
	case '-':
		if v.fontHeight > minFontHeight {
			v.setFontHeight(v.fontHeight - 1)
		}
	case '0':
		v.setFontHeight(0)
	case 'r':
		v.cons.Redraw()
	}

	return false
}

func (v *Viewer) setFontHeight(height uint32) {
	switch {
	case height == 0:
	case height < minFontHeight:
		height = minFontHeight
	case height > maxFontHeight:
		height = maxFontHeight
	}

	v.cons.Reconfigure(height)
	v.fontHeight = v.cons.FontHeight()

	if v.logger != nil {
		cols, rows := v.cons.Dimensions(console.Characters)
		v.logger.Printf("font height %d: %dx%d characters, %d history bytes replayed", v.fontHeight, cols, rows, v.cons.HistoryLen())
	}
}

func (v *Viewer) draw() {
	Render(v.screen, v.fb)
	v.screen.Show()
}
