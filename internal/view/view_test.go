package view

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"simplefb/device/video/console"
	"simplefb/kernel/kfmt"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeScreen struct {
	cols, rows int
	cells      map[[2]int]cell
}

func newFakeScreen(cols, rows int) *fakeScreen {
	return &fakeScreen{cols: cols, rows: rows, cells: make(map[[2]int]cell)}
}

func (s *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func (s *fakeScreen) Size() (int, int) {
	return s.cols, s.rows
}

func halfBlock(top, bottom tcell.Color) cell {
	return cell{r: upperHalfBlock, style: tcell.StyleDefault.Foreground(top).Background(bottom)}
}

func TestScale(t *testing.T) {
	specs := []struct {
		fbW, fbH   uint32
		cols, rows int
		exp        uint32
	}{
		{4, 4, 4, 2, 1},
		{4, 4, 80, 24, 1},
		{640, 480, 80, 24, 10},
		{640, 480, 320, 240, 2},
		{1024, 16, 80, 24, 13},
		{64, 64, 0, 0, 1},
	}

	for specIndex, spec := range specs {
		fb := console.NewFramebuffer(spec.fbW, spec.fbH)
		if got := Scale(fb, spec.cols, spec.rows); got != spec.exp {
			t.Errorf("[spec %d] expected scale %d; got %d", specIndex, spec.exp, got)
		}
	}
}

func TestRender(t *testing.T) {
	fb := console.NewFramebuffer(2, 3)
	copy(fb.Pixels, []uint32{
		0xFF0000, 0x00FF00,
		0x0000FF, 0xFFFFFF,
		0x123456, 0x654321,
	})

	screen := newFakeScreen(3, 3)
	Render(screen, fb)

	exp := map[[2]int]cell{
		{0, 0}: halfBlock(tcell.NewHexColor(0xFF0000), tcell.NewHexColor(0x0000FF)),
		{1, 0}: halfBlock(tcell.NewHexColor(0x00FF00), tcell.NewHexColor(0xFFFFFF)),
		{0, 1}: halfBlock(tcell.NewHexColor(0x123456), tcell.ColorDefault),
		{1, 1}: halfBlock(tcell.NewHexColor(0x654321), tcell.ColorDefault),
		{2, 0}: {r: ' ', style: tcell.StyleDefault},
		{2, 1}: {r: ' ', style: tcell.StyleDefault},
		{0, 2}: {r: ' ', style: tcell.StyleDefault},
		{1, 2}: {r: ' ', style: tcell.StyleDefault},
		{2, 2}: {r: ' ', style: tcell.StyleDefault},
	}

	for pos, expCell := range exp {
		if got := screen.cells[pos]; got != expCell {
			t.Errorf("expected cell %v to be %+v; got %+v", pos, expCell, got)
		}
	}
}

func TestRenderDownscaled(t *testing.T) {
	fb := console.NewFramebuffer(8, 8)
	fb.Pixels[4*8+4] = 0xABCDEF

	// 8x8 pixels in a 2x1 terminal: 4 pixels per column.
	screen := newFakeScreen(2, 1)
	Render(screen, fb)

	if exp, got := halfBlock(tcell.NewHexColor(0), tcell.NewHexColor(0xABCDEF)), screen.cells[[2]int{1, 0}]; got != exp {
		t.Fatalf("expected cell (1, 0) to be %+v; got %+v", exp, got)
	}
}

func newTestViewer(t *testing.T) (*Viewer, *console.FbConsole, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	cons := console.NewFbConsole(console.NewFramebuffer(80, 40), 8, kfmt.NewRingBuffer(256))
	return New(screen, cons, nil), cons, screen
}

func TestViewerHandleKey(t *testing.T) {
	v, cons, _ := newTestViewer(t)
	cons.Write([]byte("hello"))

	specs := []struct {
		key       tcell.Key
		r         rune
		expQuit   bool
		expHeight uint32
	}{
		{tcell.KeyRune, '+', false, 9},
		{tcell.KeyRune, '=', false, 10},
		{tcell.KeyRune, '-', false, 9},
		{tcell.KeyRune, '0', false, 8},
		{tcell.KeyRune, 'r', false, 8},
		{tcell.KeyRune, 'x', false, 8},
		{tcell.KeyUp, 0, false, 8},
		{tcell.KeyRune, 'q', true, 8},
		{tcell.KeyEscape, 0, true, 8},
		{tcell.KeyCtrlC, 0, true, 8},
	}

	for specIndex, spec := range specs {
		quit := v.handleKey(tcell.NewEventKey(spec.key, spec.r, tcell.ModNone))
		if quit != spec.expQuit {
			t.Errorf("[spec %d] expected quit to be %t; got %t", specIndex, spec.expQuit, quit)
		}

		if got := v.FontHeight(); got != spec.expHeight {
			t.Errorf("[spec %d] expected font height %d; got %d", specIndex, spec.expHeight, got)
		}

		if got := cons.FontHeight(); got != spec.expHeight {
			t.Errorf("[spec %d] expected console cell size %d; got %d", specIndex, spec.expHeight, got)
		}
	}
}

func TestViewerFontHeightLimits(t *testing.T) {
	v, cons, _ := newTestViewer(t)

	for i := 0; i < 10; i++ {
		v.handleKey(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	}
	if got := cons.FontHeight(); got != minFontHeight {
		t.Fatalf("expected font height to stop at %d; got %d", minFontHeight, got)
	}

	for i := 0; i < 100; i++ {
		v.handleKey(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	}
	if got := cons.FontHeight(); got != maxFontHeight {
		t.Fatalf("expected font height to stop at %d; got %d", maxFontHeight, got)
	}
}

func TestViewerMinusBelowMinimum(t *testing.T) {
	for _, height := range []uint32{1, minFontHeight} {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			t.Fatal(err)
		}
		screen.SetSize(40, 20)

		cons := console.NewFbConsole(console.NewFramebuffer(80, 40), height, nil)
		v := New(screen, cons, nil)
		v.handleKey(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
		screen.Fini()

		if got := cons.FontHeight(); got != height {
			t.Errorf("expected '-' to keep a %dpx cell; got %dpx", height, got)
		}

		if got := v.FontHeight(); got != height {
			t.Errorf("expected viewer font height %d; got %d", height, got)
		}
	}
}

func TestViewerRun(t *testing.T) {
	t.Run("input and cancel", func(t *testing.T) {
		v, cons, _ := newTestViewer(t)

		ctx, cancel := context.WithCancel(context.Background())
		input := make(chan []byte)
		errCh := make(chan error, 1)
		go func() { errCh <- v.Run(ctx, input) }()

		input <- []byte("\x1b[32mgreen")
		close(input)
		cancel()

		select {
		case err := <-errCh:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for Run to return")
		}

		if got := cons.HistoryLen(); got != len("\x1b[32mgreen") {
			t.Fatalf("expected input to be written to the console; history has %d bytes", got)
		}
	})

	t.Run("quit key", func(t *testing.T) {
		v, _, screen := newTestViewer(t)

		errCh := make(chan error, 1)
		go func() { errCh <- v.Run(context.Background(), nil) }()

		screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

		select {
		case err := <-errCh:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for Run to return")
		}
	})
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte("skip:abc"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan []byte, 16)
	errCh := make(chan error, 1)
	go func() { errCh <- Follow(ctx, path, 5, out) }()

	expectChunk := func(exp string) {
		t.Helper()

		var got []byte
		deadline := time.After(5 * time.Second)
		for len(got) < len(exp) {
			select {
			case chunk := <-out:
				got = append(got, chunk...)
			case <-deadline:
				t.Fatalf("timed out waiting for %q; got %q", exp, got)
			}
		}

		if string(got) != exp {
			t.Fatalf("expected %q; got %q", exp, got)
		}
	}

	expectChunk("abc")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte("def\n"))
	f.Close()

	expectChunk("def\n")

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Follow to return")
	}
}

func TestFollowMissingFile(t *testing.T) {
	err := Follow(context.Background(), filepath.Join(t.TempDir(), "missing"), 0, make(chan []byte))
	if err == nil {
		t.Fatal("expected an error when following a missing file")
	}
}
