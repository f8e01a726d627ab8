package console

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"simplefb/kernel/kfmt"
)

func TestLockedConcurrentWrites(t *testing.T) {
	var (
		cons    = NewFbConsole(NewFramebuffer(64, 64), 8, kfmt.NewRingBuffer(4096))
		locked  = NewLocked(cons)
		writers = 8
		chunk   = 16
		wg      sync.WaitGroup
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			data := bytes.Repeat([]byte{byte('a' + id)}, chunk)
			for j := 0; j < 10; j++ {
				locked.Write(data)
			}
		}(i)
	}
	wg.Wait()

	if exp, got := writers*chunk*10, locked.HistoryLen(); got != exp {
		t.Fatalf("expected history to contain %d bytes; got %d", exp, got)
	}

	// Every chunk must appear contiguously in the history.
	var buf bytes.Buffer
	cons.History().WriteTo(&buf)
	history := buf.String()
	for offset := 0; offset < len(history); offset += chunk {
		block := history[offset : offset+chunk]
		if block != strings.Repeat(block[:1], chunk) {
			t.Fatalf("expected writes to be serialized; found interleaved block %q at offset %d", block, offset)
		}
	}
}

func TestLockedReconfigure(t *testing.T) {
	input := []byte("\x1b[35mlocked\x1b[0m console\n")

	cons := NewFbConsole(NewFramebuffer(128, 64), 8, kfmt.NewRingBuffer(128))
	var dev Device = NewLocked(cons)
	dev.Write(input)

	dev.(*Locked).Reconfigure(16)

	if w, h := dev.Dimensions(Characters); w != 8 || h != 4 {
		t.Fatalf("expected console character dimensions to be 8x4; got %dx%d", w, h)
	}

	expCons := NewFbConsole(NewFramebuffer(128, 64), 16, nil)
	expCons.Write(input)

	if exp, got := snapshot(expCons), snapshot(cons); exp.diff(got) != "no difference" {
		t.Fatalf("expected reconfigured console to match a fresh console; %s", exp.diff(got))
	}
}

func TestLockedDelegates(t *testing.T) {
	cons := NewFbConsole(NewFramebuffer(32, 32), 8, kfmt.NewRingBuffer(16))
	locked := NewLocked(cons)

	locked.WriteByte('x')
	locked.SetFgColor(0x111111)
	locked.SetBgColor(0x222222)
	if fg, bg := cons.Colors(); fg != 0x111111 || bg != 0x222222 {
		t.Fatalf("expected colors to be forwarded; got fg:0x%06x, bg:0x%06x", fg, bg)
	}

	if fg, bg := locked.DefaultColors(); fg != DefaultFg || bg != DefaultBg {
		t.Fatalf("unexpected default colors fg:0x%06x, bg:0x%06x", fg, bg)
	}

	locked.Clear()
	if got := cons.Framebuffer().Pixel(0, 0); got != 0x222222 {
		t.Fatalf("expected Clear to use the current background; got 0x%06x", got)
	}

	locked.SetFontHeight(16)
	if got := locked.FontHeight(); got != 16 {
		t.Fatalf("expected cell size 16; got %d", got)
	}
	if w, h := locked.Dimensions(Characters); w != 2 || h != 2 {
		t.Fatalf("expected console character dimensions to be 2x2; got %dx%d", w, h)
	}

	locked.DrawPicture(0, 0, 1, 1, []uint32{0x333333})
	if got := cons.Framebuffer().Pixel(0, 0); got != 0x333333 {
		t.Fatalf("expected picture pixel to be drawn; got 0x%06x", got)
	}

	locked.Redraw()
	if got := locked.HistoryLen(); got != 1 {
		t.Fatalf("expected history length 1; got %d", got)
	}
}
