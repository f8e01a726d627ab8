package logo

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"simplefb/device/video/console"
)

func TestBestFit(t *testing.T) {
	defer func(origList []*Image) {
		availableLogos = origList
	}(availableLogos)

	availableLogos = []*Image{
		{Width: 64, Height: 64},
		{Width: 96, Height: 96},
		{Width: 128, Height: 128},
		{Width: 4096, Height: 200},
	}

	specs := []struct {
		consW, consH uint32
		expIndex     int
	}{
		{320, 200, 0},
		{800, 600, 0},
		{1024, 768, 0},
		{1280, 1024, 1},
		{3000, 3000, 2},
		{2500, 1600, 2},
		{4096, 2000, 3},
	}

	for specIndex, spec := range specs {
		got := BestFit(spec.consW, spec.consH)
		if got == nil {
			t.Errorf("[spec %d] unable to find a logo", specIndex)
			continue
		}

		if got != availableLogos[spec.expIndex] {
			t.Errorf("[spec %d] expected to get logo with height %d; got %d", specIndex, availableLogos[spec.expIndex].Height, got.Height)
		}
	}

	if got := BestFit(32, 32); got != nil {
		t.Errorf("expected no logo to fit a 32px wide console; got %dx%d logo", got.Width, got.Height)
	}
}

func TestOrigin(t *testing.T) {
	specs := []struct {
		align     Alignment
		logoWidth uint32
		consWidth uint32
		exp       uint32
	}{
		{AlignLeft, 10, 100, 0},
		{AlignCenter, 10, 100, 45},
		{AlignRight, 10, 100, 90},
		{AlignCenter, 11, 100, 44},
		{AlignCenter, 100, 100, 0},
		{AlignRight, 200, 100, 0},
	}

	for specIndex, spec := range specs {
		l := &Image{Width: spec.logoWidth, Align: spec.align}
		if got := l.Origin(spec.consWidth); got != spec.exp {
			t.Errorf("[spec %d] expected origin %d; got %d", specIndex, spec.exp, got)
		}
	}
}

func TestFromImage(t *testing.T) {
	t.Run("paletted", func(t *testing.T) {
		img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
			color.RGBA{R: 0xff, A: 0xff},
			color.RGBA{G: 0xff, A: 0xff},
		})
		img.SetColorIndex(1, 0, 1)
		img.SetColorIndex(0, 1, 1)

		l := FromImage(img, AlignRight)

		exp := &Image{
			Width:  2,
			Height: 2,
			Align:  AlignRight,
			Pixels: []uint32{
				0xFF0000, 0x00FF00,
				0x00FF00, 0xFF0000,
			},
		}

		if !reflect.DeepEqual(l, exp) {
			t.Fatalf("expected logo to be:\n%+v\ngot:\n%+v", exp, l)
		}
	})

	t.Run("sub image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		img.SetRGBA(2, 3, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})

		l := FromImage(img.SubImage(image.Rect(2, 2, 4, 4)), AlignLeft)
		if l.Width != 2 || l.Height != 2 {
			t.Fatalf("expected a 2x2 logo; got %dx%d", l.Width, l.Height)
		}

		if got := l.Pixels[2]; got != 0x123456 {
			t.Fatalf("expected pixel (0, 1) to be 0x123456; got 0x%06x", got)
		}
	})
}

func TestColorBars(t *testing.T) {
	if ColorBars.Width != 64 || ColorBars.Height != 16 || len(ColorBars.Pixels) != 64*16 {
		t.Fatalf("unexpected color bar geometry %dx%d (%d pixels)", ColorBars.Width, ColorBars.Height, len(ColorBars.Pixels))
	}

	if got := ColorBars.Pixels[8]; got != 0xCC0000 {
		t.Fatalf("expected second bar to be red; got 0x%06x", got)
	}

	if got := ColorBars.Pixels[len(ColorBars.Pixels)-1]; got != 0xFFFFFF {
		t.Fatalf("expected last bar to be bright white; got 0x%06x", got)
	}
}

func TestDraw(t *testing.T) {
	fb := console.NewFramebuffer(100, 20)
	cons := console.NewFbConsole(fb, 8, nil)

	l := &Image{Width: 2, Height: 1, Align: AlignRight, Pixels: []uint32{0xAAAAAA, 0xBBBBBB}}
	l.Draw(cons)

	if got := fb.Pixel(98, 0); got != 0xAAAAAA {
		t.Fatalf("expected pixel (98, 0) to be 0xaaaaaa; got 0x%06x", got)
	}

	if got := fb.Pixel(99, 0); got != 0xBBBBBB {
		t.Fatalf("expected pixel (99, 0) to be 0xbbbbbb; got 0x%06x", got)
	}
}
