// Package logo contains pictures that can be drawn on a framebuffer console.
package logo

import (
	"image"
	"image/draw"

	"simplefb/device/video/console"
)

var (
	// The list of available logos.
	availableLogos []*Image
)

// Alignment defines the supported horizontal alignments for a console logo.
type Alignment uint8

const (
	// AlignLeft aligns the logo to the left side of the console.
	AlignLeft Alignment = iota

	// AlignCenter aligns the logo to the center of the console.
	AlignCenter

	// AlignRight aligns the logo to the right side of the console.
	AlignRight
)

// Image describes a picture made of packed 0x00RRGGBB pixels.
type Image struct {
	// The width and height of the logo in pixels.
	Width  uint32
	Height uint32

	// Align specifies the horizontal alignment for the logo.
	Align Alignment

	// Pixels holds Width*Height entries stored row by row.
	Pixels []uint32
}

// FromImage converts img into a logo with the requested alignment. Alpha
// information is discarded.
func FromImage(img image.Image, align Alignment) *Image {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = rgba.Bounds()
	}

	l := &Image{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Align:  align,
		Pixels: make([]uint32, 0, bounds.Dx()*bounds.Dy()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			l.Pixels = append(l.Pixels, console.Pack(rgba.RGBAAt(x, y)))
		}
	}

	return l
}

// Origin returns the x coordinate of the logo's left edge when drawn on a
// console that is consoleWidth pixels wide. Logos wider than the console are
// always drawn from the left edge.
func (l *Image) Origin(consoleWidth uint32) uint32 {
	if l.Width >= consoleWidth {
		return 0
	}

	switch l.Align {
	case AlignCenter:
		return (consoleWidth - l.Width) / 2
	case AlignRight:
		return consoleWidth - l.Width
	default:
		return 0
	}
}

// Draw blits the logo to the top of the console.
func (l *Image) Draw(cons *console.FbConsole) {
	consW, _ := cons.Dimensions(console.Pixels)
	cons.DrawPicture(l.Origin(consW), 0, l.Width, l.Height, l.Pixels)
}

// Register adds l to the list of logos considered by BestFit.
func Register(l *Image) {
	if l == nil {
		return
	}

	availableLogos = append(availableLogos, l)
}

// BestFit returns the best logo from the available logo list given the
// specified console dimensions. The logo whose height is closest to a tenth
// of the console height wins.
func BestFit(consoleWidth, consoleHeight uint32) *Image {
	var (
		best                *Image
		bestDelta, absDelta uint32
		threshold           = consoleHeight / 10
	)

	for _, l := range availableLogos {
		if l.Width > consoleWidth {
			continue
		}

		if l.Height > threshold {
			absDelta = l.Height - threshold
		} else {
			absDelta = threshold - l.Height
		}

		if best == nil || absDelta < bestDelta {
			best = l
			bestDelta = absDelta
		}
	}

	return best
}
