package console

import (
	"image"
	"image/color"
	"unsafe"
)

// Framebuffer describes a linear 32bpp framebuffer region. Each pixel is a
// 0x00RRGGBB value; rows are Width pixels long and stored back to back.
//
// The memory backing Pixels is owned by the caller and must remain valid for
// as long as the framebuffer is in use.
type Framebuffer struct {
	Pixels []uint32

	// Framebuffer dimensions in pixels.
	Width  uint32
	Height uint32
}

// NewFramebuffer allocates a zeroed (black) framebuffer with the requested
// dimensions.
func NewFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{
		Pixels: make([]uint32, int(width)*int(height)),
		Width:  width,
		Height: height,
	}
}

// MapFramebuffer overlays a Framebuffer on top of the memory region that
// starts at addr. The region must be at least width*height*4 bytes long and
// must already be mapped.
func MapFramebuffer(addr uintptr, width, height uint32) *Framebuffer {
	return &Framebuffer{
		Pixels: unsafe.Slice((*uint32)(unsafe.Pointer(addr)), int(width)*int(height)),
		Width:  width,
		Height: height,
	}
}

// pixelCount returns the number of addressable pixels, capped to the length of
// the backing slice.
func (fb *Framebuffer) pixelCount() int {
	count := int(fb.Width) * int(fb.Height)
	if count > len(fb.Pixels) {
		count = len(fb.Pixels)
	}
	return count
}

// Pixel returns the packed color of the pixel at (x, y) or 0 if the
// coordinates are outside the framebuffer.
func (fb *Framebuffer) Pixel(x, y uint32) uint32 {
	if x >= fb.Width || y >= fb.Height {
		return 0
	}

	offset := int(y)*int(fb.Width) + int(x)
	if offset >= len(fb.Pixels) {
		return 0
	}
	return fb.Pixels[offset]
}

// plot writes color to the pixel at (x, y). Coordinates outside the
// framebuffer are silently dropped.
func (fb *Framebuffer) plot(x, y, color uint32) {
	if x >= fb.Width || y >= fb.Height {
		return
	}

	offset := int(y)*int(fb.Width) + int(x)
	if offset >= len(fb.Pixels) {
		return
	}
	fb.Pixels[offset] = color
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(fb.Width), int(fb.Height))
}

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return RGBA(0)
	}
	return RGBA(fb.Pixel(uint32(x), uint32(y)))
}
