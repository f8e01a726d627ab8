// Package mem provides bulk memory helpers for framebuffer regions.
package mem

// Fill32 sets every element of dst to value. Instead of storing each element
// in a loop, Fill32 sets the first element and then doubles the filled region
// with log2(len(dst)) copy calls.
func Fill32(dst []uint32, value uint32) {
	if len(dst) == 0 {
		return
	}

	dst[0] = value
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}
