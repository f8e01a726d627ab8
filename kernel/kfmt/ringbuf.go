// Package kfmt implements the byte stream plumbing used by the console: a
// fixed-capacity history ring buffer and a line-prefixing writer for driver
// log output.
package kfmt

import (
	"io"
	"iter"
)

// RingBuffer is a fixed-capacity circular byte store. When the buffer is full
// each push discards the oldest buffered byte. A RingBuffer with zero
// capacity silently drops everything pushed to it.
//
// RingBuffer has no knowledge of the data it stores and performs no locking.
type RingBuffer struct {
	buffer         []byte
	rIndex, wIndex int
	count          int
}

// NewRingBuffer returns a RingBuffer that can hold up to capacity bytes. A
// negative capacity is treated as zero.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 0 {
		capacity = 0
	}

	return &RingBuffer{buffer: make([]byte, capacity)}
}

// Push appends b to the buffer, evicting the oldest byte if the buffer is
// full.
func (rb *RingBuffer) Push(b byte) {
	size := len(rb.buffer)
	if size == 0 {
		return
	}

	rb.buffer[rb.wIndex] = b
	rb.wIndex = (rb.wIndex + 1) % size

	if rb.count == size {
		rb.rIndex = (rb.rIndex + 1) % size
		return
	}
	rb.count++
}

// PushBytes appends each byte in p, in order.
func (rb *RingBuffer) PushBytes(p []byte) {
	for _, b := range p {
		rb.Push(b)
	}
}

// Write implements io.Writer. It never fails.
func (rb *RingBuffer) Write(p []byte) (int, error) {
	rb.PushBytes(p)
	return len(p), nil
}

// Len returns the number of buffered bytes.
func (rb *RingBuffer) Len() int {
	return rb.count
}

// Cap returns the buffer capacity.
func (rb *RingBuffer) Cap() int {
	return len(rb.buffer)
}

// IsEmpty returns true if no bytes are buffered.
func (rb *RingBuffer) IsEmpty() bool {
	return rb.count == 0
}

// All returns an iterator over the buffered bytes, oldest first. Iteration
// does not consume the buffered data; each call to All starts over from the
// oldest byte. The buffer must not be modified while an iteration is in
// progress.
func (rb *RingBuffer) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i, pos := 0, rb.rIndex; i < rb.count; i, pos = i+1, pos+1 {
			if pos == len(rb.buffer) {
				pos = 0
			}

			if !yield(rb.buffer[pos]) {
				return
			}
		}
	}
}

// WriteTo implements io.WriterTo. It writes the buffered bytes to w, oldest
// first, without consuming them.
func (rb *RingBuffer) WriteTo(w io.Writer) (int64, error) {
	if rb.count == 0 {
		return 0, nil
	}

	// The buffered data occupies at most two contiguous regions.
	first := rb.buffer[rb.rIndex:]
	if len(first) > rb.count {
		first = first[:rb.count]
	}
	second := rb.buffer[:rb.count-len(first)]

	n, err := w.Write(first)
	if err != nil {
		return int64(n), err
	}

	if len(second) == 0 {
		return int64(n), nil
	}

	m, err := w.Write(second)
	return int64(n + m), err
}
