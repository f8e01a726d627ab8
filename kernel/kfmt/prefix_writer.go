package kfmt

import (
	"bytes"
	"io"
)

// PrefixWriter is an io.Writer that wraps another io.Writer and injects a
// prefix at the beginning of each line. The prefix for a line is only emitted
// once the first byte of that line is written.
type PrefixWriter struct {
	// A writer where all writes get sent to.
	Sink io.Writer

	// The prefix injected at the beginning of each line.
	Prefix []byte

	midLine bool
}

// Write writes len(p) bytes from p to the sink. The injected prefixes are not
// included in the returned byte count.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written int

	for len(p) != 0 {
		if !w.midLine {
			if _, err := w.Sink.Write(w.Prefix); err != nil {
				return written, err
			}
			w.midLine = true
		}

		end := len(p)
		if index := bytes.IndexByte(p, '\n'); index != -1 {
			end = index + 1
		}

		n, err := w.Sink.Write(p[:end])
		written += n
		if err != nil {
			return written, err
		}

		if p[end-1] == '\n' {
			w.midLine = false
		}
		p = p[end:]
	}

	return written, nil
}
