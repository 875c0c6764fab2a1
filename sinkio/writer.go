// Package sinkio adapts destinations to the standard io interfaces so
// ordinary Go encoders can act as the producer.
package sinkio

import (
	stderrors "errors"
	"io"

	"github.com/wippyai/bytesink"
)

// ErrClosed is returned by Write after Close.
var ErrClosed = stderrors.New("sinkio: write on closed writer")

// Writer drives a Destination through the producer contract: each Write
// copies into the staging window and invokes Flush whenever the window is
// exhausted; Close calls Finish exactly once. Writer is the session driver
// for any producer that speaks io.Writer.
type Writer struct {
	dst    bytesink.Destination
	win    *bytesink.Window
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter begins a session on d and returns its driver. The destination
// must already be attached.
func NewWriter(d bytesink.Destination) *Writer {
	d.Begin()
	return &Writer{dst: d, win: d.Window()}
}

// Write copies p into the destination, flushing as often as the window
// fills. A flush failure is fatal: the error is returned with the count of
// bytes the destination accepted before it, and the session is dead.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}

	total := 0
	for len(p) > 0 {
		if w.win.Remaining() == 0 {
			if err := w.dst.Flush(); err != nil {
				return total, err
			}
		}
		n := copy(w.win.Buf[w.win.Pos:], p)
		w.win.Pos += n
		total += n
		p = p[n:]
	}
	return total, nil
}

// Close finishes the session. Subsequent calls are no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.dst.Finish()
}
