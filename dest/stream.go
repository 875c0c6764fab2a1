package dest

import (
	"io"

	"github.com/wippyai/bytesink"
	"github.com/wippyai/bytesink/errors"
)

// streamBufSize is the staging buffer used between the producer and the
// underlying writer. Chosen to match DefaultInitialCapacity: an efficiently
// writable unit for most stream targets.
const streamBufSize = 4096

// Stream forwards produced bytes to an io.Writer through a fixed staging
// window. Flush writes the whole staged buffer and rewinds the window to
// its start; Finish forwards the partial tail. The staging buffer is
// allocated once and reused across sessions.
type Stream struct {
	win bytesink.Window

	w        io.Writer
	buf      []byte
	written  int
	outSize  *int
	attached bool
}

// NewStream creates a stream-forwarding destination.
func NewStream() *Stream {
	return &Stream{}
}

// Attach configures the destination to forward to w. outSize is optional;
// when non-nil, Finish publishes the total number of forwarded bytes
// through it.
func (s *Stream) Attach(w io.Writer, outSize *int) error {
	if w == nil {
		return errors.InvalidArgument(errors.PhaseAttach, "nil stream writer")
	}

	if s.buf == nil {
		s.buf = make([]byte, streamBufSize)
	}

	s.w = w
	s.outSize = outSize
	s.written = 0
	s.win = bytesink.Window{Buf: s.buf}
	s.attached = true
	return nil
}

// Begin marks the start of the encoding session. No work is necessary.
func (s *Stream) Begin() {}

// Window returns the staging window shared with the producer.
func (s *Stream) Window() *bytesink.Window {
	return &s.win
}

// Flush forwards the entire staging buffer to the underlying writer and
// rewinds the window. The producer calls it only when the window is
// exhausted, so the whole buffer is valid output.
func (s *Stream) Flush() error {
	if !s.attached {
		return errors.New(errors.PhaseFlush, errors.KindSessionState).
			Detail("flush on a detached destination").Build()
	}

	n, err := s.w.Write(s.win.Buf)
	if err != nil {
		return errors.IO("forwarding staged bytes", err)
	}
	if n < len(s.win.Buf) {
		return errors.IO("forwarding staged bytes", io.ErrShortWrite)
	}

	s.written += n
	s.win.Pos = 0
	return nil
}

// Finish forwards the partial tail still sitting in the window, publishes
// the total byte count if a size handle was attached, and goes dormant
// until the next Attach.
func (s *Stream) Finish() error {
	if !s.attached {
		return errors.New(errors.PhaseFinish, errors.KindSessionState).
			Detail("finish on a detached destination").Build()
	}

	if s.win.Pos > 0 {
		n, err := s.w.Write(s.win.Buf[:s.win.Pos])
		if err != nil {
			return errors.New(errors.PhaseFinish, errors.KindIO).
				Detail("forwarding final bytes").
				Cause(err).
				Build()
		}
		if n < s.win.Pos {
			return errors.New(errors.PhaseFinish, errors.KindIO).
				Detail("forwarding final bytes").
				Cause(io.ErrShortWrite).
				Build()
		}
		s.written += n
	}

	if s.outSize != nil {
		*s.outSize = s.written
	}

	s.w = nil
	s.outSize = nil
	s.win = bytesink.Window{}
	s.attached = false
	return nil
}
