package dest

import (
	"github.com/wippyai/bytesink"
	"github.com/wippyai/bytesink/errors"
)

// Fixed is the caller-pinned destination. The caller supplies the buffer
// at attach time and forbids the destination from growing or replacing it;
// producing more bytes than the buffer holds is a hard error. Finish
// publishes only the valid byte count, since the buffer already belongs to
// the caller.
type Fixed struct {
	win bytesink.Window

	outSize  *int
	attached bool
}

// NewFixed creates a fixed-buffer destination.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Attach configures the destination over the caller's buffer. The buffer
// must be non-empty: a destination that may not allocate has nowhere to
// put bytes otherwise.
func (f *Fixed) Attach(outBuf *[]byte, outSize *int) error {
	if outBuf == nil || outSize == nil {
		return errors.InvalidArgument(errors.PhaseAttach, "nil destination handles")
	}
	if len(*outBuf) == 0 {
		return errors.BufferSize(errors.PhaseAttach, "fixed destination requires a non-empty buffer")
	}

	f.outSize = outSize
	f.win = bytesink.Window{Buf: *outBuf}
	f.attached = true
	return nil
}

// Begin marks the start of the encoding session. No work is necessary.
func (f *Fixed) Begin() {}

// Window returns the staging window shared with the producer.
func (f *Fixed) Window() *bytesink.Window {
	return &f.win
}

// Flush always fails: a caller-pinned buffer claims no right to be
// replaced, so the destination refuses rather than reallocate something it
// could not hand back. The buffer and everything written so far are left
// untouched.
func (f *Fixed) Flush() error {
	return errors.New(errors.PhaseFlush, errors.KindBufferSize).
		Detail("fixed buffer cannot grow").
		Capacity(len(f.win.Buf)).
		Build()
}

// Finish publishes the exact number of valid bytes through the size
// handle and goes dormant until the next Attach.
func (f *Fixed) Finish() error {
	if !f.attached {
		return errors.New(errors.PhaseFinish, errors.KindSessionState).
			Detail("finish on a detached destination").Build()
	}

	*f.outSize = f.win.Pos

	f.outSize = nil
	f.win = bytesink.Window{}
	f.attached = false
	return nil
}
