package dest

import (
	"go.uber.org/zap"

	"github.com/wippyai/bytesink"
	"github.com/wippyai/bytesink/alloc"
	"github.com/wippyai/bytesink/errors"
)

// DefaultInitialCapacity is the backing allocation size used when the
// caller asks the destination to allocate the initial buffer itself.
const DefaultInitialCapacity = 4096

// Memory is the growable memory destination. The producer writes into the
// staging window; whenever the window is exhausted, Flush doubles the
// backing allocation, preserves everything written so far and re-points
// the window at the first free byte. Finish publishes the final allocation
// and the exact byte count through the handles supplied at attach time,
// transferring ownership of the allocation to the caller.
//
// A Memory object is persistent: attach it once per session, reuse it
// across sequential sessions. It is not safe for concurrent use.
type Memory struct {
	win bytesink.Window

	outBuf  *[]byte
	outSize *int

	// backing is the current allocation the window spans. libBuf points at
	// the same bytes whenever the destination itself produced them; it is
	// nil while the window spans a caller-supplied buffer and after Finish
	// has handed the allocation over.
	backing []byte
	libBuf  []byte

	alloc    bytesink.Allocator
	attached bool
}

// NewMemory creates a growable memory destination backed by a. A nil
// allocator selects the Go heap.
func NewMemory(a bytesink.Allocator) *Memory {
	if a == nil {
		a = alloc.Heap{}
	}
	return &Memory{alloc: a}
}

// Attach configures the destination for an encoding session.
//
// The handles are read now and written at Finish. If *outBuf is empty the
// destination allocates an initial DefaultInitialCapacity buffer and
// publishes it immediately; otherwise the caller's buffer is adopted
// verbatim as the initial backing allocation. Attaching while a previous
// session is still open abandons that session and releases any growth
// allocation the destination still owned.
func (m *Memory) Attach(outBuf *[]byte, outSize *int) error {
	if outBuf == nil || outSize == nil {
		return errors.InvalidArgument(errors.PhaseAttach, "nil destination handles")
	}

	// Drop a leftover allocation from an abandoned session, unless the
	// caller is handing that exact buffer back to us.
	if m.libBuf != nil && (len(*outBuf) == 0 || &(*outBuf)[0] != &m.libBuf[0]) {
		m.alloc.Free(m.libBuf)
		m.libBuf = nil
	}

	m.outBuf = outBuf
	m.outSize = outSize

	if len(*outBuf) == 0 {
		buf, err := m.alloc.Alloc(DefaultInitialCapacity)
		if err != nil {
			return errors.OutOfMemory(errors.PhaseAttach, 0, DefaultInitialCapacity, err)
		}
		m.libBuf = buf
		*outBuf = buf
		*outSize = len(buf)
	}

	m.backing = *outBuf
	m.win = bytesink.Window{Buf: m.backing}
	m.attached = true

	Logger().Debug("memory destination attached",
		zap.Int("capacity", len(m.backing)),
		zap.Bool("library_allocated", m.libBuf != nil))
	return nil
}

// Begin marks the start of the encoding session. No work is necessary for
// a memory destination.
func (m *Memory) Begin() {}

// Window returns the staging window shared with the producer.
func (m *Memory) Window() *bytesink.Window {
	return &m.win
}

// Flush doubles the backing allocation. The producer calls it once the
// window is exhausted; on return the window spans the new allocation with
// the write cursor positioned after the preserved bytes.
func (m *Memory) Flush() error {
	if !m.attached {
		return errors.New(errors.PhaseFlush, errors.KindSessionState).
			Detail("flush on a detached destination").Build()
	}

	capacity := len(m.backing)
	next := capacity * 2
	if next <= capacity {
		return errors.OutOfMemory(errors.PhaseFlush, capacity, next, nil)
	}

	buf, err := m.alloc.Alloc(next)
	if err != nil {
		return errors.OutOfMemory(errors.PhaseFlush, capacity, next, err)
	}
	copy(buf, m.backing)

	if m.libBuf != nil {
		m.alloc.Free(m.libBuf)
	}
	m.libBuf = buf
	m.backing = buf

	// Writing resumes right after the preserved prefix.
	m.win.Buf = buf
	m.win.Pos = capacity

	Logger().Debug("memory destination grown",
		zap.Int("old_capacity", capacity),
		zap.Int("new_capacity", next))
	return nil
}

// Finish publishes the current allocation and the exact number of valid
// bytes through the attach-time handles. Ownership of the allocation
// transfers to the caller; the destination keeps no claim on it and goes
// dormant until the next Attach.
//
// Finish is not invoked on abort paths; see Detach.
func (m *Memory) Finish() error {
	if !m.attached {
		return errors.New(errors.PhaseFinish, errors.KindSessionState).
			Detail("finish on a detached destination").Build()
	}

	*m.outBuf = m.backing
	*m.outSize = m.win.Pos

	Logger().Debug("memory destination finished",
		zap.Int("size", m.win.Pos),
		zap.Int("capacity", len(m.backing)))

	m.libBuf = nil
	m.backing = nil
	m.outBuf = nil
	m.outSize = nil
	m.win = bytesink.Window{}
	m.attached = false
	return nil
}

// Detach abandons an open session without publishing anything, releasing
// any growth allocation the destination still owns. Callers use it on
// abort paths; Attach performs the same cleanup implicitly.
func (m *Memory) Detach() {
	if m.libBuf != nil {
		m.alloc.Free(m.libBuf)
		m.libBuf = nil
	}
	m.backing = nil
	m.outBuf = nil
	m.outSize = nil
	m.win = bytesink.Window{}
	m.attached = false
}
