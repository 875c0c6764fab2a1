package bytesink

// Window is the staging span a destination exposes to its producer.
//
// The producer owns Pos between flushes: it writes into Buf[Pos], advances
// Pos, and calls Flush on its destination once Remaining reaches zero. The
// destination only inspects the window at flush and finish time.
type Window struct {
	// Buf is the span the producer may write into.
	Buf []byte
	// Pos is the producer's write cursor within Buf.
	Pos int
}

// Remaining reports how many bytes the producer may still write before it
// must call Flush.
func (w *Window) Remaining() int {
	return len(w.Buf) - w.Pos
}

// Destination is the producer-facing destination contract.
//
// A destination is attached to an encoding session by its variant-specific
// Attach method (or the dest.Configure selector), after which the producer
// drives it: Begin once at session start, Flush whenever the window is
// exhausted, Finish exactly once after the last byte. Errors are fatal to
// the session; the producer propagates them without retrying.
type Destination interface {
	// Begin marks the start of an encoding session.
	Begin()

	// Flush makes room for further output after the window has been
	// exhausted. On return the window has free space again and the
	// producer resumes writing where it left off.
	Flush() error

	// Finish completes the session and publishes results through the
	// handles supplied at attach time.
	Finish() error

	// Window returns the staging window shared with the producer. The
	// pointer is stable for the lifetime of the destination.
	Window() *Window
}

// Allocator supplies backing memory for growable destinations.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly size bytes.
	Alloc(size int) ([]byte, error)
	// Free releases a buffer previously returned by Alloc. Implementations
	// backed by the Go heap may treat this as a hint.
	Free(buf []byte)
}
