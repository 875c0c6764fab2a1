package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in the session lifecycle the error occurred
type Phase string

const (
	PhaseAttach Phase = "attach" // configuring a destination for a session
	PhaseFlush  Phase = "flush"  // making room after the window filled
	PhaseFinish Phase = "finish" // publishing results at session end
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument" // nil handles, nil writer
	KindBufferSize      Kind = "buffer_size"      // empty fixed buffer, or growth requested on one
	KindOutOfMemory     Kind = "out_of_memory"    // allocation failure during setup or growth
	KindIO              Kind = "io"               // forwarding to a stream failed
	KindSessionState    Kind = "session_state"    // operation outside the attach/flush/finish lifecycle
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Capacity  int // current backing capacity when the error was raised, if known
	Requested int // allocation size that could not be satisfied, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Capacity > 0 || e.Requested > 0 {
		b.WriteString(" (")
		if e.Capacity > 0 {
			b.WriteString("capacity ")
			b.WriteString(strconv.Itoa(e.Capacity))
		}
		if e.Requested > 0 {
			if e.Capacity > 0 {
				b.WriteString(", ")
			}
			b.WriteString("requested ")
			b.WriteString(strconv.Itoa(e.Requested))
		}
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Capacity sets the backing capacity at the time of the error
func (b *Builder) Capacity(n int) *Builder {
	b.err.Capacity = n
	return b
}

// Requested sets the allocation size that could not be satisfied
func (b *Builder) Requested(n int) *Builder {
	b.err.Requested = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// BufferSize creates a buffer size error
func BufferSize(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferSize,
		Detail: detail,
	}
}

// OutOfMemory creates an allocation failure error
func OutOfMemory(phase Phase, capacity, requested int, cause error) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOutOfMemory,
		Detail:    "allocating destination buffer",
		Capacity:  capacity,
		Requested: requested,
		Cause:     cause,
	}
}

// IO creates a stream forwarding error
func IO(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseFlush,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}
