package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseFlush,
				Kind:      KindOutOfMemory,
				Detail:    "growing destination buffer",
				Capacity:  8192,
				Requested: 16384,
			},
			contains: []string{"[flush]", "out_of_memory", "growing destination buffer", "capacity 8192", "requested 16384"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAttach,
				Kind:  KindInvalidArgument,
			},
			contains: []string{"[attach]", "invalid_argument"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFlush,
				Kind:   KindIO,
				Detail: "forwarding staged bytes",
				Cause:  errors.New("pipe closed"),
			},
			contains: []string{"[flush]", "io", "forwarding staged bytes", "caused by", "pipe closed"},
		},
		{
			name: "capacity without request",
			err: &Error{
				Phase:    PhaseFlush,
				Kind:     KindBufferSize,
				Detail:   "fixed buffer cannot grow",
				Capacity: 4096,
			},
			contains: []string{"[flush]", "buffer_size", "(capacity 4096)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseFlush,
		Kind:  KindOutOfMemory,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseFlush,
		Kind:   KindBufferSize,
		Detail: "fixed buffer cannot grow",
	}

	if !err.Is(&Error{Phase: PhaseFlush, Kind: KindBufferSize}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseAttach, Kind: KindBufferSize}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseFlush, Kind: KindOutOfMemory}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseFlush, Kind: KindBufferSize}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match phase and kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("mmap failed")
	err := New(PhaseFlush, KindOutOfMemory).
		Detail("growing from %d", 4096).
		Capacity(4096).
		Requested(8192).
		Cause(cause).
		Build()

	if err.Phase != PhaseFlush || err.Kind != KindOutOfMemory {
		t.Errorf("builder lost phase/kind: %v %v", err.Phase, err.Kind)
	}
	if err.Detail != "growing from 4096" {
		t.Errorf("builder detail = %q", err.Detail)
	}
	if err.Capacity != 4096 || err.Requested != 8192 {
		t.Errorf("builder sizes = %d, %d", err.Capacity, err.Requested)
	}
	if !errors.Is(err, cause) {
		t.Error("builder cause not wrapped")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := InvalidArgument(PhaseAttach, "nil handles"); e.Kind != KindInvalidArgument {
		t.Errorf("InvalidArgument kind = %v", e.Kind)
	}
	if e := BufferSize(PhaseAttach, "empty buffer"); e.Kind != KindBufferSize {
		t.Errorf("BufferSize kind = %v", e.Kind)
	}

	oom := OutOfMemory(PhaseFlush, 4096, 8192, errors.New("no memory"))
	if oom.Kind != KindOutOfMemory || oom.Capacity != 4096 || oom.Requested != 8192 {
		t.Errorf("OutOfMemory = %+v", oom)
	}

	ioErr := IO("short write", errors.New("disk full"))
	if ioErr.Kind != KindIO || ioErr.Phase != PhaseFlush {
		t.Errorf("IO = %+v", ioErr)
	}
}
