package dest

import (
	"errors"
	"testing"

	sinkerrors "github.com/wippyai/bytesink/errors"
)

func TestConfigure(t *testing.T) {
	t.Run("owning destination allocates", func(t *testing.T) {
		var buf []byte
		var size int
		d, err := Configure(&buf, &size, true)
		if err != nil {
			t.Fatalf("Configure failed: %v", err)
		}
		if _, ok := d.(*Memory); !ok {
			t.Fatalf("Configure returned %T, want *Memory", d)
		}
		if len(buf) != DefaultInitialCapacity {
			t.Errorf("initial buffer = %d bytes, want %d", len(buf), DefaultInitialCapacity)
		}
	})

	t.Run("owning destination adopts caller buffer", func(t *testing.T) {
		caller := make([]byte, 2048)
		buf := caller
		var size int
		d, err := Configure(&buf, &size, true)
		if err != nil {
			t.Fatalf("Configure failed: %v", err)
		}
		if win := d.Window(); &win.Buf[0] != &caller[0] {
			t.Error("window does not span the caller's buffer")
		}
	})

	t.Run("fixed destination", func(t *testing.T) {
		buf := make([]byte, 128)
		var size int
		d, err := Configure(&buf, &size, false)
		if err != nil {
			t.Fatalf("Configure failed: %v", err)
		}
		if _, ok := d.(*Fixed); !ok {
			t.Fatalf("Configure returned %T, want *Fixed", d)
		}
	})

	t.Run("fixed destination rejects empty buffer", func(t *testing.T) {
		var buf []byte
		var size int
		_, err := Configure(&buf, &size, false)
		if !errors.Is(err, &sinkerrors.Error{Phase: sinkerrors.PhaseAttach, Kind: sinkerrors.KindBufferSize}) {
			t.Errorf("Configure = %v, want buffer_size", err)
		}
	})

	t.Run("nil handles", func(t *testing.T) {
		var size int
		_, err := Configure(nil, &size, true)
		if !errors.Is(err, &sinkerrors.Error{Phase: sinkerrors.PhaseAttach, Kind: sinkerrors.KindInvalidArgument}) {
			t.Errorf("Configure = %v, want invalid_argument", err)
		}
	})
}
