package alloc

import (
	"strings"
	"testing"
)

func TestHeap(t *testing.T) {
	var h Heap

	buf, err := h.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc(64) failed: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("Alloc(64) returned %d bytes", len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buffer not zeroed at %d", i)
		}
	}
	h.Free(buf)

	if _, err := h.Alloc(0); err == nil {
		t.Error("Alloc(0) should fail")
	}
	if _, err := h.Alloc(-1); err == nil {
		t.Error("Alloc(-1) should fail")
	}
}

func TestTracking(t *testing.T) {
	tr := NewTracking(nil)

	a, err := tr.Alloc(128)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	b, err := tr.Alloc(256)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}

	if tr.Live() != 2 || tr.LiveBytes() != 384 {
		t.Errorf("live = %d (%d bytes), want 2 (384 bytes)", tr.Live(), tr.LiveBytes())
	}
	if tr.Allocs() != 2 {
		t.Errorf("allocs = %d, want 2", tr.Allocs())
	}

	tr.Free(a)
	if tr.Live() != 1 || tr.LiveBytes() != 256 {
		t.Errorf("after free: live = %d (%d bytes), want 1 (256 bytes)", tr.Live(), tr.LiveBytes())
	}

	// Foreign buffers are ignored
	tr.Free(make([]byte, 32))
	if tr.Frees() != 1 {
		t.Errorf("frees = %d, want 1", tr.Frees())
	}

	tr.Free(b)
	if tr.Live() != 0 || tr.LiveBytes() != 0 {
		t.Errorf("leak: live = %d (%d bytes)", tr.Live(), tr.LiveBytes())
	}
}

func TestLimit(t *testing.T) {
	l := NewLimit(nil, 1024)

	a, err := l.Alloc(512)
	if err != nil {
		t.Fatalf("Alloc(512) failed: %v", err)
	}
	if l.Used() != 512 {
		t.Errorf("used = %d, want 512", l.Used())
	}

	if _, err := l.Alloc(1024); err == nil {
		t.Fatal("Alloc past limit should fail")
	} else if !strings.Contains(err.Error(), "limit") {
		t.Errorf("error %q does not mention limit", err)
	}

	// Freeing makes room again
	l.Free(a)
	if l.Used() != 0 {
		t.Errorf("used after free = %d, want 0", l.Used())
	}
	if _, err := l.Alloc(1024); err != nil {
		t.Errorf("Alloc(1024) after free failed: %v", err)
	}
}
