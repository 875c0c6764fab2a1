// Package alloc provides Allocator implementations for destination buffers.
//
// Heap is the default and backs allocations with the Go heap. Tracking and
// Limit wrap another Allocator to observe or bound what a destination
// allocates; both are used heavily by tests and are cheap enough for
// production diagnostics.
package alloc

import (
	"fmt"

	"github.com/wippyai/bytesink"
)

// Heap allocates from the Go heap. Free is a release hint only; the
// garbage collector reclaims buffers once nothing references them.
type Heap struct{}

// Alloc returns a zeroed buffer of exactly size bytes.
func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("alloc: non-positive size %d", size)
	}
	return make([]byte, size), nil
}

// Free is a no-op for heap buffers.
func (Heap) Free(buf []byte) {}

// Tracking wraps an Allocator and records every live allocation. It is how
// tests verify that destination reuse does not leak a prior session's
// growth allocation.
//
// Buffers are identified by the address of their first byte, so Tracking
// only sees buffers that passed through its own Alloc.
type Tracking struct {
	inner  bytesink.Allocator
	live   map[*byte]int
	allocs int
	frees  int
}

// NewTracking wraps inner, or Heap if inner is nil.
func NewTracking(inner bytesink.Allocator) *Tracking {
	if inner == nil {
		inner = Heap{}
	}
	return &Tracking{
		inner: inner,
		live:  make(map[*byte]int),
	}
}

func (t *Tracking) Alloc(size int) ([]byte, error) {
	buf, err := t.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	t.live[&buf[0]] = len(buf)
	t.allocs++
	return buf, nil
}

func (t *Tracking) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if _, ok := t.live[&buf[0]]; ok {
		delete(t.live, &buf[0])
		t.frees++
	}
	t.inner.Free(buf)
}

// Live reports the number of outstanding allocations.
func (t *Tracking) Live() int { return len(t.live) }

// LiveBytes reports the total size of outstanding allocations.
func (t *Tracking) LiveBytes() int {
	n := 0
	for _, size := range t.live {
		n += size
	}
	return n
}

// Allocs reports the total number of allocations performed.
func (t *Tracking) Allocs() int { return t.allocs }

// Frees reports the total number of tracked buffers freed.
func (t *Tracking) Frees() int { return t.frees }

// Limit wraps an Allocator and fails any allocation that would push the
// outstanding byte total past max. It gives tests a deterministic
// out-of-memory path without exhausting real memory, and callers a way to
// put a ceiling on destination growth.
type Limit struct {
	inner bytesink.Allocator
	live  map[*byte]int
	used  int
	max   int
}

// NewLimit wraps inner (Heap if nil) with a ceiling of max outstanding bytes.
func NewLimit(inner bytesink.Allocator, max int) *Limit {
	if inner == nil {
		inner = Heap{}
	}
	return &Limit{
		inner: inner,
		live:  make(map[*byte]int),
		max:   max,
	}
}

func (l *Limit) Alloc(size int) ([]byte, error) {
	if size > 0 && l.used+size > l.max {
		return nil, fmt.Errorf("alloc: %d bytes would exceed limit of %d (%d in use)", size, l.max, l.used)
	}
	buf, err := l.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	l.live[&buf[0]] = len(buf)
	l.used += len(buf)
	return buf, nil
}

func (l *Limit) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if size, ok := l.live[&buf[0]]; ok {
		delete(l.live, &buf[0])
		l.used -= size
	}
	l.inner.Free(buf)
}

// Used reports the outstanding byte total.
func (l *Limit) Used() int { return l.used }
