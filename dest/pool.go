package dest

import "sync"

// Memory destination pool for high-churn encode loops. Pooled objects use
// the heap allocator; destinations built over a custom Allocator should be
// kept by their owner instead.
var memoryPool = sync.Pool{
	New: func() any {
		return NewMemory(nil)
	},
}

// AcquireMemory returns a detached Memory destination from the pool.
func AcquireMemory() *Memory {
	return memoryPool.Get().(*Memory)
}

// ReleaseMemory detaches m and returns it to the pool. Must not be called
// while a session the caller still cares about is open; any growth
// allocation from an abandoned session is released.
func ReleaseMemory(m *Memory) {
	if m == nil {
		return
	}
	m.Detach()
	memoryPool.Put(m)
}
