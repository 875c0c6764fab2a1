package dest

import (
	"github.com/wippyai/bytesink"
	"github.com/wippyai/bytesink/errors"
)

// Configure attaches a destination for an in-memory encoding session,
// selecting the variant from ownsAllocation:
//
//   - true: a Memory destination that may allocate and grow. An empty
//     *outBuf asks the destination to allocate the initial buffer itself.
//   - false: a Fixed destination pinned to the caller's buffer, which must
//     be non-empty and is never grown or replaced.
//
// The handles are read now and written at Finish: *outBuf receives the
// final allocation (Memory only) and *outSize the exact number of valid
// bytes. After Finish the caller owns the published allocation.
func Configure(outBuf *[]byte, outSize *int, ownsAllocation bool) (bytesink.Destination, error) {
	if outBuf == nil || outSize == nil {
		return nil, errors.InvalidArgument(errors.PhaseAttach, "nil destination handles")
	}

	if ownsAllocation {
		m := NewMemory(nil)
		if err := m.Attach(outBuf, outSize); err != nil {
			return nil, err
		}
		return m, nil
	}

	f := NewFixed()
	if err := f.Attach(outBuf, outSize); err != nil {
		return nil, err
	}
	return f, nil
}
