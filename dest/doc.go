// Package dest implements the destination variants behind the
// bytesink.Destination contract.
//
// # Variants
//
//	Memory   grows a backing allocation by doubling whenever the window fills
//	Fixed    caller-pinned buffer; running out of space is a hard error
//	Stream   forwards staged bytes to an io.Writer through a fixed window
//
// The variant is selected at configure time, either directly through the
// variant's Attach method or through the Configure selector which maps the
// classic (buffer handle, size handle, owns-allocation) triple onto Memory
// or Fixed.
//
// # Session Lifecycle
//
// A destination object is persistent: construct it once, attach it per
// encoding session, and let the producer drive Begin/Flush/Finish. After
// Finish the object is dormant but valid and may be attached again. A
// destination serves at most one session at a time; re-attaching before
// Finish abandons the open session and releases any growth allocation the
// destination still owned.
//
// # Growth
//
//	attach:  [window................................]  capacity c
//	flush:   [written bytes][window.................]  capacity 2c
//	flush:   [written bytes...............][window..]  capacity 4c
//	finish:  publish buffer and exact byte count
//
// Each flush doubles capacity, copies everything written so far into the
// new allocation and re-points the window at the first free byte, so the
// producer resumes exactly where it stopped. Doubling keeps reallocations
// for N output bytes at O(log N) and total copied bytes at O(N).
package dest
