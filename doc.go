// Package bytesink provides destination managers for streaming byte
// producers.
//
// A streaming encoder (a compressor, an image encoder, any producer that
// emits output incrementally) writes into a fixed-size staging window and
// signals the window's destination whenever the window fills. The
// destination decides what "making room" means: doubling a backing memory
// allocation, failing because the caller pinned the buffer, or forwarding
// the staged bytes to an io.Writer. At session end the destination hands
// the finished, correctly-sized result back to the caller.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	bytesink/        Root package with the Destination, Window and Allocator contracts
//	├── dest/        Destination variants: growable memory, fixed buffer, stream forwarding
//	├── alloc/       Allocator implementations: heap, tracking, byte-limited
//	├── sinkio/      io.Writer adapter that drives a Destination
//	└── errors/      Structured error types shared across packages
//
// # Producer Contract
//
// A destination exposes three operations plus a shared staging window:
//
//	Begin()          session start
//	Flush() error    called when the window is exhausted
//	Finish() error   called exactly once, last
//	Window()         the span the producer writes into directly
//
// The producer advances Window.Pos byte by byte and calls Flush once
// Remaining reaches zero. For the growable memory destination, Flush
// doubles the backing allocation, preserves everything written so far and
// re-points the window so writing continues exactly where it left off.
//
// # Quick Start
//
// Collect an encoder's output into a library-grown buffer:
//
//	var buf []byte
//	var size int
//
//	m := dest.NewMemory(nil)
//	if err := m.Attach(&buf, &size); err != nil {
//	    log.Fatal(err)
//	}
//
//	w := sinkio.NewWriter(m)
//	zw, _ := flate.NewWriter(w, flate.BestSpeed)
//	io.Copy(zw, input)
//	zw.Close()
//	w.Close() // Finish: buf and size now hold the result
//
//	fmt.Printf("%d bytes in a %d byte allocation\n", size, len(buf))
//
// After Finish the caller owns the published allocation; the destination
// keeps no claim on it. The destination object itself stays valid and may
// be re-attached for another session.
//
// # Ownership
//
// While a session is open the backing allocation belongs exclusively to
// the destination. Flush never discards written bytes and never lets the
// producer observe a half-moved buffer: growth only happens when the
// producer has no remaining space, so there is nothing in flight to race
// with. Finish transfers the allocation to the caller in a single handle
// write.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[attach] buffer_size: fixed destination requires a non-empty buffer
//	[flush] out_of_memory: growing destination buffer (capacity 8192, requested 16384)
//
// All destination errors are fatal to the encoding session. There is no
// retry policy and no partial success: the producer propagates the error
// and the surrounding context disposes of session state.
//
// # Thread Safety
//
// Destinations are single-session, single-goroutine objects. The producer
// and the destination call each other directly on one logical thread of
// control. Use separate destination instances per concurrent encode.
package bytesink
