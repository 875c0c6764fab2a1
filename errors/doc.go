// Package errors provides structured error types for destination managers.
//
// Errors carry the phase in which they occurred (attach, flush, finish),
// a machine-comparable kind (invalid_argument, buffer_size, out_of_memory,
// io, session_state) and optional capacity context:
//
//	[flush] out_of_memory: growing destination buffer (capacity 8192, requested 16384)
//	[attach] buffer_size: fixed destination requires a non-empty buffer
//
// Every error in this taxonomy is fatal to the encoding session that
// raised it; none is locally recoverable and none is retried.
package errors
