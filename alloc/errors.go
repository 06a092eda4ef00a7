package alloc

import "errors"

var (
	// ErrBadLength indicates a non-positive slot count was requested.
	ErrBadLength = errors.New("alloc: slot count must be positive")

	// ErrTooLarge indicates the request does not fit in the allocator's byte limit.
	ErrTooLarge = errors.New("alloc: request too large")

	// ErrPointerElements indicates an element type holding Go pointers was
	// used with an allocator whose memory the garbage collector cannot scan.
	ErrPointerElements = errors.New("alloc: element type contains pointers")
)
