package vector

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive capacity or resize target,
	// or a growable vector constructed without a growth function.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrAllocationFailure indicates the allocator could not provide storage.
	ErrAllocationFailure = errors.New("vector: allocation failed")

	// ErrCapacityExceeded indicates an append to a full fixed-capacity vector.
	ErrCapacityExceeded = errors.New("vector: capacity exceeded")

	// ErrIndexOutOfBounds indicates a write at or beyond Size.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrShrinkBelowSize indicates a resize target smaller than Size.
	ErrShrinkBelowSize = errors.New("vector: resize below size")

	// ErrInvalidGrowthPolicy indicates the growth function did not return a
	// strictly larger capacity.
	ErrInvalidGrowthPolicy = errors.New("vector: growth function must increase capacity")

	// ErrUnusable indicates an earlier reallocation failed. Only Close is
	// still meaningful.
	ErrUnusable = errors.New("vector: unusable after failed reallocation")

	// ErrReleased indicates the vector was already closed.
	ErrReleased = errors.New("vector: released")
)
