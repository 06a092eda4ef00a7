package alloc

// Allocator defines raw slot storage for elements of type T.
//
// Implementations:
//   - Heap: Go heap slices
//   - Mmap: anonymous page mappings for pointer-free types
//   - Tracking: counting wrapper around another Allocator
type Allocator[T any] interface {
	// Alloc returns n zero-valued slots. n must be positive.
	Alloc(n int) ([]T, error)

	// Realloc resizes buf to n slots, preserving buf[:min(len(buf), n)].
	// Slots past the preserved prefix hold the zero value.
	//
	// On success buf must not be used again. On failure buf must be left
	// intact and still owned by the caller, who remains responsible for
	// passing it to Free.
	Realloc(buf []T, n int) ([]T, error)

	// Free releases a buffer returned by Alloc or Realloc. The slice must be
	// passed with its original length.
	Free(buf []T) error
}
