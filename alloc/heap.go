package alloc

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/joshuapare/rawvec/internal/buf"
)

// DefaultMaxBytes bounds a single Heap request when MaxBytes is zero:
// 64 TiB on 64-bit platforms, 1 GiB on 32-bit ones.
const DefaultMaxBytes = 1 << (bits.UintSize/2 + 14)

// Heap allocates slots from the Go heap. The zero value is ready to use.
type Heap[T any] struct {
	// MaxBytes caps the size of a single buffer. Zero means DefaultMaxBytes.
	MaxBytes int
}

// Alloc returns n zeroed slots.
func (h Heap[T]) Alloc(n int) ([]T, error) {
	if err := h.check(n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Realloc copies the preserved prefix into a fresh buffer and clears buf.
func (h Heap[T]) Realloc(old []T, n int) ([]T, error) {
	if err := h.check(n); err != nil {
		return nil, err
	}
	next := make([]T, n)
	copy(next, old)
	clear(old)
	return next, nil
}

// Free clears buf so nothing it referenced stays reachable through it.
func (Heap[T]) Free(b []T) error {
	clear(b)
	return nil
}

func (h Heap[T]) check(n int) error {
	if n <= 0 {
		return ErrBadLength
	}
	limit := h.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	var zero T
	if _, err := buf.SlotBytes(n, int(unsafe.Sizeof(zero)), limit); err != nil {
		return fmt.Errorf("%w: %d slots: %v", ErrTooLarge, n, err)
	}
	return nil
}
