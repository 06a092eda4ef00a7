package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/rawvec/internal/buf"
	"github.com/joshuapare/rawvec/internal/rawmem"
)

// Mmap allocates slots in anonymous page mappings outside the Go heap.
// Use NewMmap to construct one; it rejects element types with pointers.
type Mmap[T any] struct {
	elemSize int
}

// NewMmap returns an Mmap allocator for T, or ErrPointerElements when T can
// hold Go pointers.
func NewMmap[T any]() (*Mmap[T], error) {
	if err := CheckPointerFree[T](); err != nil {
		return nil, err
	}
	var zero T
	return &Mmap[T]{elemSize: int(unsafe.Sizeof(zero))}, nil
}

// Mapped reports whether this platform backs Mmap with real page mappings.
func (m *Mmap[T]) Mapped() bool { return rawmem.Mapped }

// Alloc maps a zero-filled region holding n slots.
func (m *Mmap[T]) Alloc(n int) ([]T, error) {
	size, err := m.bytes(n)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return make([]T, n), nil
	}
	raw, err := rawmem.Map(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil
}

// Realloc resizes the mapping behind old to n slots.
func (m *Mmap[T]) Realloc(old []T, n int) ([]T, error) {
	size, err := m.bytes(n)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		next := make([]T, n)
		copy(next, old)
		return next, nil
	}
	if len(old) == 0 {
		return m.Alloc(n)
	}
	raw, err := rawmem.Remap(m.raw(old), size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil
}

// Free unmaps b.
func (m *Mmap[T]) Free(b []T) error {
	if len(b) == 0 || m.elemSize == 0 {
		return nil
	}
	return rawmem.Unmap(m.raw(b))
}

func (m *Mmap[T]) bytes(n int) (int, error) {
	if n <= 0 {
		return 0, ErrBadLength
	}
	size, err := buf.SlotBytes(n, m.elemSize, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %d slots: %v", ErrTooLarge, n, err)
	}
	return size, nil
}

// raw views b as the byte region it was mapped from.
func (m *Mmap[T]) raw(b []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b))), len(b)*m.elemSize)
}
