// Package alloc provides raw element storage for manually managed containers.
//
// # Overview
//
// An Allocator hands out fixed-length runs of element slots ([]T whose
// length is the slot count), resizes them and takes them back. Containers
// built on top of it (see package vector) decide when to grow and own the
// lifetime of the values they place in the slots; the allocator only deals
// in storage.
//
// # Implementations
//
// Heap: slots come from the Go heap.
//
//   - Works for every element type
//   - Requests are bounded by MaxBytes (ErrTooLarge instead of a runtime panic
//     on absurd sizes)
//   - Retired slots are cleared so the garbage collector does not keep stale
//     values alive
//
// Mmap: slots live in anonymous page mappings outside the Go heap.
//
//   - Only for pointer-free element types (ErrPointerElements otherwise)
//   - Realloc uses mremap(2) on Linux, so large buffers grow without a copy
//   - Zero-sized element types are served from the heap
//
// Tracking: wraps another Allocator and counts what passes through it.
//
// # Usage Example
//
//	var a alloc.Allocator[int64] = alloc.Heap[int64]{}
//	slots, err := a.Alloc(16)
//	if err != nil {
//	    return err
//	}
//	slots, err = a.Realloc(slots, 32)
//	if err != nil {
//	    return err
//	}
//	defer a.Free(slots)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
