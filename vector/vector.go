package vector

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/rawvec/alloc"
)

// Vector is an owning, growable, contiguous buffer of T with explicit
// capacity control. The zero value is not usable; construct with New.
type Vector[T any] struct {
	// buf holds exactly capacity slots; len(buf) is the capacity.
	buf   []T
	size  int
	fixed bool
	grow  GrowthFunc

	alloc    alloc.Allocator[T]
	destruct func(*T)
	log      *slog.Logger

	released bool
	broken   bool
}

// New allocates a vector with initialCapacity slots and no live elements.
//
// Parameters:
//   - initialCapacity: number of slots to allocate, must be positive
//   - fixed: when true the vector never grows on Append
//   - grow: growth function, required unless fixed
//   - opts: allocator, destructor and logger; nil for defaults
func New[T any](initialCapacity int, fixed bool, grow GrowthFunc, opts *Options[T]) (*Vector[T], error) {
	if initialCapacity <= 0 {
		return nil, fmt.Errorf("%w: initial capacity %d", ErrInvalidArgument, initialCapacity)
	}
	if grow == nil && !fixed {
		return nil, fmt.Errorf("%w: growable vector needs a growth function", ErrInvalidArgument)
	}

	v := &Vector[T]{
		fixed: fixed,
		grow:  grow,
		alloc: alloc.Heap[T]{},
		log:   discardLogger,
	}
	if opts != nil {
		if opts.Allocator != nil {
			v.alloc = opts.Allocator
		}
		if opts.Logger != nil {
			v.log = opts.Logger
		}
		v.destruct = opts.Destructor
	}

	b, err := v.alloc.Alloc(initialCapacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %d slots: %w", ErrAllocationFailure, initialCapacity, err)
	}
	if len(b) != initialCapacity {
		return nil, fmt.Errorf("%w: asked for %d slots, got %d", ErrAllocationFailure, initialCapacity, len(b))
	}
	v.buf = b
	return v, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int { return len(v.buf) }

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Fixed reports whether Append is forbidden from growing the vector.
func (v *Vector[T]) Fixed() bool { return v.fixed }

// Append stores value at index Size, growing the buffer through the growth
// function first if it is full.
func (v *Vector[T]) Append(value T) error {
	if err := v.usable(); err != nil {
		return err
	}
	if v.size >= len(v.buf) {
		if v.fixed {
			return fmt.Errorf("%w: fixed capacity %d", ErrCapacityExceeded, len(v.buf))
		}
		newCap := v.grow(len(v.buf))
		if newCap <= len(v.buf) {
			return fmt.Errorf("%w: %d -> %d", ErrInvalidGrowthPolicy, len(v.buf), newCap)
		}
		if err := v.realloc(newCap); err != nil {
			return err
		}
	}
	v.buf[v.size] = value
	v.size++
	return nil
}

// Get returns the element at index and true, or the zero value and false
// when index is not in [0, Size).
func (v *Vector[T]) Get(index int) (T, bool) {
	if v.broken || index < 0 || index >= v.size {
		var zero T
		return zero, false
	}
	return v.buf[index], true
}

// Set replaces the element at index, destructing the previous value.
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.usable(); err != nil {
		return err
	}
	if index < 0 || index >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, v.size)
	}
	v.drop(index)
	v.buf[index] = value
	return nil
}

// RemoveLast destructs the last element. It does nothing on an empty
// vector and never changes the capacity.
func (v *Vector[T]) RemoveLast() {
	if v.broken || v.size == 0 {
		return
	}
	v.drop(v.size - 1)
	v.size--
}

// ShrinkToFit reallocates the buffer down to exactly Size slots. It does
// nothing for fixed or empty vectors, or when there is no slack.
func (v *Vector[T]) ShrinkToFit() error {
	if v.broken {
		return ErrUnusable
	}
	if v.fixed || v.size == 0 || v.size >= len(v.buf) {
		return nil
	}
	return v.realloc(v.size)
}

// Resize reallocates the buffer to exactly target slots. Unlike growth on
// Append it is allowed on fixed vectors.
func (v *Vector[T]) Resize(target int) error {
	if err := v.usable(); err != nil {
		return err
	}
	if target <= 0 {
		return fmt.Errorf("%w: resize target %d", ErrInvalidArgument, target)
	}
	if target < v.size {
		return fmt.Errorf("%w: target %d, size %d", ErrShrinkBelowSize, target, v.size)
	}
	if target == len(v.buf) {
		return nil
	}
	return v.realloc(target)
}

// Close destructs every live element in index order, then releases the
// buffer. It does so for a vector left unusable by a failed reallocation as
// well. Calls after the first are no-ops.
func (v *Vector[T]) Close() error {
	if v.released {
		return nil
	}
	v.released = true
	if v.destruct != nil {
		for i := range v.size {
			v.destruct(&v.buf[i])
		}
	}
	b := v.buf
	v.buf, v.size, v.broken = nil, 0, false
	if err := v.alloc.Free(b); err != nil {
		return fmt.Errorf("vector: release buffer: %w", err)
	}
	return nil
}

// realloc moves the live elements into a buffer of n slots. On failure the
// vector keeps its old buffer for Close and is marked broken.
func (v *Vector[T]) realloc(n int) error {
	from := len(v.buf)
	b, err := v.alloc.Realloc(v.buf, n)
	if err == nil && len(b) != n {
		// The old buffer is gone; keep what came back so Close can free it.
		v.buf, v.size = b, min(v.size, len(b))
		err = fmt.Errorf("asked for %d slots, got %d", n, len(b))
	}
	if err != nil {
		v.broken = true
		v.log.Debug("vector reallocation failed", "from", from, "to", n, "err", err)
		return fmt.Errorf("%w: %d -> %d slots: %w", ErrAllocationFailure, from, n, err)
	}
	v.buf = b
	v.log.Debug("vector reallocated", "from", from, "to", n, "size", v.size)
	return nil
}

// drop destructs the element at i and zeroes its slot.
func (v *Vector[T]) drop(i int) {
	if v.destruct != nil {
		v.destruct(&v.buf[i])
	}
	var zero T
	v.buf[i] = zero
}

func (v *Vector[T]) usable() error {
	switch {
	case v.released:
		return ErrReleased
	case v.broken:
		return ErrUnusable
	}
	return nil
}
