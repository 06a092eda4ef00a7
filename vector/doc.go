// Package vector implements a growable, contiguous array whose storage is
// managed explicitly instead of through append.
//
// # Overview
//
// A Vector owns a buffer of capacity element slots obtained from an
// alloc.Allocator. Size (live elements) and capacity (allocated slots) are
// tracked separately. Slots [0, Size) hold live elements; slots
// [Size, Capacity) hold the zero value and are never exposed.
//
// Growth is never implicit policy of the package: every growable vector
// carries a caller-supplied GrowthFunc that maps the current capacity to a
// strictly larger one. It is invoked exactly once per append that finds the
// buffer full. Double, AddChunk and Hybrid cover the common shapes.
//
// A fixed vector never grows on append; appending to a full fixed vector
// returns ErrCapacityExceeded. Resize is still allowed as an explicit
// escape hatch.
//
// # Usage Example
//
//	v, err := vector.New[int](1, false, vector.Double, nil)
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	_ = v.Append(2)
//	_ = v.Append(3) // grows 1 -> 2
//	fmt.Printf("%+v\n", v) // VECTOR { SIZE: 2, CAPACITY: 2, FIXED: false, CONTENTS: [2, 3] }
//	fmt.Println(v)         // [2, 3]
//
// # Element Lifetime
//
// Options.Destructor, when set, runs exactly once for every element that
// leaves the vector: the old value on Set, the last value on RemoveLast and
// every live value (in index order) on Close. Moving elements during
// reallocation does not destruct them. Close releases the buffer after the
// destructors ran and is safe to call more than once.
//
// # Errors
//
// Precondition violations are rejected before any state changes. A failed
// reallocation leaves the vector unusable: every later mutating call
// returns ErrUnusable and reads report absence. The vector keeps the buffer
// it had before the failed call, so Close still destructs the live elements
// and frees it.
//
// # Thread Safety
//
// Vector instances are not thread-safe and assume a single owner.
package vector
