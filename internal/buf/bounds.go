package buf

import (
	"fmt"
	"math"
)

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the product would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotBytes returns the number of bytes needed for count slots of elemSize
// bytes each, rejecting negative inputs, overflow and totals above limit.
// A limit <= 0 means no limit beyond math.MaxInt.
//
//	n, err := buf.SlotBytes(capacity, int(unsafe.Sizeof(x)), maxBytes)
//	if err != nil {
//	    return nil, fmt.Errorf("alloc: %w", err)
//	}
func SlotBytes(count, elemSize, limit int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	if limit > 0 && total > limit {
		return 0, fmt.Errorf("bounds: %d bytes > limit %d", total, limit)
	}
	return total, nil
}
