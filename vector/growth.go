package vector

import "math"

// GrowthFunc maps the current capacity to the capacity to reallocate to when
// an append finds the buffer full. The result must be strictly larger than
// the input; anything else fails the append with ErrInvalidGrowthPolicy.
type GrowthFunc func(capacity int) int

// Double doubles the capacity.
func Double(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return capacity * 2
}

// Identity returns the capacity unchanged. It only makes sense for fixed
// vectors, which never call their growth function.
func Identity(capacity int) int { return capacity }

// AddChunk grows by a constant number of slots. A non-positive n yields a
// policy that fails on first use.
func AddChunk(n int) GrowthFunc {
	return func(capacity int) int {
		if n > 0 && capacity > math.MaxInt-n {
			return math.MaxInt
		}
		return capacity + n
	}
}

// Hybrid doubles small buffers and grows buffers at or above threshold by a
// quarter, which keeps the slack of large buffers bounded.
func Hybrid(threshold int) GrowthFunc {
	return func(capacity int) int {
		if capacity < threshold {
			return Double(capacity)
		}
		step := max(capacity/4, 1)
		if capacity > math.MaxInt-step {
			return math.MaxInt
		}
		return capacity + step
	}
}
