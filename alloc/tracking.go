package alloc

// Stats is a snapshot of the traffic seen by a Tracking allocator.
type Stats struct {
	Allocs    int // successful Alloc calls
	Reallocs  int // successful Realloc calls
	Frees     int // Free calls
	Failures  int // Alloc or Realloc calls that returned an error
	LiveSlots int // slots currently handed out
	PeakSlots int // high-water mark of LiveSlots
}

// Tracking wraps an Allocator and records Stats.
type Tracking[T any] struct {
	inner Allocator[T]
	stats Stats
}

// NewTracking wraps inner. A nil inner uses Heap[T].
func NewTracking[T any](inner Allocator[T]) *Tracking[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Tracking[T]{inner: inner}
}

// Alloc forwards to the wrapped allocator.
func (t *Tracking[T]) Alloc(n int) ([]T, error) {
	b, err := t.inner.Alloc(n)
	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	t.stats.Allocs++
	t.adjust(len(b))
	return b, nil
}

// Realloc forwards to the wrapped allocator.
func (t *Tracking[T]) Realloc(old []T, n int) ([]T, error) {
	b, err := t.inner.Realloc(old, n)
	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	t.stats.Reallocs++
	t.adjust(len(b) - len(old))
	return b, nil
}

// Free forwards to the wrapped allocator.
func (t *Tracking[T]) Free(b []T) error {
	t.stats.Frees++
	t.adjust(-len(b))
	return t.inner.Free(b)
}

// Stats returns the counters recorded so far.
func (t *Tracking[T]) Stats() Stats { return t.stats }

func (t *Tracking[T]) adjust(delta int) {
	t.stats.LiveSlots += delta
	if t.stats.LiveSlots > t.stats.PeakSlots {
		t.stats.PeakSlots = t.stats.LiveSlots
	}
}
