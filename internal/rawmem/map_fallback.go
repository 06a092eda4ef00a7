//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package rawmem

// Mapped reports whether regions are backed by real page mappings.
const Mapped = false

// Map returns n zeroed bytes from the Go heap when mmap is not available.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	return make([]byte, n), nil
}

// Remap copies b into a fresh n-byte slice.
func Remap(b []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	data := make([]byte, n)
	copy(data, b)
	return data, nil
}

// Unmap is a no-op; the garbage collector owns heap regions.
func Unmap([]byte) error { return nil }
