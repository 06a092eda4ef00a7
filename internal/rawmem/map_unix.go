//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rawmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mapped reports whether regions are backed by real page mappings.
const Mapped = true

// Map returns n bytes of zeroed anonymous memory.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("rawmem: mmap %d bytes: %w", n, err)
	}
	return data, nil
}

// Unmap releases a region returned by Map or Remap. The slice must be the
// exact one returned, not a reslice of it.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	err := unix.Munmap(b)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
