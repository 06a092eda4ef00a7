//go:build linux

package rawmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Remap resizes region b to n bytes, moving it if the kernel must. Bytes up
// to min(len(b), n) are preserved and any new tail is zeroed. On success b
// must no longer be used; on failure b is still mapped and intact.
func Remap(b []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	if len(b) == 0 {
		return Map(n)
	}
	data, err := unix.Mremap(b, n, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, fmt.Errorf("rawmem: mremap %d -> %d bytes: %w", len(b), n, err)
	}
	return data, nil
}
