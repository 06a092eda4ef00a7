//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package rawmem

// Remap resizes region b to n bytes. There is no mremap(2) here, so a new
// region is mapped, the common prefix copied and b unmapped. On failure b is
// still mapped and intact.
func Remap(b []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	data, err := Map(n)
	if err != nil {
		return nil, err
	}
	copy(data, b)
	if err := Unmap(b); err != nil {
		_ = Unmap(data)
		return nil, err
	}
	return data, nil
}
