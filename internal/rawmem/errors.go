package rawmem

import "errors"

// ErrBadLength indicates a non-positive region length was requested.
var ErrBadLength = errors.New("rawmem: length must be positive")
