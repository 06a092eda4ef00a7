package vector

import (
	"io"
	"log/slog"

	"github.com/joshuapare/rawvec/alloc"
)

// Options configures a Vector. A nil *Options uses the defaults.
type Options[T any] struct {
	// Allocator provides the slot storage. Default: alloc.Heap[T]{}.
	Allocator alloc.Allocator[T]

	// Destructor runs once for every element leaving the vector.
	// Default: none.
	Destructor func(*T)

	// Logger receives Debug records for reallocations. Default: discard.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
