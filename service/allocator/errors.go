package allocator

import "errors"

var (
	// ErrExhaustedRetries is returned when every collision extension still collided.
	ErrExhaustedRetries = errors.New("allocator: could not find unique hash")

	// ErrClosed is returned by Make once the allocator has been closed.
	ErrClosed = errors.New("allocator: closed")
)
