package allocator

import "time"

// Option customises a single Make call.
type Option func(r *request)

type request struct {
	namespace *string
	timestamp *time.Time
	idLength  int
}

// WithNamespace overrides the default namespace; an empty string selects the
// default (unnamed) namespace.
func WithNamespace(namespace string) Option {
	return func(r *request) { r.namespace = &namespace }
}

// WithTimestamp overrides the call-time timestamp mixed into the digest.
func WithTimestamp(timestamp time.Time) Option {
	return func(r *request) { r.timestamp = &timestamp }
}

// WithIDLength overrides the default digest size in bytes.
func WithIDLength(length int) Option {
	return func(r *request) { r.idLength = length }
}
