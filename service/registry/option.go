package registry

import "github.com/charmbracelet/log"

// Option customises a Registry.
type Option func(r *Registry)

// WithLogger sets the registry logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
