package registry

import "errors"

var (
	// ErrLoad is returned when a namespace registry cannot be read from its store.
	ErrLoad = errors.New("registry: failed to load namespace")

	// ErrNotLoaded is returned when registering into a namespace that was never loaded.
	ErrNotLoaded = errors.New("registry: namespace not loaded")

	// ErrInvalidNamespace indicates a namespace that cannot be mapped onto a registry file.
	ErrInvalidNamespace = errors.New("registry: invalid namespace")
)
