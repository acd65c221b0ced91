package idmint

import (
	"errors"

	"github.com/viant/idmint/service/allocator"
	"github.com/viant/idmint/service/registry"
)

var (
	// ErrConfiguration is returned when the service cannot be built from its configuration.
	ErrConfiguration = errors.New("idmint: invalid configuration")

	// ErrRegistryLoad is returned when a namespace registry cannot be read.
	ErrRegistryLoad = registry.ErrLoad

	// ErrExhaustedRetries is returned when no unique digest was found.
	ErrExhaustedRetries = allocator.ErrExhaustedRetries
)
