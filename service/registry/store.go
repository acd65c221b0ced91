package registry

import "context"

// Store persists namespace registries.
type Store interface {
	// Load returns the digests recorded for namespace.
	Load(ctx context.Context, namespace string) ([]string, error)

	// Save backs up the current registry of namespace and replaces it with digests.
	Save(ctx context.Context, namespace string, digests []string) error

	// Cleanup removes any scratch state created by Load.
	Cleanup(ctx context.Context) error

	// Create initialises an empty registry for namespace unless one exists.
	Create(ctx context.Context, namespace string) error
}
