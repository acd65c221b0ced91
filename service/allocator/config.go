package allocator

const (
	// DefaultIDLength is the default digest size in bytes.
	DefaultIDLength = 3
	// MaxTries bounds the collision extensions attempted by Make.
	MaxTries = 10
)

// Config represents allocator configuration
type Config struct {
	// EnsureUnique enables registry checking; a registry is then required.
	EnsureUnique bool
	// Namespace is used when Make is called without WithNamespace.
	Namespace string
	// IDLength is the default digest size in bytes.
	IDLength int
}

// DefaultConfig returns the default allocator configuration
func DefaultConfig() Config {
	return Config{
		EnsureUnique: true,
		IDLength:     DefaultIDLength,
	}
}
