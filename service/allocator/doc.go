// Package allocator issues content-derived identifiers. When uniqueness is
// enforced it owns the namespace registry: it is the only component allowed to
// register digests and it flushes the registry when closed.
package allocator
