// Package idgen computes content digests and renders them as namespaced
// identifiers. It lives under `internal` because callers should go through the
// allocator, which owns uniqueness checking.
package idgen
