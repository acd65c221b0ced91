// Package registry tracks, per namespace, the digests that have already been
// issued. Namespaces are loaded lazily from a Store, grow in memory while the
// allocator runs, and are written back by Flush when the allocator closes.
package registry
