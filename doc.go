// Package idmint issues short, content-derived identifiers for catalog records.
//
// An identifier is the BLAKE2b digest of an ISO-8601 timestamp followed by the
// record content, rendered as lowercase hex and optionally prefixed by a
// namespace:
//
//	/46ee55
//	/places/8c2dcb
//
// When uniqueness is enforced every namespace is backed by a registry file
// holding the digests issued so far. Colliding digests are extended one byte at
// a time. Registries are written back, after a timestamped backup, when the
// service is closed:
//
//	err := idmint.Run(ctx, func(srv *idmint.Service) error {
//		id, err := srv.MakeString(ctx, "Athens", allocator.WithNamespace("places"))
//		...
//	}, idmint.WithConfig(&idmint.Config{EnsureUnique: true, RegistryPath: "/var/lib/idmint"}))
package idmint
