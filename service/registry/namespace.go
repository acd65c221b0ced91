package registry

// Namespace holds the digests issued within one namespace.
type Namespace struct {
	Name    string
	entries map[string]struct{}
	digests []string
	dirty   bool
}

func newNamespace(name string, digests []string) *Namespace {
	ret := &Namespace{
		Name:    name,
		entries: make(map[string]struct{}, len(digests)),
		digests: make([]string, 0, len(digests)),
	}
	for _, digest := range digests {
		ret.add(digest)
	}
	return ret
}

func (n *Namespace) add(digest string) bool {
	if _, ok := n.entries[digest]; ok {
		return false
	}
	n.entries[digest] = struct{}{}
	n.digests = append(n.digests, digest)
	return true
}

// Has reports whether digest was issued in the namespace.
func (n *Namespace) Has(digest string) bool {
	_, ok := n.entries[digest]
	return ok
}

// Digests returns the namespace digests in insertion order.
func (n *Namespace) Digests() []string {
	ret := make([]string, len(n.digests))
	copy(ret, n.digests)
	return ret
}

// Dirty reports whether the namespace gained digests since it was loaded or saved.
func (n *Namespace) Dirty() bool { return n.dirty }
