package registry

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/viant/idmint/tracing"
)

// Registry caches namespace registries loaded from a Store. It is owned by a
// single allocator and is not safe for concurrent use.
type Registry struct {
	store      Store
	logger     *log.Logger
	namespaces map[string]*Namespace
	order      []string
}

// Contains reports whether digest was already issued in namespace, loading the
// namespace on first use.
func (r *Registry) Contains(ctx context.Context, namespace, digest string) (bool, error) {
	ns, err := r.load(ctx, namespace)
	if err != nil {
		return false, err
	}
	return ns.Has(digest), nil
}

// Register records digest in a loaded namespace and marks it dirty.
func (r *Registry) Register(namespace, digest string) error {
	ns, ok := r.namespaces[namespace]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotLoaded, namespace)
	}
	if ns.add(digest) {
		ns.dirty = true
	}
	return nil
}

// Namespace returns a loaded namespace.
func (r *Registry) Namespace(name string) (*Namespace, bool) {
	ns, ok := r.namespaces[name]
	return ns, ok
}

// Namespaces returns the loaded namespace names in load order.
func (r *Registry) Namespaces() []string {
	ret := make([]string, len(r.order))
	copy(ret, r.order)
	return ret
}

// Flush saves every dirty namespace and, once any namespace was loaded, cleans
// up the store scratch state. It stops at the first error; namespaces saved
// before the failure stay saved.
func (r *Registry) Flush(ctx context.Context) (err error) {
	if len(r.order) == 0 {
		return nil
	}
	ctx, span := tracing.StartSpan(ctx, "registry.flush")
	defer func() { tracing.EndSpan(span, err) }()

	for _, name := range r.order {
		ns := r.namespaces[name]
		if !ns.dirty {
			continue
		}
		if err = r.store.Save(ctx, name, ns.digests); err != nil {
			return fmt.Errorf("failed to save namespace %q: %w", name, err)
		}
		ns.dirty = false
		r.logger.Debug("saved registry", "namespace", name, "count", len(ns.digests))
	}
	if err = r.store.Cleanup(ctx); err != nil {
		return fmt.Errorf("failed to clean up registry scratch: %w", err)
	}
	return nil
}

func (r *Registry) load(ctx context.Context, name string) (ns *Namespace, err error) {
	if ns, ok := r.namespaces[name]; ok {
		return ns, nil
	}
	ctx, span := tracing.StartSpan(ctx, "registry.load")
	span.WithAttributes(map[string]string{"namespace": name})
	defer func() { tracing.EndSpan(span, err) }()

	digests, err := r.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	ns = newNamespace(name, digests)
	r.namespaces[name] = ns
	r.order = append(r.order, name)
	return ns, nil
}

// New creates a registry backed by store.
func New(store Store, options ...Option) *Registry {
	ret := &Registry{
		store:      store,
		logger:     log.Default(),
		namespaces: map[string]*Namespace{},
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}
