package idmint

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/idmint/internal/logging"
	"github.com/viant/idmint/service/allocator"
	"github.com/viant/idmint/service/registry"
	"github.com/viant/idmint/service/registry/fs"
)

// Service issues identifiers and owns the namespace registries for its lifetime.
// It must be closed to persist newly issued identifiers.
type Service struct {
	config    *Config
	logger    *log.Logger
	fs        afs.Service
	store     registry.Store
	registry  *registry.Registry
	allocator *allocator.Service
}

// Make returns an identifier for content.
func (s *Service) Make(ctx context.Context, content []byte, options ...allocator.Option) (string, error) {
	return s.allocator.Make(ctx, content, options...)
}

// MakeString returns an identifier for the UTF-8 bytes of content.
func (s *Service) MakeString(ctx context.Context, content string, options ...allocator.Option) (string, error) {
	return s.allocator.Make(ctx, []byte(content), options...)
}

// Store returns the registry store, or nil when uniqueness is not enforced.
func (s *Service) Store() registry.Store {
	return s.store
}

// Close writes back every namespace that gained identifiers, after backing up
// its previous content. A failed flush may be retried; after a successful one
// further calls do nothing.
func (s *Service) Close(ctx context.Context) error {
	return s.allocator.Close(ctx)
}

func (s *Service) init(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		logger, err := logging.New(s.config.LogLevel, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		s.logger = logger
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	var reg *registry.Registry
	if s.config.EnsureUnique {
		if err := s.ensureRegistryDir(ctx); err != nil {
			return err
		}
		if s.store == nil {
			store, err := fs.New(s.config.RegistryPath, fs.WithFS(s.fs), fs.WithLogger(s.logger))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfiguration, err)
			}
			s.store = store
		}
		reg = registry.New(s.store, registry.WithLogger(s.logger))
	}
	s.registry = reg
	var err error
	s.allocator, err = allocator.New(allocator.Config{
		EnsureUnique: s.config.EnsureUnique,
		Namespace:    s.config.Namespace,
		IDLength:     s.config.IDLength,
	}, reg, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func (s *Service) ensureRegistryDir(ctx context.Context) error {
	URL := url.Normalize(s.config.RegistryPath, file.Scheme)
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return fmt.Errorf("%w: registryPath %q does not exist: %w", ErrConfiguration, s.config.RegistryPath, err)
	}
	if !object.IsDir() {
		return fmt.Errorf("%w: registryPath %q is not a directory", ErrConfiguration, s.config.RegistryPath)
	}
	return nil
}

// New creates a service. With no WithConfig option DefaultConfig is used,
// which enforces uniqueness and therefore fails until RegistryPath is set.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.config == nil {
		ret.config = DefaultConfig()
	}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

// Run creates a service, passes it to fn and closes it on every exit path. The
// close error is joined with the error returned by fn.
func Run(ctx context.Context, fn func(srv *Service) error, options ...Option) (err error) {
	srv, err := New(ctx, options...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, srv.Close(ctx))
	}()
	return fn(srv)
}
