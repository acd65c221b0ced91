package allocator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/viant/idmint/internal/clock"
	"github.com/viant/idmint/internal/idgen"
	"github.com/viant/idmint/service/registry"
	"github.com/viant/idmint/tracing"
)

// Service issues identifiers, checking them against a registry when uniqueness is enforced.
type Service struct {
	config   Config
	registry *registry.Registry
	logger   *log.Logger
	closed   bool
}

// Make returns an identifier for content: /digest or /namespace/digest.
func (s *Service) Make(ctx context.Context, content []byte, options ...Option) (id string, err error) {
	if s.closed {
		return "", ErrClosed
	}
	req := &request{}
	for _, option := range options {
		option(req)
	}
	namespace := s.config.Namespace
	if req.namespace != nil {
		namespace = *req.namespace
	}
	length := s.config.IDLength
	if req.idLength != 0 {
		length = req.idLength
	}
	when := clock.Now()
	if req.timestamp != nil {
		when = *req.timestamp
	}

	ctx, span := tracing.StartSpan(ctx, "allocator.make")
	span.WithAttributes(map[string]string{"namespace": namespace, "idLength": strconv.Itoa(length)})
	defer func() { tracing.EndSpan(span, err) }()

	data := idgen.Input(content, when)
	digest, err := idgen.Sum(data, length)
	if err != nil {
		return "", err
	}
	if !s.config.EnsureUnique {
		return idgen.Format(namespace, digest), nil
	}
	if digest, err = s.unique(ctx, namespace, data, length, digest); err != nil {
		return "", err
	}
	if err = s.registry.Register(namespace, digest); err != nil {
		return "", err
	}
	return idgen.Format(namespace, digest), nil
}

// unique extends the digest one byte at a time until it is absent from the namespace registry.
func (s *Service) unique(ctx context.Context, namespace string, data []byte, length int, digest string) (string, error) {
	for tries := 0; ; tries++ {
		taken, err := s.registry.Contains(ctx, namespace, digest)
		if err != nil {
			return "", err
		}
		if !taken {
			return digest, nil
		}
		s.logger.Warn("hash collision", "digest", digest, "namespace", namespace, "attempt", tries+1)
		if tries >= MaxTries || length >= idgen.MaxLength {
			return "", fmt.Errorf("%w in namespace %q after %d tries", ErrExhaustedRetries, namespace, tries)
		}
		length++
		if digest, err = idgen.Sum(data, length); err != nil {
			return "", err
		}
	}
}

// Close flushes the registry. Once a flush succeeds subsequent calls are no-ops;
// after a failed flush the allocator stays open and Close may be retried.
func (s *Service) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	if s.config.EnsureUnique {
		if err := s.registry.Flush(ctx); err != nil {
			return err
		}
	}
	s.closed = true
	return nil
}

// New creates an allocator. A registry is required when config.EnsureUnique is set.
func New(config Config, reg *registry.Registry, logger *log.Logger) (*Service, error) {
	if config.IDLength == 0 {
		config.IDLength = DefaultIDLength
	}
	if config.IDLength < idgen.MinLength || config.IDLength > idgen.MaxLength {
		return nil, fmt.Errorf("%w: %d", idgen.ErrInvalidLength, config.IDLength)
	}
	if config.EnsureUnique && reg == nil {
		return nil, fmt.Errorf("allocator: registry is required when uniqueness is enforced")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		config:   config,
		registry: reg,
		logger:   logger,
	}, nil
}
