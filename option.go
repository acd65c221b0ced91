package idmint

import (
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/idmint/service/registry"
	"github.com/viant/idmint/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets the logger; by default one is built from Config.LogLevel.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS sets the storage service used for the registry directory.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithStore replaces the file based registry store, for example with an
// alternative backend. RegistryPath is still required when uniqueness is enforced.
func WithStore(store registry.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter writing
// to outputFile, or stdout when outputFile is empty.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
