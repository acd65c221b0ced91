package idmint

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/idmint/internal/idgen"
	"github.com/viant/idmint/internal/logging"
	"github.com/viant/idmint/service/allocator"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration. It can
// be populated from JSON or YAML. A zero IDLength selects the default length.
type Config struct {
	EnsureUnique bool   `json:"ensureUnique" yaml:"ensureUnique"`
	RegistryPath string `json:"registryPath,omitempty" yaml:"registryPath,omitempty"`
	Namespace    string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	IDLength     int    `json:"idLength,omitempty" yaml:"idLength,omitempty"`
	LogLevel     string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

// DefaultConfig returns a Config with uniqueness enforced and 3 byte digests.
// RegistryPath has no default and must be set before New.
func DefaultConfig() *Config {
	return &Config{
		EnsureUnique: true,
		IDLength:     allocator.DefaultIDLength,
		LogLevel:     logging.DefaultLevel,
	}
}

// Validate returns an error wrapping ErrConfiguration describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrConfiguration)
	}
	if c.EnsureUnique && c.RegistryPath == "" {
		return fmt.Errorf("%w: ensureUnique is set but no registryPath was provided", ErrConfiguration)
	}
	if c.IDLength != 0 && (c.IDLength < idgen.MinLength || c.IDLength > idgen.MaxLength) {
		return fmt.Errorf("%w: idLength must be within %d..%d, got %d", ErrConfiguration, idgen.MinLength, idgen.MaxLength, c.IDLength)
	}
	if err := logging.ValidateLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

// LoadConfig reads a YAML configuration from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	return ret, nil
}
