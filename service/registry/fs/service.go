package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/idmint/internal/clock"
	"github.com/viant/idmint/service/registry"
)

// ScratchDir is the sub directory holding pristine copies of loaded registries.
const ScratchDir = "tmp"

// Service implements a registry store over a local directory. Each namespace is a text
// file named after the namespace holding one hex digest per line.
type Service struct {
	baseURL string
	fs      afs.Service
	logger  *log.Logger
	rename  func(oldPath, newPath string) error
}

// Ensure Service implements registry.Store
var _ registry.Store = (*Service)(nil)

// ValidateNamespace checks that namespace maps onto a file directly under the registry directory.
func ValidateNamespace(namespace string) error {
	switch {
	case namespace == "":
		return fmt.Errorf("%w: default namespace has no registry file", registry.ErrInvalidNamespace)
	case namespace == "." || namespace == "..", namespace == ScratchDir:
		return fmt.Errorf("%w: %q is reserved", registry.ErrInvalidNamespace, namespace)
	case strings.ContainsAny(namespace, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", registry.ErrInvalidNamespace, namespace)
	}
	return nil
}

// Load reads the registry of namespace after stashing an unaltered copy in the scratch directory.
func (s *Service) Load(ctx context.Context, namespace string) ([]string, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return nil, fmt.Errorf("%w %q: %w", registry.ErrLoad, namespace, err)
	}
	URL := s.URL(namespace)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: failed to check registry file %s: %w", registry.ErrLoad, namespace, URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w %q: registry file %s does not exist", registry.ErrLoad, namespace, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: failed to read registry file %s: %w", registry.ErrLoad, namespace, URL, err)
	}
	if err = s.snapshot(ctx, namespace, data); err != nil {
		return nil, fmt.Errorf("%w %q: %w", registry.ErrLoad, namespace, err)
	}
	digests := parse(data)
	s.logger.Info("read ids from registry file", "count", len(digests), "url", URL)
	return digests, nil
}

// Save replaces the registry file of namespace with digests, one per line,
// keeping a timestamped backup of the previous content. The new content is
// written to a temporary file first and renamed over the original, so a
// failed save leaves the registry file, and no backup, behind.
func (s *Service) Save(ctx context.Context, namespace string, digests []string) error {
	URL := s.URL(namespace)
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to locate registry file %s: %w", URL, err)
	}
	tempURL := URL + "." + uuid.New().String() + ".tmp"
	content := strings.Join(digests, "\n")
	if err = s.fs.Upload(ctx, tempURL, object.Mode().Perm(), strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write registry file %s: %w", tempURL, err)
	}
	backupURL := BackupURL(URL, clock.ISOFormat(clock.Now()))
	if err = s.fs.Copy(ctx, URL, backupURL); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		return fmt.Errorf("failed to write backup %s: %w", backupURL, err)
	}
	if err = s.rename(file.Path(tempURL), file.Path(URL)); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		_ = s.fs.Delete(ctx, backupURL)
		return fmt.Errorf("failed to replace registry file %s: %w", URL, err)
	}
	s.logger.Info("wrote ids to registry file", "count", len(digests), "url", URL, "backup", backupURL)
	return nil
}

// Cleanup removes the scratch directory.
func (s *Service) Cleanup(ctx context.Context) error {
	scratchURL := url.Join(s.baseURL, ScratchDir)
	exists, err := s.fs.Exists(ctx, scratchURL)
	if err != nil || !exists {
		return err
	}
	if err = s.fs.Delete(ctx, scratchURL); err != nil {
		return fmt.Errorf("failed to remove scratch directory %s: %w", scratchURL, err)
	}
	return nil
}

// Create writes an empty registry file for namespace unless it already exists.
func (s *Service) Create(ctx context.Context, namespace string) error {
	if err := ValidateNamespace(namespace); err != nil {
		return err
	}
	URL := s.URL(namespace)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check registry file %s: %w", URL, err)
	}
	if exists {
		return nil
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("")); err != nil {
		return fmt.Errorf("failed to create registry file %s: %w", URL, err)
	}
	return nil
}

// URL returns the registry file URL of namespace.
func (s *Service) URL(namespace string) string {
	return url.Join(s.baseURL, namespace)
}

// ScratchURL returns the scratch snapshot URL of namespace.
func (s *Service) ScratchURL(namespace string) string {
	return url.Join(s.baseURL, ScratchDir, namespace)
}

// BackupURL returns the backup location of a registry file for the given stamp.
func BackupURL(URL, stamp string) string {
	return URL + "." + stamp + ".bak"
}

func (s *Service) snapshot(ctx context.Context, namespace string, data []byte) error {
	scratchURL := url.Join(s.baseURL, ScratchDir)
	exists, err := s.fs.Exists(ctx, scratchURL)
	if err != nil {
		return fmt.Errorf("failed to check scratch directory %s: %w", scratchURL, err)
	}
	if !exists {
		if err := s.fs.Create(ctx, scratchURL, file.DefaultDirOsMode, true); err != nil {
			return fmt.Errorf("failed to create scratch directory %s: %w", scratchURL, err)
		}
	}
	snapshotURL := s.ScratchURL(namespace)
	if err := s.fs.Upload(ctx, snapshotURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to snapshot registry to %s: %w", snapshotURL, err)
	}
	return nil
}

func parse(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	ret := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimRight(line, "\r"); line != "" {
			ret = append(ret, line)
		}
	}
	return ret
}

// New creates a registry store rooted at baseURL.
func New(baseURL string, options ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("registry path cannot be empty")
	}
	baseURL = url.Normalize(baseURL, file.Scheme)
	if scheme := url.Scheme(baseURL, file.Scheme); scheme != file.Scheme {
		return nil, fmt.Errorf("registry path must be a local directory, got %s scheme", scheme)
	}
	ret := &Service{
		baseURL: baseURL,
		fs:      afs.New(),
		logger:  log.Default(),
		rename:  os.Rename,
	}
	for _, option := range options {
		option(ret)
	}
	return ret, nil
}
