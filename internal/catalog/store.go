package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/hyh0309/cvue/internal/defs"
)

// lockRetryDelay is the polling interval while waiting for the catalog lock.
const lockRetryDelay = 50 * time.Millisecond

// Store reads and writes the catalog file.
type Store struct {
	path   string
	strict bool
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStrict makes Load fail with ErrCorruptCatalog on unparsable content
// instead of returning an empty catalog.
func WithStrict(strict bool) StoreOption {
	return func(s *Store) { s.strict = strict }
}

// WithLogger sets the logger used for fail-open warnings.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   filepath.Clean(path),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("module", "catalog", "path", s.path)
	return s
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog. A missing file is an empty catalog. Unreadable
// or malformed content is also an empty catalog, logged as a warning,
// unless the store is strict.
func (s *Store) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("catalog file not found, starting empty")
			return Catalog{}, nil
		}
		if s.strict {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		s.logger.Warn("catalog file unreadable, treating as empty", "error", err)
		return Catalog{}, nil
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		if s.strict {
			return nil, fmt.Errorf("parse %s: %w: %v", s.path, ErrCorruptCatalog, err)
		}
		s.logger.Warn("catalog file malformed, treating as empty", "error", err)
		return Catalog{}, nil
	}
	if c == nil {
		c = Catalog{}
	}

	s.logger.Debug("catalog loaded", "templates", len(c))
	return c, nil
}

// Save overwrites the catalog file with c.
func (s *Store) Save(ctx context.Context, c Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil {
		c = Catalog{}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	s.logger.Debug("catalog saved", "templates", len(c))
	return nil
}

// Lock takes the inter-process lock guarding catalog mutations. It waits
// until the lock is free or ctx is done. The returned func releases it.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	fl := flock.New(s.path + defs.LockSuffix)
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if !locked {
		// TryLockContext only gives up together with an error.
		return nil, fmt.Errorf("lock catalog: %w", err)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn("failed to release catalog lock", "error", err)
		}
	}, nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cvue-catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
