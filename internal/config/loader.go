package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hyh0309/cvue/internal/defs"
	"gopkg.in/yaml.v3"
)

// Loader reads the settings file on top of compiled defaults.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With("module", "config")}
}

// DefaultPath returns the settings file location: $CVUE_CONFIG when set,
// otherwise cvue/config.yaml under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(defs.EnvConfig); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, defs.ConfigDirName, defs.ConfigYAML), nil
}

// Load reads path and returns a Config with defaults applied for missing
// fields. A missing file yields the defaults; invalid YAML is an error.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		l.logger.Debug("settings file not found, using defaults", "path", path)
		return cfg, nil
	}

	// An explicit empty value in the file still falls back to the default.
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	l.logger.Debug("settings loaded", "path", path)
	return cfg, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into target.
// Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}

	return true, nil
}
