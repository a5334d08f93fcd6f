package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/hyh0309/cvue/internal/defs"
)

// Overrides carries command-line values that win over every other layer.
// Nil fields leave the loaded value untouched.
type Overrides struct {
	CatalogPath *string
	LogLevel    *string
	NoColor     *bool
}

// ConfigManager provides thread-safe access to the merged settings.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu     sync.RWMutex
	config *Config
	path   string
	loader *Loader
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager(logger *slog.Logger) *ConfigManager {
	return &ConfigManager{loader: NewLoader(logger)}
}

// Load merges defaults, the settings file at path, environment overrides
// and flag overrides, in that order, and validates the result.
// An empty path resolves to DefaultPath().
func (m *ConfigManager) Load(path string, ov Overrides) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := m.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyEnvOverrides(cfg)
	applyOverrides(cfg, ov)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.path = path
	return cfg, nil
}

// Get returns a copy of the current configuration.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Get() (Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return Config{}, ErrNotInitialized
	}
	c := *m.config
	c.Hosts = append([]string(nil), m.config.Hosts...)
	return c, nil
}

// Path returns the settings file path used by the last Load.
func (m *ConfigManager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// applyEnvOverrides applies CVUE_* environment variables over file values.
func applyEnvOverrides(cfg *Config) {
	if p := os.Getenv(defs.EnvCatalog); p != "" {
		cfg.Catalog.Path = p
	}
	if hosts := os.Getenv(defs.EnvHosts); hosts != "" {
		cfg.Hosts = splitList(hosts)
	}
	if env := os.Getenv(defs.EnvTokenEnv); env != "" {
		cfg.Auth.TokenEnv = env
	}
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if isTruthy(os.Getenv(defs.EnvNoColor)) {
		cfg.UI.NoColor = true
	}
	if isTruthy(os.Getenv(defs.EnvStrict)) {
		cfg.Catalog.Strict = true
	}
}

func applyOverrides(cfg *Config, ov Overrides) {
	if ov.CatalogPath != nil && *ov.CatalogPath != "" {
		cfg.Catalog.Path = *ov.CatalogPath
	}
	if ov.LogLevel != nil && *ov.LogLevel != "" {
		cfg.Log.Level = *ov.LogLevel
	}
	if ov.NoColor != nil && *ov.NoColor {
		cfg.UI.NoColor = true
	}
}

func isTruthy(v string) bool {
	return v == "true" || v == "1"
}

// splitList splits a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
