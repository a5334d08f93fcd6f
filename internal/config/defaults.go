package config

import (
	"github.com/hyh0309/cvue/internal/defs"
	"github.com/hyh0309/cvue/internal/repo"
)

// Default value constants.
const (
	DefaultLogLevel    = "warn"
	DefaultCatalogPath = defs.TemplatesYAML
)

// validLogLevels lists the accepted log.level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// NewDefaultConfig returns a Config with every field set to its compiled default.
func NewDefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: DefaultCatalogPath,
		},
		Hosts: []string{repo.DefaultHost},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
