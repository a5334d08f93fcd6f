package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// hostnamePattern matches a bare DNS hostname with no scheme, port or path.
var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

// Validate checks the configuration for correctness and returns every
// problem found as a *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateCatalog(&cfg.Catalog)...)
	errs = append(errs, validateHosts(cfg.Hosts)...)
	errs = append(errs, validateLogLevel(cfg.Log.Level)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateCatalog(c *CatalogConfig) []ValidationError {
	if strings.TrimSpace(c.Path) == "" {
		return []ValidationError{{
			Field:   "catalog.path",
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

func validateHosts(hosts []string) []ValidationError {
	if len(hosts) == 0 {
		return []ValidationError{{
			Field:   "hosts",
			Message: "at least one host is required (example: hosts: [github.com])",
			Wrapped: ErrInvalidConfig,
		}}
	}

	var errs []ValidationError
	for i, h := range hosts {
		if !hostnamePattern.MatchString(h) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("hosts[%d]", i),
				Message: "must be a bare hostname",
				Value:   h,
				Wrapped: ErrInvalidHost,
			})
		}
	}
	return errs
}

func validateLogLevel(level string) []ValidationError {
	if slices.Contains(validLogLevels, strings.ToLower(level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "log.level",
		Message: "must be one of: " + strings.Join(validLogLevels, ", "),
		Value:   level,
		Wrapped: ErrInvalidLogLevel,
	}}
}
