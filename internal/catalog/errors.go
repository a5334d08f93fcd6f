// Package catalog manages the user's template catalog: an ordered list of
// [models.Template] records persisted to a single YAML file.
//
// Pure operations on [Catalog] values (lookup, add, remove, update, seed)
// keep the single-default invariant. [Store] owns the file, and [Registry]
// combines the two into locked load-modify-save transactions.
package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrTemplateExists indicates a template with the same alias is already in the catalog.
	ErrTemplateExists = errors.New("catalog: template already exists")

	// ErrTemplateNotFound indicates no template matched the alias.
	ErrTemplateNotFound = errors.New("catalog: template not found")

	// ErrNoDefault indicates the catalog has no default template.
	ErrNoDefault = errors.New("catalog: no default template configured")

	// ErrCorruptCatalog indicates the catalog file could not be parsed in strict mode.
	ErrCorruptCatalog = errors.New("catalog: invalid catalog file")
)
