package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/hyh0309/cvue/pkg/models"
)

// Registry is the catalog as seen by commands. Each call loads the file
// fresh; mutations run under the store lock and save by full overwrite.
type Registry struct {
	store    *Store
	builtins []models.Template
}

// NewRegistry creates a Registry over store seeded with the built-in templates.
func NewRegistry(store *Store) *Registry {
	return &Registry{store: store, builtins: Builtin()}
}

// Path returns the backing file path.
func (r *Registry) Path() string {
	return r.store.Path()
}

// List returns the whole catalog.
func (r *Registry) List(ctx context.Context) (Catalog, error) {
	return r.store.Load(ctx)
}

// Get returns the template with the alias.
func (r *Registry) Get(ctx context.Context, alias string) (models.Template, error) {
	c, err := r.store.Load(ctx)
	if err != nil {
		return models.Template{}, err
	}
	t, ok := FindByAlias(c, alias)
	if !ok {
		return models.Template{}, fmt.Errorf("get %q: %w", alias, ErrTemplateNotFound)
	}
	return t, nil
}

// Default returns the default template.
func (r *Registry) Default(ctx context.Context) (models.Template, error) {
	c, err := r.store.Load(ctx)
	if err != nil {
		return models.Template{}, err
	}
	t, ok := FindDefault(c)
	if !ok {
		return models.Template{}, ErrNoDefault
	}
	return t, nil
}

// Add inserts t. It returns ErrTemplateExists, without saving, when the alias is taken.
func (r *Registry) Add(ctx context.Context, t models.Template) error {
	return r.mutate(ctx, func(c Catalog) (Catalog, bool, error) {
		out, err := c.Add(t)
		if err != nil {
			return c, false, err
		}
		return out, true, nil
	})
}

// Remove deletes the template with the alias, or returns ErrTemplateNotFound.
func (r *Registry) Remove(ctx context.Context, alias string) error {
	return r.mutate(ctx, func(c Catalog) (Catalog, bool, error) {
		out, removed := c.Remove(alias)
		if !removed {
			return c, false, fmt.Errorf("remove %q: %w", alias, ErrTemplateNotFound)
		}
		return out, true, nil
	})
}

// Update applies p to the template with the alias, or returns ErrTemplateNotFound.
func (r *Registry) Update(ctx context.Context, alias string, p Patch) error {
	return r.mutate(ctx, func(c Catalog) (Catalog, bool, error) {
		out, err := c.Update(alias, p)
		if err != nil {
			return c, false, err
		}
		return out, true, nil
	})
}

// Builtins returns the templates Init seeds, in seeding order.
func (r *Registry) Builtins() []models.Template {
	return slices.Clone(r.builtins)
}

// Init seeds the catalog with the built-in templates. observe, when not
// nil, is called for each built-in while the lock is held.
func (r *Registry) Init(ctx context.Context, force bool, observe SeedObserver) (SeedReport, error) {
	var report SeedReport
	err := r.mutate(ctx, func(c Catalog) (Catalog, bool, error) {
		var out Catalog
		out, report = c.SeedEach(r.builtins, force, observe)
		return out, true, nil
	})
	return report, err
}

// mutate runs fn inside a locked load-modify-save transaction. fn reports
// whether the result should be saved.
func (r *Registry) mutate(ctx context.Context, fn func(Catalog) (Catalog, bool, error)) error {
	unlock, err := r.store.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	c, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	out, save, fnErr := fn(c)
	if save {
		if err := r.store.Save(ctx, out); err != nil {
			return err
		}
	}
	return fnErr
}
