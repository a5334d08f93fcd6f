package catalog

import (
	"fmt"
	"slices"

	"github.com/hyh0309/cvue/pkg/models"
)

// Catalog is an ordered list of templates. Order is insertion order and
// is never reshuffled.
type Catalog []models.Template

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Repo        *string
	Description *string
	IsDefault   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Repo == nil && p.Description == nil && p.IsDefault == nil
}

// FindByAlias returns the first template whose alias matches exactly.
func FindByAlias(c Catalog, alias string) (models.Template, bool) {
	i := slices.IndexFunc(c, func(t models.Template) bool { return t.Alias == alias })
	if i < 0 {
		return models.Template{}, false
	}
	return c[i], true
}

// FindDefault returns the first template flagged as default.
func FindDefault(c Catalog) (models.Template, bool) {
	i := slices.IndexFunc(c, func(t models.Template) bool { return t.IsDefault })
	if i < 0 {
		return models.Template{}, false
	}
	return c[i], true
}

// Add appends t and returns the new catalog. It fails with
// ErrTemplateExists when the alias is taken. When t is the default, the
// flag is cleared on every other template first.
func (c Catalog) Add(t models.Template) (Catalog, error) {
	if _, ok := FindByAlias(c, t.Alias); ok {
		return c, fmt.Errorf("add %q: %w", t.Alias, ErrTemplateExists)
	}
	out := slices.Clone(c)
	if t.IsDefault {
		clearDefaults(out)
	}
	return append(out, t), nil
}

// Remove deletes every template with the alias. The second result reports
// whether anything was removed.
func (c Catalog) Remove(alias string) (Catalog, bool) {
	out := slices.DeleteFunc(slices.Clone(c), func(t models.Template) bool { return t.Alias == alias })
	return out, len(out) != len(c)
}

// Update applies p to the template with the alias. Setting IsDefault to
// true clears the flag on all templates before the target is located.
func (c Catalog) Update(alias string, p Patch) (Catalog, error) {
	out := slices.Clone(c)
	if p.IsDefault != nil && *p.IsDefault {
		clearDefaults(out)
	}

	i := slices.IndexFunc(out, func(t models.Template) bool { return t.Alias == alias })
	if i < 0 {
		return c, fmt.Errorf("update %q: %w", alias, ErrTemplateNotFound)
	}

	if p.Repo != nil {
		out[i].Repo = *p.Repo
	}
	if p.Description != nil {
		out[i].Description = *p.Description
	}
	if p.IsDefault != nil {
		out[i].IsDefault = *p.IsDefault
	}
	return out, nil
}

// SeedReport lists what Seed did with each built-in template, by alias.
type SeedReport struct {
	Added   []string
	Updated []string
	Skipped []string
}

// Changed reports whether Seed modified the catalog.
func (r SeedReport) Changed() bool {
	return len(r.Added) > 0 || len(r.Updated) > 0
}

// SeedOutcome is what Seed did with a single template.
type SeedOutcome int

const (
	SeedAdded SeedOutcome = iota
	SeedUpdated
	SeedSkipped
)

func (o SeedOutcome) String() string {
	switch o {
	case SeedAdded:
		return "added"
	case SeedUpdated:
		return "updated"
	default:
		return "skipped"
	}
}

// SeedObserver is called once per template, in order, as Seed handles it.
type SeedObserver func(alias string, outcome SeedOutcome)

// Seed merges templates into the catalog. Missing aliases are appended.
// Existing aliases are skipped, or overwritten in place when force is set.
func (c Catalog) Seed(templates []models.Template, force bool) (Catalog, SeedReport) {
	return c.SeedEach(templates, force, nil)
}

// SeedEach is Seed with an observer. observe may be nil.
func (c Catalog) SeedEach(templates []models.Template, force bool, observe SeedObserver) (Catalog, SeedReport) {
	out := slices.Clone(c)
	var report SeedReport

	for _, t := range templates {
		var outcome SeedOutcome
		i := slices.IndexFunc(out, func(e models.Template) bool { return e.Alias == t.Alias })
		switch {
		case i >= 0 && !force:
			outcome = SeedSkipped
			report.Skipped = append(report.Skipped, t.Alias)
		case i >= 0:
			if t.IsDefault {
				clearDefaults(out)
			}
			out[i] = t
			outcome = SeedUpdated
			report.Updated = append(report.Updated, t.Alias)
		default:
			if t.IsDefault {
				clearDefaults(out)
			}
			out = append(out, t)
			outcome = SeedAdded
			report.Added = append(report.Added, t.Alias)
		}
		if observe != nil {
			observe(t.Alias, outcome)
		}
	}

	return out, report
}

func clearDefaults(c Catalog) {
	for i := range c {
		c[i].IsDefault = false
	}
}
