package clone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyh0309/cvue/internal/catalog"
	"github.com/hyh0309/cvue/internal/core/git"
	"github.com/hyh0309/cvue/internal/core/project"
	"github.com/hyh0309/cvue/internal/repo"
	"github.com/hyh0309/cvue/internal/ui"
	"github.com/hyh0309/cvue/pkg/models"
)

// customRepoOption is the extra entry offered after the catalog in Interactive.
const customRepoOption = "Enter a custom repository..."

// Templates is the read side of the catalog used to resolve sources.
type Templates interface {
	List(ctx context.Context) (catalog.Catalog, error)
	Get(ctx context.Context, alias string) (models.Template, error)
	Default(ctx context.Context) (models.Template, error)
}

// Reporter receives the user-facing status lines of a run.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
}

// Request describes one clone.
type Request struct {
	// Template is an alias or a repository reference. Empty selects the
	// default template.
	Template string
	// Target is the directory name. Empty derives it from the repository.
	Target string
	// Token, when set, is embedded in the HTTPS URL.
	Token string
	// Dir is the directory Target is created in. Empty means the current directory.
	Dir string
}

// Result is the outcome of a run.
type Result struct {
	// Template is the alias used, empty when the source was a literal reference.
	Template string
	// Source is the repository reference before normalization.
	Source string
	// URL is the clone URL with any token masked.
	URL string
	// Target is the validated directory name.
	Target string
	// Path is the directory the repository was cloned into.
	Path string
	// Aborted is set when the user declined to continue. It is not an error.
	Aborted bool
}

// Pipeline runs clones. Every field except Progress and Logger is required.
type Pipeline struct {
	Templates Templates
	Resolver  *repo.Resolver
	Cloner    git.Cloner
	Prompter  ui.Prompter
	Progress  ui.Progress
	Out       Reporter
	Logger    *slog.Logger
}

// Run executes a single clone. The stages run strictly in order: resolve
// the source, resolve and validate the target, confirm overwriting an
// existing directory, build the URL, clone.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	log := p.logger()

	res, err := p.resolveSource(ctx, req.Template)
	if err != nil {
		return Result{}, err
	}
	log.Debug("source resolved", "template", res.Template, "source", res.Source)

	res.Target = req.Target
	if res.Target == "" {
		res.Target = repo.TargetName(res.Source)
	}
	if err := project.ValidateName(res.Target); err != nil {
		return Result{}, err
	}
	res.Path, err = childPath(req.Dir, res.Target)
	if err != nil {
		return Result{}, err
	}

	proceed, err := p.prepareTarget(res.Path)
	if err != nil {
		return Result{}, err
	}
	if !proceed {
		p.Out.Info("Operation cancelled")
		res.Aborted = true
		return res, nil
	}

	url, err := p.Resolver.Normalize(res.Source)
	if err != nil {
		return Result{}, err
	}
	authed, err := repo.AddAuth(url, req.Token)
	if err != nil {
		return Result{}, err
	}
	res.URL = repo.Redact(authed, req.Token)

	p.Out.Info(fmt.Sprintf("Cloning %s into %s", res.URL, res.Path))
	log.Debug("invoking git clone", "url", res.URL, "path", res.Path)

	if err := p.Cloner.Clone(ctx, authed, res.Path); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Interactive lets the user pick a catalog entry or type a repository
// reference, asks for the target directory, then runs the clone.
// An empty catalog prints a warning and returns an aborted Result.
func (p *Pipeline) Interactive(ctx context.Context, req Request) (Result, error) {
	templates, err := p.Templates.List(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(templates) == 0 {
		p.Out.Warn("No templates available; run 'cvue init' to seed the catalog")
		return Result{Aborted: true}, nil
	}

	options := make([]string, 0, len(templates)+1)
	def := 0
	for i, t := range templates {
		options = append(options, t.Label())
		if t.IsDefault {
			def = i
		}
	}
	options = append(options, customRepoOption)

	idx, err := p.Prompter.Select("Select a template to clone", options, def)
	if err != nil {
		return Result{}, err
	}

	if idx == len(templates) {
		ref, err := p.Prompter.Input("Repository (owner/name or URL)", "")
		if err != nil {
			return Result{}, err
		}
		req.Template = ref
	} else {
		req.Template = templates[idx].Alias
	}

	target, err := p.Prompter.Input("Target directory", req.Target)
	if err != nil {
		return Result{}, err
	}
	req.Target = target

	return p.Run(ctx, req)
}

// resolveSource maps the requested template to a repository reference.
// A name that is not in the catalog is used as the reference itself.
func (p *Pipeline) resolveSource(ctx context.Context, name string) (Result, error) {
	if name == "" {
		t, err := p.Templates.Default(ctx)
		if err != nil {
			if errors.Is(err, catalog.ErrNoDefault) {
				return Result{}, ErrNoDefaultTemplate
			}
			return Result{}, err
		}
		p.Out.Success(fmt.Sprintf("Using default template: %s (%s)", t.Alias, t.Description))
		return Result{Template: t.Alias, Source: t.Repo}, nil
	}

	t, err := p.Templates.Get(ctx, name)
	switch {
	case err == nil:
		p.Out.Success(fmt.Sprintf("Using template: %s (%s)", t.Alias, t.Description))
		return Result{Template: t.Alias, Source: t.Repo}, nil
	case errors.Is(err, catalog.ErrTemplateNotFound):
		p.Out.Info(fmt.Sprintf("Template '%s' not found, using it as a repository reference", name))
		return Result{Source: name}, nil
	default:
		return Result{}, err
	}
}

// prepareTarget reports whether the clone may proceed into path, removing
// an existing directory once the user confirms.
func (p *Pipeline) prepareTarget(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat target: %w", err)
	}

	ok, err := p.Prompter.Confirm(fmt.Sprintf("Directory '%s' already exists. Overwrite?", path), false)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var sp ui.Spinner
	if p.Progress != nil {
		sp = p.Progress.Spinner(fmt.Sprintf("Removing '%s'...", path))
	}
	err = os.RemoveAll(path)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return false, fmt.Errorf("remove existing target: %w", err)
	}
	return true, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default().With("module", "clone")
	}
	return p.Logger
}

// childPath joins target onto dir and refuses results that are not strictly
// below dir, so "." or ".." can never reach RemoveAll.
func childPath(dir, target string) (string, error) {
	path := filepath.Join(dir, target)
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrTargetNotChild, target)
	}
	return path, nil
}
