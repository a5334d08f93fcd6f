// Package cli provides the Cobra command tree and dependency wiring for
// cvue. This file defines the Dependencies struct (Composition Root) that
// wires all domain modules together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/hyh0309/cvue/internal/catalog"
	"github.com/hyh0309/cvue/internal/clone"
	"github.com/hyh0309/cvue/internal/config"
	"github.com/hyh0309/cvue/internal/core/git"
	"github.com/hyh0309/cvue/internal/defs"
	"github.com/hyh0309/cvue/internal/repo"
	"github.com/hyh0309/cvue/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   config.Config
	Registry *catalog.Registry
	Resolver *repo.Resolver
	Cloner   git.Cloner
	Prompter ui.Prompter
	Progress ui.Progress
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Logger   *slog.Logger
}

// deps is the global dependencies instance, set by the root command's
// PersistentPreRunE unless a test has already installed one.
var deps *Dependencies

// globalOptions holds the persistent flags of the root command.
type globalOptions struct {
	catalogPath string
	verbose     bool
	noColor     bool
}

// initDependencies loads .env and the settings, then creates and wires
// every service. stdout and stderr receive git output and log lines.
func initDependencies(opts globalOptions, stdout, stderr io.Writer) (*Dependencies, error) {
	if err := godotenv.Load(defs.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", defs.DotEnv, err)
	}

	ov := config.Overrides{}
	if opts.catalogPath != "" {
		ov.CatalogPath = &opts.catalogPath
	}
	if opts.verbose {
		level := "debug"
		ov.LogLevel = &level
	}
	if opts.noColor {
		ov.NoColor = &opts.noColor
	}

	cm := config.NewConfigManager(newLogger(stderr, config.DefaultLogLevel))
	cfg, err := cm.Load("", ov)
	if err != nil {
		return nil, err
	}

	logger := newLogger(stderr, cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Debug("settings resolved", "config", cm.Path(), "catalog", cfg.Catalog.Path, "hosts", cfg.Hosts)

	store := catalog.NewStore(cfg.Catalog.Path,
		catalog.WithStrict(cfg.Catalog.Strict),
		catalog.WithLogger(logger),
	)

	theme := ui.NewTheme(cfg.UI.NoColor)
	hm := ui.NewHeadlessManager()

	return &Dependencies{
		Config:   *cfg,
		Registry: catalog.NewRegistry(store),
		Resolver: repo.NewResolver(cfg.Hosts...),
		Cloner:   git.NewCloner(stdout, stderr),
		Prompter: ui.NewPrompter(theme, hm),
		Progress: ui.NewProgress(theme, hm, stdout),
		Headless: hm,
		Theme:    theme,
		Logger:   logger,
	}, nil
}

// Pipeline builds the clone pipeline reporting to out.
func (d *Dependencies) Pipeline(out io.Writer) *clone.Pipeline {
	return &clone.Pipeline{
		Templates: d.Registry,
		Resolver:  d.Resolver,
		Cloner:    d.Cloner,
		Prompter:  d.Prompter,
		Progress:  d.Progress,
		Out:       newPrinter(out, d.Theme),
		Logger:    d.Logger.With("module", "clone"),
	}
}

// Token returns the clone token: flag wins, then the variable named by
// auth.token_env.
func (d *Dependencies) Token(flag string) string {
	if flag != "" {
		return flag
	}
	if d.Config.Auth.TokenEnv == "" {
		return ""
	}
	return os.Getenv(d.Config.Auth.TokenEnv)
}

// newLogger returns a slog.Logger writing through a charmbracelet/log handler.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = charmlog.WarnLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "cvue",
		ReportTimestamp: false,
	})
	return slog.New(handler)
}

// theme returns the configured theme, or a plain one before wiring.
func (d *Dependencies) theme() *ui.Theme {
	if d == nil || d.Theme == nil {
		return ui.NewTheme(true)
	}
	return d.Theme
}
