package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Seed the catalog with the built-in Vue templates",
		Long:    "Add the built-in Vue templates to the catalog. Existing aliases are skipped unless --force is given, in which case they are overwritten.",
		Args:    cobra.NoArgs,
		RunE:    runInit,
	}
	cmd.Flags().BoolP("force", "f", false, "overwrite templates that already exist")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := newPrinter(cmd.OutOrStdout(), deps.Theme)

	type seeded struct {
		alias   string
		outcome catalog.SeedOutcome
	}
	var steps []seeded

	bar := deps.Progress.Start("Seeding templates", len(deps.Registry.Builtins()))
	report, err := deps.Registry.Init(cmd.Context(), force, func(alias string, o catalog.SeedOutcome) {
		bar.SetTitle(alias)
		bar.Increment(1)
		steps = append(steps, seeded{alias, o})
	})
	bar.Done()
	if err != nil {
		return err
	}

	for _, s := range steps {
		switch s.outcome {
		case catalog.SeedAdded:
			out.Success(fmt.Sprintf("Added '%s'", s.alias))
		case catalog.SeedUpdated:
			out.Info(fmt.Sprintf("Updated '%s'", s.alias))
		case catalog.SeedSkipped:
			out.Warn(fmt.Sprintf("Skipped '%s': already exists", s.alias))
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.renderSuccessCard("Catalog initialized",
		out.renderKeyValueLines([]kvPair{
			{"Added", fmt.Sprint(len(report.Added))},
			{"Updated", fmt.Sprint(len(report.Updated))},
			{"Skipped", fmt.Sprint(len(report.Skipped))},
			{"File", deps.Registry.Path()},
		}),
	))

	templates, err := deps.Registry.List(cmd.Context())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.renderCatalogTable(templates, termWidth()))
	return nil
}
