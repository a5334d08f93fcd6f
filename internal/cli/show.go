package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s", "list"},
		Short:   "List the templates in the catalog",
		Long:    "List the templates in the catalog as a table. With --interactive, pick a template and clone, update or delete it.",
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
	cmd.Flags().BoolP("interactive", "i", false, "manage templates interactively")
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		return runManager(cmd)
	}

	out := newPrinter(cmd.OutOrStdout(), deps.Theme)
	templates, err := deps.Registry.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		out.Warn("No templates found. Add one with 'cvue add' or run 'cvue init'.")
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.renderCatalogTable(templates, termWidth()))
	out.Info(fmt.Sprintf("%d template(s) in %s", len(templates), deps.Registry.Path()))
	return nil
}
