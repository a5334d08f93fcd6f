package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "r"},
		Short:   "Remove a template from the catalog",
		Args:    cobra.NoArgs,
		RunE:    runRemove,
	}
	cmd.Flags().StringP("alias", "a", "", "alias of the template to remove")
	_ = cmd.MarkFlagRequired("alias")
	return cmd
}

func runRemove(cmd *cobra.Command, _ []string) error {
	alias, _ := cmd.Flags().GetString("alias")
	return removeTemplate(cmd, newPrinter(cmd.OutOrStdout(), deps.Theme), alias)
}

// removeTemplate deletes alias, reporting a missing alias as a warning.
func removeTemplate(cmd *cobra.Command, out *printer, alias string) error {
	err := deps.Registry.Remove(cmd.Context(), alias)
	switch {
	case errors.Is(err, catalog.ErrTemplateNotFound):
		out.Warn(fmt.Sprintf("No template with alias '%s'", alias))
		return nil
	case err != nil:
		return err
	}
	out.Success(fmt.Sprintf("Template '%s' removed", alias))
	return nil
}
