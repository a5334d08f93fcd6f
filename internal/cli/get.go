package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"g"},
		Short:   "Show one template",
		Args:    cobra.NoArgs,
		RunE:    runGet,
	}
	cmd.Flags().StringP("alias", "a", "", "alias of the template to show")
	_ = cmd.MarkFlagRequired("alias")
	return cmd
}

func runGet(cmd *cobra.Command, _ []string) error {
	alias, _ := cmd.Flags().GetString("alias")
	out := newPrinter(cmd.OutOrStdout(), deps.Theme)

	t, err := deps.Registry.Get(cmd.Context(), alias)
	switch {
	case errors.Is(err, catalog.ErrTemplateNotFound):
		out.Warn(fmt.Sprintf("No template with alias '%s'", alias))
		return nil
	case err != nil:
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.renderTemplateDetail(t))
	return nil
}
