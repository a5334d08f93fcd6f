package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
	"github.com/hyh0309/cvue/pkg/models"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a"},
		Short:   "Add a template to the catalog",
		Example: `  cvue add -a vue3 -r vuejs/create-vue -e "Vue 3 + Vite" -d`,
		Args:    cobra.NoArgs,
		RunE:    runAdd,
	}
	cmd.Flags().StringP("alias", "a", "", "unique template alias")
	cmd.Flags().StringP("repo", "r", "", "repository, owner/name or URL")
	cmd.Flags().StringP("description", "e", "", "template description")
	cmd.Flags().BoolP("default", "d", false, "make this the default template")
	for _, name := range []string{"alias", "repo", "description"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	alias, _ := cmd.Flags().GetString("alias")
	repoRef, _ := cmd.Flags().GetString("repo")
	desc, _ := cmd.Flags().GetString("description")
	isDefault, _ := cmd.Flags().GetBool("default")

	out := newPrinter(cmd.OutOrStdout(), deps.Theme)
	t := models.Template{Alias: alias, Repo: repoRef, Description: desc, IsDefault: isDefault}

	err := deps.Registry.Add(cmd.Context(), t)
	switch {
	case errors.Is(err, catalog.ErrTemplateExists):
		out.Warn(fmt.Sprintf("Template '%s' already exists", alias))
		return nil
	case err != nil:
		return err
	}

	out.Success(fmt.Sprintf("Template '%s' added", alias))
	return nil
}
