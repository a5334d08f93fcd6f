package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update <alias>",
		Aliases: []string{"u"},
		Short:   "Update fields of a template",
		Long:    "Update the repository, description or default flag of a template. Flags that are not given leave the field unchanged.",
		Example: `  cvue update vue3 -e "Vue 3 starter"
  cvue update vue3 -d true
  cvue update vue3 --default false`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().StringP("repo", "r", "", "new repository")
	cmd.Flags().StringP("description", "e", "", "new description")
	cmd.Flags().StringP("default", "d", "", "set or clear the default flag (true or false)")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var p catalog.Patch
	if cmd.Flags().Changed("repo") {
		v, _ := cmd.Flags().GetString("repo")
		p.Repo = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		p.Description = &v
	}
	if cmd.Flags().Changed("default") {
		raw, _ := cmd.Flags().GetString("default")
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid --default value %q: want true or false", raw)
		}
		p.IsDefault = &v
	}

	out := newPrinter(cmd.OutOrStdout(), deps.Theme)
	if p.IsEmpty() {
		out.Info("No fields given; the template is saved unchanged")
	}
	return updateTemplate(cmd, out, args[0], p)
}

// updateTemplate applies p to alias, reporting a missing alias as a warning.
func updateTemplate(cmd *cobra.Command, out *printer, alias string, p catalog.Patch) error {
	err := deps.Registry.Update(cmd.Context(), alias, p)
	switch {
	case errors.Is(err, catalog.ErrTemplateNotFound):
		out.Warn(fmt.Sprintf("No template with alias '%s'", alias))
		return nil
	case err != nil:
		return err
	}
	out.Success(fmt.Sprintf("Template '%s' updated", alias))
	return nil
}
