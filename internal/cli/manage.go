package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/catalog"
	"github.com/hyh0309/cvue/internal/clone"
	"github.com/hyh0309/cvue/pkg/models"
)

// Actions offered for a selected template.
const (
	actionClone = iota
	actionDelete
	actionUpdate
	actionBack
)

var manageActions = []string{"Clone this template", "Delete this template", "Update this template", "Back"}

// Fields offered by the update action.
const (
	updateRepo = iota
	updateDescription
	updateDefault
	updateAll
	updateCancel
)

var updateFields = []string{"Repository", "Description", "Default flag", "All fields", "Cancel"}

// runManager is the interactive catalog manager behind "show -i".
func runManager(cmd *cobra.Command) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	out := newPrinter(w, deps.Theme)

	templates, err := deps.Registry.List(ctx)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		out.Warn("No templates found. Add one with 'cvue add' or run 'cvue init'.")
		return nil
	}

	labels := make([]string, len(templates))
	for i, t := range templates {
		labels[i] = t.Label()
	}
	idx, err := deps.Prompter.Select("Select a template", labels, 0)
	if err != nil {
		return err
	}
	t := templates[idx]
	_, _ = fmt.Fprintln(w, out.renderTemplateDetail(t))

	action, err := deps.Prompter.Select("What do you want to do?", manageActions, actionClone)
	if err != nil {
		return err
	}

	switch action {
	case actionClone:
		return manageClone(cmd, t)
	case actionDelete:
		ok, err := deps.Prompter.Confirm(fmt.Sprintf("Delete template '%s'?", t.Alias), false)
		if err != nil {
			return err
		}
		if !ok {
			out.Info("Delete cancelled")
			return nil
		}
		return removeTemplate(cmd, out, t.Alias)
	case actionUpdate:
		return manageUpdate(cmd, out, t)
	default:
		out.Info("Exited")
		return nil
	}
}

func manageClone(cmd *cobra.Command, t models.Template) error {
	target, err := deps.Prompter.Input("Target directory", "")
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	res, err := deps.Pipeline(cmd.OutOrStdout()).Run(cmd.Context(), clone.Request{
		Template: t.Alias,
		Target:   target,
		Token:    deps.Token(""),
		Dir:      cwd,
	})
	if err != nil {
		return err
	}
	if !res.Aborted {
		printCloneSuccess(cmd, res)
	}
	return nil
}

func manageUpdate(cmd *cobra.Command, out *printer, t models.Template) error {
	field, err := deps.Prompter.Select("Which field?", updateFields, updateRepo)
	if err != nil {
		return err
	}
	if field == updateCancel {
		out.Info("Update cancelled")
		return nil
	}

	var p catalog.Patch
	if field == updateRepo || field == updateAll {
		v, err := deps.Prompter.Input("New repository", t.Repo)
		if err != nil {
			return err
		}
		p.Repo = &v
	}
	if field == updateDescription || field == updateAll {
		v, err := deps.Prompter.Input("New description", t.Description)
		if err != nil {
			return err
		}
		p.Description = &v
	}
	if field == updateDefault || field == updateAll {
		v, err := deps.Prompter.Confirm("Make this the default template?", t.IsDefault)
		if err != nil {
			return err
		}
		p.IsDefault = &v
	}
	return updateTemplate(cmd, out, t.Alias, p)
}
