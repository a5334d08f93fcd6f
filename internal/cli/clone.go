package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/internal/clone"
	"github.com/hyh0309/cvue/internal/ui"
)

func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clone [template]",
		Aliases: []string{"c"},
		Short:   "Clone a template into a new project directory",
		Long: `Clone a template into a new project directory.

The argument is a catalog alias or, when no alias matches, a repository
reference (owner/name or URL). Without an argument an interactive picker is
shown on a terminal; otherwise the default template is used.`,
		Example: `  cvue clone vue3-vite -t my-app
  cvue clone vuejs/core -t core -k $GITHUB_TOKEN`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClone,
	}
	cmd.Flags().StringP("target", "t", "", "target directory name")
	cmd.Flags().StringP("token", "k", "", "access token for private repositories")
	return cmd
}

func runClone(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	token, _ := cmd.Flags().GetString("token")

	cwd, err := workingDir()
	if err != nil {
		return err
	}

	req := clone.Request{Target: target, Token: deps.Token(token), Dir: cwd}
	if len(args) == 1 {
		req.Template = args[0]
	}

	p := deps.Pipeline(cmd.OutOrStdout())
	var res clone.Result
	if req.Template == "" && !deps.Headless.IsHeadless() {
		res, err = p.Interactive(cmd.Context(), req)
	} else {
		res, err = p.Run(cmd.Context(), req)
	}
	if err != nil {
		return err
	}
	if res.Aborted {
		return nil
	}

	printCloneSuccess(cmd, res)
	return nil
}

// printCloneSuccess prints the result card and the next steps.
func printCloneSuccess(cmd *cobra.Command, res clone.Result) {
	w := cmd.OutOrStdout()
	out := newPrinter(w, deps.Theme)

	_, _ = fmt.Fprintln(w, out.renderSuccessCard("Project cloned",
		out.renderKeyValueLines([]kvPair{
			{"Source", res.Source},
			{"Path", res.Path},
		}),
	))
	_, _ = fmt.Fprint(w, ui.RenderMarkdown(nextSteps(res.Target), termWidth(), deps.Theme.NoColor))
}

func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

func nextSteps(target string) string {
	return fmt.Sprintf("## Next steps\n\n```sh\ncd %s\nnpm install\nnpm run dev\n```\n", target)
}
