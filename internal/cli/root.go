package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hyh0309/cvue/pkg/version"
)

var rootCmd = newRootCmd()

// newRootCmd builds the full command tree. Tests build a fresh tree per
// run so flag values never leak between cases.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "cvue",
		Short: "Manage Vue project templates and scaffold new projects",
		Long: `cvue keeps a catalog of Vue project templates (an alias mapped to a
GitHub repository) in templates.yaml and clones them into new project
directories.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps != nil {
				return nil
			}
			d, err := initDependencies(*opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			deps = d
			if isTerminal(os.Stdout) && !d.Headless.IsHeadless() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), newPrinter(cmd.OutOrStdout(), d.Theme).renderBanner(version.GetVersion()))
			}
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("cvue %s\n", version.GetFullVersion()))

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.catalogPath, "catalog", "", "path to the catalog file (default templates.yaml)")
	pf.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newShowCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newUpdateCmd(),
		newGetCmd(),
		newCloneCmd(),
		newInitCmd(),
	)
	return cmd
}

// Execute runs the root command and prints any error it returns.
// An interrupt cancels the command context, which stops a running git clone.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		theme := deps.theme()
		newPrinter(rootCmd.ErrOrStderr(), theme).Error(err.Error())
	}
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
