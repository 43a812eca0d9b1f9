package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/specgraph/internal/app"
	"github.com/specialistvlad/specgraph/internal/watch"
)

func newWatchCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [entry]",
		Short: "Re-check the model whenever a source file changes",
		Long: `Check the model once, then watch every directory under the project root
and run the full analysis again after each burst of changes to source files.
Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, args)
			if err != nil {
				return err
			}
			root, err := a.ProjectRoot()
			if err != nil {
				return failure("%v", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			ctx = a.Context(ctx)

			recheck := func(ctx context.Context) { runCheck(ctx, cmd, a) }
			recheck(ctx)

			w, err := watch.New(ctx, watch.Options{
				Root:      root,
				Extension: a.Config().Project.Extension,
				OnChange:  recheck,
			})
			if err != nil {
				return failure("%v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", root)
			if err := w.Run(ctx); err != nil {
				return failure("%v", err)
			}
			return nil
		},
	}
}

// runCheck analyzes once and prints the outcome. Failures are reported and
// swallowed so the watcher keeps running.
func runCheck(ctx context.Context, cmd *cobra.Command, a *app.App) {
	res, err := a.Analyze(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", err)
		return
	}
	if err := writeDiagnostics(cmd.ErrOrStderr(), res); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to write diagnostics: %v\n", err)
	}
	writeSummary(cmd.OutOrStdout(), res)
}
