package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/specgraph/internal/pipeline"
	"github.com/specialistvlad/specgraph/internal/resolver"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [entry]",
		Short: "Resolve the model and report include problems",
		Long: `Resolve every include of the model starting at the entry file (or the
configured entry), print diagnostics compiler-style and exit with status 1
when any were found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, args)
			if err != nil {
				return err
			}
			res, err := a.Analyze(cmd.Context())
			if err != nil {
				return failure("%v", err)
			}
			if err := writeDiagnostics(cmd.ErrOrStderr(), res); err != nil {
				return failure("failed to write diagnostics: %v", err)
			}
			unreached, err := a.Unreached(res)
			if err != nil {
				return failure("%v", err)
			}
			for _, f := range unreached {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s is not included from the entry file\n", f)
			}
			writeSummary(cmd.OutOrStdout(), res)

			if n := len(res.Resolution.Errors); n > 0 {
				return failure("found %s", plural(n, "include problem"))
			}
			return nil
		},
	}
}

// writeDiagnostics renders include problems followed by warnings about
// constructs that could not be collected.
func writeDiagnostics(w io.Writer, res *pipeline.Result) error {
	diags := res.Resolution.Diagnostics()
	for _, u := range res.Model.Unhandled {
		diags = append(diags, u.Diagnostic())
	}
	if len(diags) == 0 {
		return nil
	}
	return resolver.NewDiagnosticWriter(w, res.Resolution, 0, false).WriteDiagnostics(diags)
}

func writeSummary(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "Checked %s: %s in %s, %s.\n",
		plural(len(res.Resolution.Files), "file"),
		plural(len(res.Model.Keys()), "construct"),
		plural(len(res.Model.ComponentNames()), "component"),
		plural(len(res.Resolution.Errors), "diagnostic"),
	)
}
