package cli

import (
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatDOT  = "dot"
)

func newGraphCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph [entry]",
		Short: "Print ownership and relationships of the model",
		Long: `Run the full analysis and print it. The json format writes the complete
report: files, diagnostics, ownership, relationship records and the
component overview. The dot format writes the component dependency graph
for Graphviz.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatDOT {
				return usage("invalid format %q: must be 'json' or 'dot'", format)
			}
			a, err := newApp(cmd, opts, args)
			if err != nil {
				return err
			}
			res, err := a.Analyze(cmd.Context())
			if err != nil {
				return failure("%v", err)
			}

			if format == formatDOT {
				if err := res.Overview.WriteDOT(cmd.OutOrStdout()); err != nil {
					return failure("failed to write DOT graph: %v", err)
				}
				return nil
			}

			report, err := a.Report(res)
			if err != nil {
				return failure("%v", err)
			}
			if err := report.WriteJSON(cmd.OutOrStdout()); err != nil {
				return failure("%v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format. Options: 'json' or 'dot'.")
	return cmd
}
