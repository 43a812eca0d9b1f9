package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/specgraph/internal/app"
	"github.com/specialistvlad/specgraph/internal/config"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// version is set via build-time ldflags
var version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func failure(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

func usage(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the command tree. Command output goes to outW,
// logs and diagnostics to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "specgraph",
		Short: "Resolve, own and relate the constructs of a system model",
		Long: `specgraph reads a multi-file system model, expands its includes, assigns
every construct to an owning component and computes the relationships
between constructs.

Use 'specgraph <command> --help' for detailed information about a command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the project configuration file (default: ./"+config.FileName+" when present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newCheckCommand(opts),
		newGraphCommand(opts),
		newWatchCommand(opts),
		newInitCommand(),
	)
	return root
}

// Execute runs the command tree with args. Errors that are not already an
// ExitError are treated as usage errors.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return usage("%v", err)
}

// newApp loads the configuration, applies flag overrides and the optional
// entry argument, and builds the application.
func newApp(cmd *cobra.Command, opts *globalOptions, args []string) (*app.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.Discard(ctx)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, failure("failed to determine working directory: %v", err)
	}
	cfg, err := config.LoadOrDefault(ctx, opts.configPath, cwd)
	if err != nil {
		return nil, usage("%v", err)
	}

	if len(args) > 0 {
		entry, err := filepath.Abs(args[0])
		if err != nil {
			return nil, usage("invalid entry path %q: %v", args[0], err)
		}
		cfg.Project.Entry = entry
		if cfg.Path == "" {
			cfg.Project.Root = filepath.Dir(entry)
		}
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.logLevel)
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(opts.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, usage("%v", err)
	}

	a, err := app.NewApp(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, usage("%v", err)
	}
	return a, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
