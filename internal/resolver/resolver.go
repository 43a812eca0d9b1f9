package resolver

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
	"github.com/specialistvlad/specgraph/internal/fsutil"
	"github.com/specialistvlad/specgraph/internal/hclfront"
)

const (
	// DefaultMaxDepth bounds how deep include chains may nest.
	DefaultMaxDepth = 20
	// DefaultExtension is appended to include paths that have none.
	DefaultExtension = ".sdl"
)

// Options configures a Resolver. Zero values select the defaults.
type Options struct {
	// FS defaults to the host file system.
	FS fsutil.FileSystem
	// Parser defaults to the HCL front end.
	Parser ast.Parser
	// MaxDepth defaults to DefaultMaxDepth.
	MaxDepth int
	// ProjectRoot bounds where includes may point. It defaults to the
	// directory of the root file.
	ProjectRoot string
	// Extension defaults to DefaultExtension.
	Extension string
}

// Result is the outcome of one resolution.
type Result struct {
	Document *ast.Document
	// Files lists the absolute paths that were read, in visiting order.
	Files  []string
	Errors []*ResolveError
	// Sources holds the bytes of every file read, keyed by absolute path.
	Sources map[string][]byte
}

// HasErrors reports whether any ResolveError was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Diagnostics converts every ResolveError into an HCL diagnostic.
func (r *Result) Diagnostics() hcl.Diagnostics {
	diags := make(hcl.Diagnostics, 0, len(r.Errors))
	for _, e := range r.Errors {
		diags = append(diags, e.HCL())
	}
	return diags
}

// Resolver expands include directives. It holds only configuration, so one
// Resolver may serve concurrent calls to Resolve.
type Resolver struct {
	opts Options
}

// New creates a Resolver, filling unset options with defaults.
func New(opts Options) *Resolver {
	if opts.FS == nil {
		opts.FS = fsutil.OS{}
	}
	if opts.Parser == nil {
		opts.Parser = hclfront.New()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	return &Resolver{opts: opts}
}

// Resolve loads rootPath and recursively merges everything it includes.
// It never fails: problems are reported in Result.Errors and the returned
// document holds whatever could be resolved.
func (r *Resolver) Resolve(ctx context.Context, rootPath string) *Result {
	logger := ctxlog.FromContext(ctx)

	root := absPath(rootPath)
	projectRoot := r.opts.ProjectRoot
	if projectRoot == "" {
		projectRoot = filepath.Dir(root)
	}

	s := &session{
		opts:        r.opts,
		logger:      logger,
		projectRoot: absPath(projectRoot),
		visited:     make(map[string]bool),
		result: &Result{
			Document: &ast.Document{Path: root},
			Sources:  make(map[string][]byte),
		},
	}

	logger.Debug("Resolving model.", "root", root, "project_root", s.projectRoot)
	s.resolveRoot(root)
	logger.Debug("Resolution finished.",
		"files", len(s.result.Files),
		"errors", len(s.result.Errors),
		"items", len(s.result.Document.Items),
	)
	return s.result
}

// Resolve is a convenience wrapper around New(opts).Resolve.
func Resolve(ctx context.Context, rootPath string, opts Options) *Result {
	return New(opts).Resolve(ctx, rootPath)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
