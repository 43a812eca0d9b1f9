// Package pipeline runs the full analysis: include resolution, collection,
// ownership and relationships.
//
// Run allocates all of its state per call, so independent calls may run in
// parallel. There is no incremental mode; callers re-run Run after any change.
package pipeline

import (
	"context"
	"fmt"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/collector"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
	"github.com/specialistvlad/specgraph/internal/fsutil"
	"github.com/specialistvlad/specgraph/internal/overview"
	"github.com/specialistvlad/specgraph/internal/ownership"
	"github.com/specialistvlad/specgraph/internal/relations"
	"github.com/specialistvlad/specgraph/internal/resolver"
)

// Options configures one run.
type Options struct {
	// Root is the entry file.
	Root string
	// ProjectRoot bounds include paths; it defaults to Root's directory.
	ProjectRoot string
	Extension   string
	MaxDepth    int
	Parser      ast.Parser
	FS          fsutil.FileSystem
}

// Result holds every artifact of one run.
type Result struct {
	Resolution *resolver.Result
	Model      *collector.Model
	Owners     *ownership.Owners
	Graph      *relations.Graph
	Overview   *overview.Overview
}

// Run executes the pipeline. Include problems are reported in
// Result.Resolution.Errors; the returned error covers only failures that
// leave no usable result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("pipeline: root file must be set")
	}
	logger := ctxlog.FromContext(ctx).With("root", opts.Root)
	ctx = ctxlog.WithLogger(ctx, logger)

	res := resolver.New(resolver.Options{
		FS:          opts.FS,
		Parser:      opts.Parser,
		MaxDepth:    opts.MaxDepth,
		ProjectRoot: opts.ProjectRoot,
		Extension:   opts.Extension,
	}).Resolve(ctx, opts.Root)

	model := collector.Collect(ctx, res.Document)
	owners := ownership.Assign(ctx, model)
	graph := relations.Build(ctx, model, owners)

	ov, err := overview.Build(ctx, model, graph)
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to build overview: %w", err)
	}

	logger.Debug("Pipeline finished.",
		"files", len(res.Files),
		"diagnostics", len(res.Errors),
		"constructs", len(model.Keys()),
		"owned", owners.Len(),
		"records", graph.Len(),
	)
	return &Result{
		Resolution: res,
		Model:      model,
		Owners:     owners,
		Graph:      graph,
		Overview:   ov,
	}, nil
}
