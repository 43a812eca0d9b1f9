package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/specgraph/internal/config"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
	"github.com/specialistvlad/specgraph/internal/pipeline"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp is the constructor for the main application. The logger writes to
// logW and is isolated from the global slog default. An unknown logging
// level or format is an error.
func NewApp(logW io.Writer, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger, err := newLogger(cfg.Logging, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.", "config", cfg.Path)

	return &App{
		logW:   logW,
		logger: logger,
		config: cfg,
	}, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Context attaches the application logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// ProjectRoot returns the absolute project root.
func (a *App) ProjectRoot() (string, error) {
	root := a.config.Project.Root
	if root == "" {
		root = filepath.Dir(a.config.Project.Entry)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}
	return abs, nil
}

// Analyze runs the full pipeline on the configured entry file.
func (a *App) Analyze(ctx context.Context) (*pipeline.Result, error) {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Analyze method started.", "entry", a.config.Project.Entry)

	root, err := a.ProjectRoot()
	if err != nil {
		return nil, err
	}
	res, err := pipeline.Run(ctx, pipeline.Options{
		Root:        a.config.Project.Entry,
		ProjectRoot: root,
		Extension:   a.config.Project.Extension,
		MaxDepth:    a.config.Project.MaxIncludeDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	for _, u := range res.Model.Unhandled {
		a.logger.Warn("Construct kind is not collected.", "type", u.Type, "file", u.Range.Filename, "line", u.Range.Start.Line)
	}
	a.logger.Info("Analysis finished.",
		"files", len(res.Resolution.Files),
		"constructs", len(res.Model.Keys()),
		"components", len(res.Model.ComponentNames()),
		"diagnostics", len(res.Resolution.Errors),
	)
	return res, nil
}
