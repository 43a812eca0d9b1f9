package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// fileRoot mirrors the top level of specgraph.hcl. Unknown blocks and
// attributes are decode errors.
type fileRoot struct {
	Project *projectBlock `hcl:"project,block"`
	Logging *loggingBlock `hcl:"logging,block"`
}

type projectBlock struct {
	Entry           *string `hcl:"entry,optional"`
	Root            *string `hcl:"root,optional"`
	Extension       *string `hcl:"extension,optional"`
	MaxIncludeDepth *int    `hcl:"max_include_depth,optional"`
}

type loggingBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads the configuration file at path, fills omitted values from
// Default and validates the result.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration file.", "path", path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	file, diags := hclparse.NewParser().ParseHCLFile(abs)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, envContext(os.Environ()), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	cfg := Default()
	cfg.Path = abs
	root.apply(cfg)

	dir := filepath.Dir(abs)
	cfg.Project.Root = relativeTo(dir, cfg.Project.Root)
	cfg.Project.Entry = relativeTo(dir, cfg.Project.Entry)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	logger.Debug("Configuration loaded.",
		"entry", cfg.Project.Entry,
		"root", cfg.Project.Root,
		"extension", cfg.Project.Extension,
		"max_include_depth", cfg.Project.MaxIncludeDepth,
	)
	return cfg, nil
}

// LoadOrDefault loads path when it is set. Otherwise it loads FileName from
// dir if that file exists and falls back to Default.
func LoadOrDefault(ctx context.Context, path, dir string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}
	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err == nil {
		return Load(ctx, candidate)
	}
	ctxlog.FromContext(ctx).Debug("No configuration file found, using defaults.", "dir", dir)
	return Default(), nil
}

func (r *fileRoot) apply(cfg *Config) {
	if p := r.Project; p != nil {
		setString(&cfg.Project.Entry, p.Entry)
		setString(&cfg.Project.Root, p.Root)
		setString(&cfg.Project.Extension, p.Extension)
		if p.MaxIncludeDepth != nil {
			cfg.Project.MaxIncludeDepth = *p.MaxIncludeDepth
		}
	}
	if l := r.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.Format, l.Format)
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func relativeTo(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// envContext exposes environ as the `env` object.
func envContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
