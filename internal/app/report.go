package app

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/fsutil"
	"github.com/specialistvlad/specgraph/internal/overview"
	"github.com/specialistvlad/specgraph/internal/ownership"
	"github.com/specialistvlad/specgraph/internal/pipeline"
	"github.com/specialistvlad/specgraph/internal/relations"
	"github.com/specialistvlad/specgraph/internal/resolver"
)

// Report is the serializable outcome of one analysis. Paths are relative to
// the project root and every collection has a fixed order, so two runs over
// the same sources produce identical JSON.
type Report struct {
	Entry         string                           `json:"entry"`
	Files         []string                         `json:"files"`
	Diagnostics   []Diagnostic                     `json:"diagnostics"`
	Warnings      []string                         `json:"warnings,omitempty"`
	Unreached     []string                         `json:"unreached,omitempty"`
	Ownership     map[ast.Key]ownership.Assignment `json:"ownership"`
	Relationships map[ast.Key]*relations.Record    `json:"relationships"`
	Overview      OverviewReport                   `json:"overview"`
}

// Diagnostic is a ResolveError with project-relative paths.
type Diagnostic struct {
	Type         resolver.Kind      `json:"type"`
	Message      string             `json:"message"`
	File         string             `json:"file"`
	IncludedFrom string             `json:"includedFrom,omitempty"`
	Location     *resolver.Location `json:"location,omitempty"`
	Chain        string             `json:"chain,omitempty"`
}

// OverviewReport summarizes the component graph. Order is omitted when the
// components form a cycle.
type OverviewReport struct {
	Components   []string              `json:"components"`
	Dependencies []overview.Dependency `json:"dependencies"`
	Cycles       [][]string            `json:"cycles"`
	Order        []string              `json:"order,omitempty"`
}

// NewReport builds the report of res. root is the directory paths are made
// relative to.
func NewReport(root string, res *pipeline.Result) (*Report, error) {
	rel := relativizer(root)
	r := &Report{
		Entry:         rel(res.Resolution.Document.Path),
		Files:         make([]string, 0, len(res.Resolution.Files)),
		Diagnostics:   make([]Diagnostic, 0, len(res.Resolution.Errors)),
		Ownership:     res.Owners.Assignments(),
		Relationships: make(map[ast.Key]*relations.Record, res.Graph.Len()),
	}

	for _, f := range res.Resolution.Files {
		r.Files = append(r.Files, rel(f))
	}
	for _, e := range res.Resolution.Errors {
		d := Diagnostic{
			Type:     e.Kind,
			Message:  e.Message,
			File:     rel(e.File),
			Location: e.Location,
			Chain:    e.ChainString(),
		}
		if e.IncludedFrom != "" {
			d.IncludedFrom = rel(e.IncludedFrom)
		}
		r.Diagnostics = append(r.Diagnostics, d)
	}
	for _, u := range res.Model.Unhandled {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s:%d: %s is not collected", rel(u.Range.Filename), u.Range.Start.Line, u.Type))
	}
	for key, rec := range res.Graph.Records() {
		if !rec.IsEmpty() {
			r.Relationships[key] = rec
		}
	}

	ov := res.Overview
	var err error
	if r.Overview.Components, err = ov.Components(); err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	if r.Overview.Dependencies, err = ov.Dependencies(); err != nil {
		return nil, fmt.Errorf("failed to list component dependencies: %w", err)
	}
	if r.Overview.Cycles, err = ov.Cycles(); err != nil {
		return nil, fmt.Errorf("failed to find component cycles: %w", err)
	}
	if r.Overview.Cycles == nil {
		r.Overview.Cycles = [][]string{}
	}
	if len(r.Overview.Cycles) == 0 {
		if r.Overview.Order, err = ov.Order(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WriteJSON writes the report as indented JSON followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Report builds the report of res with paths relative to the project root,
// including the source files the entry never reaches.
func (a *App) Report(res *pipeline.Result) (*Report, error) {
	root, err := a.ProjectRoot()
	if err != nil {
		return nil, err
	}
	r, err := NewReport(root, res)
	if err != nil {
		return nil, err
	}
	if r.Unreached, err = a.Unreached(res); err != nil {
		return nil, err
	}
	return r, nil
}

// Unreached lists the source files under the project root that are not
// part of res, relative to the root and sorted.
func (a *App) Unreached(res *pipeline.Result) ([]string, error) {
	root, err := a.ProjectRoot()
	if err != nil {
		return nil, err
	}
	files, err := fsutil.FindFilesByExtension(root, a.config.Project.Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to list source files under %s: %w", root, err)
	}

	reached := make(map[string]bool, len(res.Resolution.Files))
	for _, f := range res.Resolution.Files {
		reached[f] = true
	}
	rel := relativizer(root)
	var out []string
	for _, f := range files {
		if !reached[f] {
			out = append(out, rel(f))
		}
	}
	slices.Sort(out)
	return out, nil
}

func relativizer(root string) func(string) string {
	return func(p string) string {
		if p == "" || root == "" {
			return p
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return p
		}
		return filepath.ToSlash(rel)
	}
}
