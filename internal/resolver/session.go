package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/fsutil"
)

// session holds the mutable state of a single Resolve call.
type session struct {
	opts        Options
	logger      *slog.Logger
	projectRoot string
	visited     map[string]bool
	result      *Result
}

func (s *session) resolveRoot(root string) {
	s.visited[root] = true
	chain := []string{root}

	if !s.opts.FS.Exists(root) {
		s.report(&ResolveError{
			Kind:    KindFileNotFound,
			Message: fmt.Sprintf("root file %q not found", root),
			File:    root,
			Chain:   chain,
		})
		return
	}

	doc, ok := s.load(root, "", chain)
	if !ok {
		return
	}
	s.result.Document.Items = s.expand(doc.Items, root, 0, chain)
}

// load reads and parses one file, recording FILE_NOT_FOUND or PARSE_ERROR on
// failure.
func (s *session) load(path, includedFrom string, chain []string) (*ast.Document, bool) {
	src, err := s.opts.FS.ReadFile(path)
	if err != nil {
		s.report(&ResolveError{
			Kind:         KindFileNotFound,
			Message:      fmt.Sprintf("failed to read %q: %v", path, err),
			File:         path,
			IncludedFrom: includedFrom,
			Chain:        chain,
		})
		return nil, false
	}
	s.result.Files = append(s.result.Files, path)
	s.result.Sources[path] = src

	doc, err := s.opts.Parser.Parse(src, path)
	if err != nil {
		e := &ResolveError{
			Kind:         KindParseError,
			Message:      err.Error(),
			File:         path,
			IncludedFrom: includedFrom,
			Chain:        chain,
		}
		var perr *ast.ParseError
		if errors.As(err, &perr) {
			e.Message = perr.Message
			e.Location = locationOf(perr.Range)
			e.Subject = subjectOf(perr.Range)
		}
		s.report(e)
		return nil, false
	}
	if doc == nil {
		doc = &ast.Document{Path: path}
	}
	return doc, true
}

// expand returns items with every include directive replaced by the included
// content.
func (s *session) expand(items []ast.Node, file string, depth int, chain []string) []ast.Node {
	out, _ := s.expandBody(items, file, depth, chain, false)
	return out
}

// expandBody is expand for a container body. In a system body (inSystem),
// included items that are not components or comments are returned separately
// as hoisted.
func (s *session) expandBody(items []ast.Node, file string, depth int, chain []string, inSystem bool) (out, hoisted []ast.Node) {
	out = make([]ast.Node, 0, len(items))
	for _, item := range items {
		switch n := item.(type) {
		case *ast.Include:
			for _, inc := range s.include(n, file, depth, chain) {
				if inSystem && !staysInSystem(inc) {
					hoisted = append(hoisted, inc)
					continue
				}
				out = append(out, inc)
			}
		case *ast.System:
			body, lifted := s.expandBody(n.Body, file, depth, chain, true)
			sys := *n
			sys.Body = body
			out = append(out, lifted...)
			out = append(out, &sys)
		case *ast.Component:
			comp := *n
			comp.Body = s.expand(n.Body, file, depth, chain)
			out = append(out, &comp)
		default:
			out = append(out, item)
		}
	}
	return out, hoisted
}

func staysInSystem(n ast.Node) bool {
	switch n.(type) {
	case *ast.Component, *ast.Comment:
		return true
	}
	return false
}

// include resolves one directive found in file, which sits at depth on chain.
func (s *session) include(inc *ast.Include, file string, depth int, chain []string) []ast.Node {
	target := s.targetPath(inc.Path, file)
	next := append(slices.Clone(chain), target)
	site := func(kind Kind, msg string) *ResolveError {
		return &ResolveError{
			Kind:         kind,
			Message:      msg,
			File:         target,
			IncludedFrom: file,
			Location:     locationOf(inc.Range),
			Subject:      subjectOf(inc.Range),
			Chain:        next,
		}
	}

	if filepath.IsAbs(inc.Path) {
		s.report(site(KindSuspiciousPath, fmt.Sprintf("include path %q is absolute", inc.Path)))
		return nil
	}
	if !fsutil.IsWithin(s.projectRoot, target) {
		s.report(site(KindSuspiciousPath, fmt.Sprintf("include path %q escapes the project root %q", inc.Path, s.projectRoot)))
		return nil
	}
	if depth+1 > s.opts.MaxDepth {
		s.report(site(KindMaxDepthExceeded, fmt.Sprintf("include depth exceeds the maximum of %d", s.opts.MaxDepth)))
		return nil
	}
	if slices.Contains(chain, target) {
		s.report(site(KindCircularInclude, fmt.Sprintf("circular include of %q", filepath.Base(target))))
		return nil
	}
	if s.visited[target] {
		s.logger.Debug("Skipping already included file.", "file", target, "included_from", file)
		return nil
	}
	if !s.opts.FS.Exists(target) {
		s.report(site(KindFileNotFound, fmt.Sprintf("included file %q not found", inc.Path)))
		return nil
	}
	s.visited[target] = true

	s.logger.Debug("Including file.", "file", target, "included_from", file, "depth", depth+1)
	doc, ok := s.load(target, file, next)
	if !ok {
		return nil
	}
	return s.expand(doc.Items, target, depth+1, next)
}

// targetPath resolves an include path against the including file's directory
// and appends the default extension when the path has none.
func (s *session) targetPath(p, from string) string {
	if filepath.Ext(p) == "" {
		p += s.opts.Extension
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(filepath.Dir(from), filepath.FromSlash(p))
}

func (s *session) report(e *ResolveError) {
	s.logger.Debug("Include problem.", "type", e.Kind, "file", e.File, "chain", e.ChainString())
	s.result.Errors = append(s.result.Errors, e)
}
