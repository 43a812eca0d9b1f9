package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Kind classifies a ResolveError. The string values are a stable contract.
type Kind string

const (
	KindCircularInclude  Kind = "CIRCULAR_INCLUDE"
	KindFileNotFound     Kind = "FILE_NOT_FOUND"
	KindParseError       Kind = "PARSE_ERROR"
	KindMaxDepthExceeded Kind = "MAX_DEPTH_EXCEEDED"
	KindSuspiciousPath   Kind = "SUSPICIOUS_PATH"
)

// ChainSeparator joins the basenames of an include chain.
const ChainSeparator = " → "

// Location is a 1-based line and column.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ResolveError is a recoverable problem found while resolving includes.
type ResolveError struct {
	Kind         Kind      `json:"type"`
	Message      string    `json:"message"`
	File         string    `json:"file"`
	IncludedFrom string    `json:"includedFrom,omitempty"`
	Location     *Location `json:"location,omitempty"`
	// Chain lists absolute paths from the root file to File.
	Chain []string `json:"-"`
	// Subject is the source range the diagnostic points at, when known.
	Subject *hcl.Range `json:"-"`
}

// ChainString renders the include chain as basenames joined by an arrow,
// e.g. "a.sdl → b.sdl → a.sdl".
func (e *ResolveError) ChainString() string {
	names := make([]string, len(e.Chain))
	for i, p := range e.Chain {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ChainSeparator)
}

func (e *ResolveError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.File)
	if e.Location != nil {
		fmt.Fprintf(&sb, ":%d:%d", e.Location.Line, e.Location.Column)
	}
	fmt.Fprintf(&sb, ": %s: %s", e.Kind, e.Message)
	if len(e.Chain) > 0 {
		fmt.Fprintf(&sb, " (include chain: %s)", e.ChainString())
	}
	return sb.String()
}

// HCL converts the error into an HCL diagnostic for compiler-style rendering.
func (e *ResolveError) HCL() *hcl.Diagnostic {
	detail := e.Message
	if len(e.Chain) > 0 {
		detail += "\n\nInclude chain: " + e.ChainString()
	}
	if e.IncludedFrom != "" {
		detail += "\nIncluded from: " + e.IncludedFrom
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  string(e.Kind),
		Detail:   detail,
		Subject:  e.Subject,
	}
}

func locationOf(rng hcl.Range) *Location {
	if rng.Start.Line == 0 {
		return nil
	}
	return &Location{Line: rng.Start.Line, Column: rng.Start.Column}
}

func subjectOf(rng hcl.Range) *hcl.Range {
	if rng.Start.Line == 0 {
		return nil
	}
	return rng.Ptr()
}
