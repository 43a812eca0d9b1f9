package resolver

import (
	"io"

	"github.com/hashicorp/hcl/v2"
)

// NewDiagnosticWriter returns a compiler-style writer that can show source
// snippets for every file res has read. A width of zero disables word
// wrapping.
func NewDiagnosticWriter(w io.Writer, res *Result, width uint, color bool) hcl.DiagnosticWriter {
	files := make(map[string]*hcl.File, len(res.Sources))
	for path, src := range res.Sources {
		files[path] = &hcl.File{Bytes: src}
	}
	return hcl.NewDiagnosticTextWriter(w, files, width, color)
}

// WriteDiagnostics renders every ResolveError of res.
func WriteDiagnostics(w io.Writer, res *Result, width uint, color bool) error {
	return NewDiagnosticWriter(w, res, width, color).WriteDiagnostics(res.Diagnostics())
}
