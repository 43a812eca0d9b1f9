package hclfront

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/specgraph/internal/ast"
)

// Parser is the HCL implementation of ast.Parser. It holds no state, so one
// instance may be shared by concurrent resolutions.
type Parser struct{}

// New creates a new HCL front-end parser.
func New() *Parser {
	return &Parser{}
}

// Parse implements ast.Parser. Syntax and structure errors are reported as an
// *ast.ParseError positioned at the first error diagnostic.
func (p *Parser) Parse(src []byte, path string) (*ast.Document, error) {
	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, toParseError(diags, path)
	}

	d := &decoder{}
	items := d.items(file.Body, documentSchema, nil)
	if d.diags.HasErrors() {
		return nil, toParseError(d.diags, path)
	}
	return &ast.Document{Path: path, Items: items}, nil
}

// toParseError converts the first error diagnostic into an *ast.ParseError.
func toParseError(diags hcl.Diagnostics, path string) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg += "; " + diag.Detail
		}
		rng := hcl.Range{Filename: path, Start: hcl.InitialPos, End: hcl.InitialPos}
		if diag.Subject != nil {
			rng = *diag.Subject
		}
		return &ast.ParseError{Message: msg, Range: rng}
	}
	return &ast.ParseError{Message: diags.Error(), Range: hcl.Range{Filename: path, Start: hcl.InitialPos}}
}

// blockRange spans from the block header to the closing brace when the body
// is native syntax.
func blockRange(block *hcl.Block) hcl.Range {
	if body, ok := block.Body.(*hclsyntax.Body); ok {
		return hcl.RangeBetween(block.DefRange, body.SrcRange)
	}
	return block.DefRange
}
