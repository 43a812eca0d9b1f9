package ast

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Parser turns source text into a Document. Implementations report malformed
// input with a *ParseError so callers can point at the offending position.
type Parser interface {
	Parse(src []byte, path string) (*Document, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(src []byte, path string) (*Document, error)

// Parse calls f(src, path).
func (f ParserFunc) Parse(src []byte, path string) (*Document, error) {
	return f(src, path)
}

// ParseError is the structured failure a Parser returns on malformed input.
type ParseError struct {
	Message string
	Range   hcl.Range
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Range.Filename, e.Range.Start.Line, e.Range.Start.Column, e.Message)
}
