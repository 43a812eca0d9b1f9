package testutil

import (
	"testing"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/collector"
	"github.com/specialistvlad/specgraph/internal/hclfront"
	"github.com/stretchr/testify/require"
)

// ParseDocument parses a single HCL-syntax model. Include directives are left
// unexpanded.
func ParseDocument(t *testing.T, src string) *ast.Document {
	t.Helper()

	doc, err := hclfront.New().Parse([]byte(src), "test.sdl")
	require.NoError(t, err)
	return doc
}

// CollectModel parses src and collects it into a model.
func CollectModel(t *testing.T, src string) *collector.Model {
	t.Helper()
	return collector.Collect(QuietContext(), ParseDocument(t, src))
}
