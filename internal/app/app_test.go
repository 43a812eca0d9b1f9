package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/config"
	"github.com/specialistvlad/specgraph/internal/resolver"
	"github.com/specialistvlad/specgraph/internal/testutil"
)

func fixtureApp(t *testing.T) (*App, *testutil.SafeBuffer) {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("testdata", "project"))
	require.NoError(t, err)
	return SetupAppTest(t, ProjectConfig(dir, "main.sdl"))
}

func TestReport_Golden(t *testing.T) {
	a, _ := fixtureApp(t)

	res, err := a.Analyze(context.Background())
	require.NoError(t, err)
	report, err := a.Report(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	g := goldie.New(t, goldie.WithNameSuffix(".golden.json"))
	g.Assert(t, "report", buf.Bytes())
}

func TestReport_IsDeterministic(t *testing.T) {
	a, _ := fixtureApp(t)

	render := func() string {
		res, err := a.Analyze(context.Background())
		require.NoError(t, err)
		report, err := a.Report(res)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, report.WriteJSON(&buf))
		return buf.String()
	}

	first := render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render())
	}
}

func TestReport_DecodesBack(t *testing.T) {
	a, _ := fixtureApp(t)
	res, err := a.Analyze(context.Background())
	require.NoError(t, err)
	report, err := a.Report(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Files, decoded.Files)
	assert.Equal(t, report.Diagnostics, decoded.Diagnostics)
	assert.Contains(t, decoded.Relationships, ast.NewKey(ast.KindEntity, "User"))
}

func TestReport_CyclicComponentsHaveNoOrder(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"main.sdl": `
component "A" {
  entity "Left" {
    field "right" { type = Right }
  }
}

component "B" {
  entity "Right" {
    field "left" { type = Left }
  }
}
`,
	})
	a, _ := SetupAppTest(t, ProjectConfig(dir, "main.sdl"))

	res, err := a.Analyze(context.Background())
	require.NoError(t, err)
	report, err := a.Report(res)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A", "B"}}, report.Overview.Cycles)
	assert.Nil(t, report.Overview.Order)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, []string{"main.sdl"}, report.Files)
}

func TestAnalyze_LogsSummary(t *testing.T) {
	a, logs := fixtureApp(t)

	res, err := a.Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Resolution.Errors, 1)
	assert.Equal(t, resolver.KindFileNotFound, res.Resolution.Errors[0].Kind)

	assert.Contains(t, logs.String(), "Analysis finished.")
	assert.Contains(t, logs.String(), "diagnostics=1")
	assert.Contains(t, logs.String(), "Pipeline finished.")
}

func TestAnalyze_MissingEntry(t *testing.T) {
	dir := t.TempDir()
	a, _ := SetupAppTest(t, ProjectConfig(dir, "absent.sdl"))

	res, err := a.Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Resolution.Errors, 1)
	assert.Equal(t, resolver.KindFileNotFound, res.Resolution.Errors[0].Kind)
	assert.Empty(t, res.Model.Keys())
}

func TestNewApp_NilConfigUsesDefaults(t *testing.T) {
	a, err := NewApp(&bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "main.sdl", a.Config().Project.Entry)
	assert.NotNil(t, a.Logger())
}

func TestNewApp_InvalidLoggingIsAnError(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "yaml"
	a, err := NewApp(&bytes.Buffer{}, cfg)
	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "invalid logging.format")
}

func TestUnreached(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"main.sdl":         `include "shared/types" {}`,
		"shared/types.sdl": `entity "User" {}`,
		"drafts/old.sdl":   `entity "Legacy" {}`,
		"notes.txt":        "not a source file",
	})
	a, _ := SetupAppTest(t, ProjectConfig(dir, "main.sdl"))

	res, err := a.Analyze(context.Background())
	require.NoError(t, err)

	unreached, err := a.Unreached(res)
	require.NoError(t, err)
	assert.Equal(t, []string{"drafts/old.sdl"}, unreached)

	report, err := a.Report(res)
	require.NoError(t, err)
	assert.Equal(t, []string{"drafts/old.sdl"}, report.Unreached)
}
