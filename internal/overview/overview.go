// Package overview condenses the relationship graph into a component-level
// dependency graph.
//
// An edge A -> B means constructs owned by A reference constructs owned by B;
// its weight counts those references. Endpoint exposure (exposedByApi) never
// contributes, since entities are meant to be reached through flows and
// operations rather than directly from APIs.
package overview

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/specialistvlad/specgraph/internal/collector"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
	"github.com/specialistvlad/specgraph/internal/relations"
)

// Dependency is one weighted edge between components.
type Dependency struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Overview is the component dependency graph.
type Overview struct {
	g graph.Graph[string, string]
}

// Build derives the overview from rel. Every component of m becomes a vertex,
// including those without edges.
func Build(ctx context.Context, m *collector.Model, rel *relations.Graph) (*Overview, error) {
	logger := ctxlog.FromContext(ctx)
	o := &Overview{g: graph.New(graph.StringHash, graph.Directed(), graph.Weighted())}

	for _, name := range m.ComponentNames() {
		if err := o.addVertex(name); err != nil {
			return nil, err
		}
	}

	weights := make(map[[2]string]int)
	for _, e := range rel.Edges() {
		from, to := e.From.Component, e.To.Component
		if from == "" || to == "" || from == to {
			continue
		}
		weights[[2]string{from, to}]++
	}

	pairs := make([][2]string, 0, len(weights))
	for p := range weights {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b [2]string) int {
		return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
	})

	for _, p := range pairs {
		if err := o.addVertex(p[0]); err != nil {
			return nil, err
		}
		if err := o.addVertex(p[1]); err != nil {
			return nil, err
		}
		w := weights[p]
		err := o.g.AddEdge(p[0], p[1], graph.EdgeWeight(w), graph.EdgeAttribute("label", fmt.Sprint(w)))
		if errors.Is(err, graph.ErrEdgeAlreadyExists) {
			err = o.g.UpdateEdge(p[0], p[1], graph.EdgeWeight(w))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to add dependency %s -> %s: %w", p[0], p[1], err)
		}
	}

	logger.Debug("Built component overview.", "components", len(m.ComponentNames()), "dependencies", len(pairs))
	return o, nil
}

func (o *Overview) addVertex(name string) error {
	err := o.g.AddVertex(name)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add component %q: %w", name, err)
	}
	return nil
}

// Components returns every component, sorted.
func (o *Overview) Components() ([]string, error) {
	adj, err := o.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(adj))
	for name := range adj {
		out = append(out, name)
	}
	slices.Sort(out)
	return out, nil
}

// Dependencies returns every edge sorted by source, then target.
func (o *Overview) Dependencies() ([]Dependency, error) {
	edges, err := o.g.Edges()
	if err != nil {
		return nil, err
	}
	out := make([]Dependency, 0, len(edges))
	for _, e := range edges {
		out = append(out, Dependency{From: e.Source, To: e.Target, Weight: e.Properties.Weight})
	}
	slices.SortFunc(out, func(a, b Dependency) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out, nil
}

// Cycles returns the groups of components that depend on each other. Each
// group is sorted and groups are ordered by their first member.
func (o *Overview) Cycles() ([][]string, error) {
	sccs, err := graph.StronglyConnectedComponents(o.g)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for _, scc := range sccs {
		if len(scc) < 2 {
			continue
		}
		group := slices.Clone(scc)
		slices.Sort(group)
		out = append(out, group)
	}
	slices.SortFunc(out, func(a, b []string) int { return cmp.Compare(a[0], b[0]) })
	return out, nil
}

// Order returns the components in dependency order: a component comes before
// everything it depends on. It fails when the graph has cycles.
func (o *Overview) Order() ([]string, error) {
	order, err := graph.StableTopologicalSort(o.g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("components cannot be ordered: %w", err)
	}
	return order, nil
}

// WriteDOT renders the overview in Graphviz DOT format.
func (o *Overview) WriteDOT(w io.Writer) error {
	return draw.DOT(o.g, w, draw.GraphAttribute("rankdir", "LR"))
}
