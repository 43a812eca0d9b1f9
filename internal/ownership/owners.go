package ownership

import (
	"context"
	"fmt"
	"maps"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/collector"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// Pass identifies the pass that produced an assignment.
type Pass int

const (
	PassNesting Pass = iota + 1
	PassAPIPrefix
	PassEndpointScore
	PassFlowScore
	PassEnumInheritance
	PassHeuristics
	PassFallback
)

var passNames = map[Pass]string{
	PassNesting:         "nesting",
	PassAPIPrefix:       "api-prefix",
	PassEndpointScore:   "endpoint-score",
	PassFlowScore:       "flow-score",
	PassEnumInheritance: "enum-inheritance",
	PassHeuristics:      "heuristics",
	PassFallback:        "fallback",
}

func (p Pass) String() string {
	if name, ok := passNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pass(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Pass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pass) UnmarshalText(text []byte) error {
	for pass, name := range passNames {
		if name == string(text) {
			*p = pass
			return nil
		}
	}
	return fmt.Errorf("unknown ownership pass %q", text)
}

// Assignment records who owns a construct and which pass decided it.
type Assignment struct {
	Component string `json:"component"`
	Pass      Pass   `json:"pass"`
}

// Snapshot is a read-only view of assignments at some point in the run.
type Snapshot map[ast.Key]Assignment

// Owner returns the owning component of key.
func (s Snapshot) Owner(key ast.Key) (string, bool) {
	a, ok := s[key]
	return a.Component, ok
}

func (s Snapshot) owned(kind ast.Kind, name string) (string, bool) {
	return s.Owner(ast.NewKey(kind, name))
}

// proposal is one pass's suggestion for an owner.
type proposal struct {
	key       ast.Key
	component string
}

// Owners is the result of Assign.
type Owners struct {
	assigned Snapshot
	passes   []Snapshot
}

// Owner returns the component owning key, or false when key is unassigned.
func (o *Owners) Owner(key ast.Key) (string, bool) {
	return o.assigned.Owner(key)
}

// Assignment returns the full assignment of key.
func (o *Owners) Assignment(key ast.Key) (Assignment, bool) {
	a, ok := o.assigned[key]
	return a, ok
}

// Len returns the number of assigned keys.
func (o *Owners) Len() int {
	return len(o.assigned)
}

// Map returns a copy of the ownership map.
func (o *Owners) Map() map[ast.Key]string {
	out := make(map[ast.Key]string, len(o.assigned))
	for k, a := range o.assigned {
		out[k] = a.Component
	}
	return out
}

// Assignments returns a copy of every assignment.
func (o *Owners) Assignments() Snapshot {
	return maps.Clone(o.assigned)
}

// Passes returns the cumulative snapshot taken after each pass, indexed by
// Pass-1.
func (o *Owners) Passes() []Snapshot {
	out := make([]Snapshot, len(o.passes))
	for i, s := range o.passes {
		out[i] = maps.Clone(s)
	}
	return out
}

// Assign runs every pass over m.
func Assign(ctx context.Context, m *collector.Model) *Owners {
	logger := ctxlog.FromContext(ctx)
	o := &Owners{assigned: make(Snapshot)}
	st := &state{model: m, components: m.ComponentNames()}

	run := func(pass Pass, fn func(*state, Snapshot) []proposal) {
		snap := maps.Clone(o.assigned)
		accepted := 0
		for _, p := range fn(st, snap) {
			if _, done := o.assigned[p.key]; done || p.component == "" {
				continue
			}
			o.assigned[p.key] = Assignment{Component: p.component, Pass: pass}
			accepted++
			logger.Debug("Assigned owner.", "key", p.key.String(), "component", p.component, "pass", pass.String())
		}
		o.passes = append(o.passes, maps.Clone(o.assigned))
		logger.Debug("Ownership pass finished.", "pass", pass.String(), "assigned", accepted, "total", len(o.assigned))
	}

	run(PassNesting, nestingPass)
	run(PassAPIPrefix, apiPrefixPass)
	run(PassEndpointScore, endpointScorePass)
	run(PassFlowScore, flowScorePass)
	run(PassEnumInheritance, enumInheritancePass)
	run(PassHeuristics, heuristicsPass)
	run(PassFallback, fallbackPass)

	if unassigned := len(m.Keys()) - len(o.assigned); unassigned > 0 {
		logger.Debug("Constructs left without owner.", "count", unassigned)
	}
	return o
}

// state carries what passes share besides the snapshot: the model and the
// raw endpoint scores pass 3 leaves for pass 4.
type state struct {
	model          *collector.Model
	components     []string
	endpointScores map[ast.Key]*scores
}
