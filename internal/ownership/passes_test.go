package ownership

import (
	"testing"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestScores(t *testing.T) {
	sc := newScores()
	_, ok := sc.best()
	assert.False(t, ok, "empty scores have no winner")

	sc.add("B", 3)
	sc.add("A", 3)
	winner, ok := sc.best()
	assert.True(t, ok)
	assert.Equal(t, "B", winner, "ties keep the first scorer")

	winner, _ = sc.bestIn([]string{"A", "B"})
	assert.Equal(t, "A", winner, "bestIn breaks ties by the given order")

	sc.add("A", 1)
	winner, _ = sc.best()
	assert.Equal(t, "A", winner)
}

func TestFlowScorePass_PropagatesEndpointScores(t *testing.T) {
	m := testutil.CollectModel(t, `
component "Sales" {}
component "Billing" {}
entity "Invoice" {}
flow "Collect" {
  step "charge" { args = ["Invoice"] }
}
`)
	raw := newScores()
	raw.add("Billing", 3)
	raw.add("Sales", 3)
	st := &state{
		model:          m,
		components:     m.ComponentNames(),
		endpointScores: map[ast.Key]*scores{ast.NewKey(ast.KindEntity, "Invoice"): raw},
	}

	got := flowScorePass(st, Snapshot{})
	assert.Equal(t, []proposal{{key: ast.NewKey(ast.KindFlow, "Collect"), component: "Billing"}}, got)
}

func TestFlowScorePass_SkipsAssignedFlows(t *testing.T) {
	m := testutil.CollectModel(t, `
component "Sales" {
  entity "Invoice" {}
}
flow "Collect" {
  step "charge" { args = ["Invoice"] }
}
`)
	st := &state{model: m, components: m.ComponentNames()}
	snap := Snapshot{
		ast.NewKey(ast.KindEntity, "Invoice"): {Component: "Sales", Pass: PassNesting},
		ast.NewKey(ast.KindFlow, "Collect"):   {Component: "Elsewhere", Pass: PassNesting},
	}

	assert.Empty(t, flowScorePass(st, snap))
}

func TestHeuristicsPass_ReadsOnlyItsSnapshot(t *testing.T) {
	m := testutil.CollectModel(t, `
component "Core" {}
entity "Order" {}
event "OrderPlaced" {}
operation "Place" { emits = ["OrderPlaced"] }
`)
	st := &state{model: m, components: m.ComponentNames()}
	snap := Snapshot{ast.NewKey(ast.KindEntity, "Order"): {Component: "Core", Pass: PassNesting}}

	got := heuristicsPass(st, snap)
	assert.Equal(t, []proposal{{key: ast.NewKey(ast.KindEvent, "OrderPlaced"), component: "Core"}}, got)
}

func TestEnumInheritancePass_SkipsUnownedEntities(t *testing.T) {
	m := testutil.CollectModel(t, `
entity "Draft" {
  field "s" { type = Status }
}
entity "Order" {
  field "s" { type = optional(Status) }
}
enum "Status" { values = ["x"] }
`)
	st := &state{model: m}
	snap := Snapshot{ast.NewKey(ast.KindEntity, "Order"): {Component: "Orders", Pass: PassNesting}}

	got := enumInheritancePass(st, snap)
	assert.Equal(t, []proposal{{key: ast.NewKey(ast.KindEnum, "Status"), component: "Orders"}}, got)
}
