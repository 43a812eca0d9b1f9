package ownership

import (
	"strings"

	"github.com/specialistvlad/specgraph/internal/ast"
)

// heuristicsPass runs the per-kind heuristics. Each reads only snap, so their
// relative order does not matter.
func heuristicsPass(st *state, snap Snapshot) []proposal {
	var out []proposal
	propose := func(key ast.Key, comp string, ok bool) {
		if !ok {
			return
		}
		if _, done := snap[key]; done {
			return
		}
		out = append(out, proposal{key: key, component: comp})
	}

	m := st.model
	for _, ev := range m.Events {
		comp, ok := st.entityInName(snap, ev.Name)
		propose(ev.Key(), comp, ok)
	}
	for _, sig := range m.Signals {
		comp, ok := st.entityInName(snap, sig.Name)
		propose(sig.Key(), comp, ok)
	}
	for _, s := range m.States {
		comp, ok := snap.owned(ast.KindEnum, s.EnumRef)
		propose(s.Key(), comp, ok)
	}
	for _, r := range m.Rules {
		comp, ok := st.ruleOwner(snap, r)
		propose(r.Key(), comp, ok)
	}
	for _, j := range m.Journeys {
		comp, ok := journeyOwner(snap, j)
		propose(j.Key(), comp, ok)
	}
	for _, op := range m.Operations {
		comp, ok := st.operationOwner(snap, op)
		propose(op.Key(), comp, ok)
	}
	for _, el := range m.Elements {
		comp, ok := st.elementOwner(snap, el)
		propose(el.Key(), comp, ok)
	}
	for _, a := range m.Actions {
		comp, ok := snap.owned(ast.KindScreen, a.From)
		propose(a.Key(), comp, ok)
	}
	return out
}

// entityInName returns the owner of the first owned entity whose name occurs
// in name.
func (st *state) entityInName(snap Snapshot, name string) (string, bool) {
	for _, entity := range st.model.Entities {
		if entity.Name == "" || !strings.Contains(name, entity.Name) {
			continue
		}
		if comp, ok := snap.Owner(entity.Key()); ok {
			return comp, true
		}
	}
	return "", false
}

// ruleOwner scores components by how often their entities are named in the
// rule's clauses. Ties go to the earlier declared component.
func (st *state) ruleOwner(snap Snapshot, r *ast.Rule) (string, bool) {
	var texts []string
	for _, c := range r.Clauses {
		texts = append(texts, c.Texts()...)
	}
	if len(texts) == 0 {
		return "", false
	}

	sc := newScores()
	for _, entity := range st.model.Entities {
		if entity.Name == "" {
			continue
		}
		comp, ok := snap.Owner(entity.Key())
		if !ok {
			continue
		}
		n := 0
		for _, text := range texts {
			n += strings.Count(text, entity.Name)
		}
		if n > 0 {
			sc.add(comp, n)
		}
	}
	return sc.bestIn(st.components)
}

// journeyOwner follows the first step that does not start from the wildcard.
func journeyOwner(snap Snapshot, j *ast.Journey) (string, bool) {
	for _, step := range j.Steps {
		if step.From == "" || step.From == "*" {
			continue
		}
		return snap.owned(ast.KindScreen, step.From)
	}
	return "", false
}

// operationOwner scores typed references to owned entities and enums (+3)
// and owned events the operation emits or reacts to (+2). Ties go to the
// earlier declared component.
func (st *state) operationOwner(snap Snapshot, op *ast.Operation) (string, bool) {
	sc := newScores()
	for _, t := range operationTypes(op) {
		for _, name := range ast.TypeRefs(t) {
			if comp, ok := st.ownedData(snap, name); ok {
				sc.add(comp, 3)
			}
		}
	}
	for _, group := range [][]string{op.Emits, op.On} {
		for _, name := range group {
			if comp, ok := snap.owned(ast.KindEvent, name); ok {
				sc.add(comp, 2)
			}
		}
	}
	return sc.bestIn(st.components)
}

// elementOwner follows the first prop whose type references an owned entity.
func (st *state) elementOwner(snap Snapshot, el *ast.Element) (string, bool) {
	for _, prop := range el.Props {
		for _, name := range ast.TypeRefs(prop.Type) {
			if comp, ok := snap.owned(ast.KindEntity, name); ok {
				return comp, true
			}
		}
	}
	return "", false
}
