package ownership

import (
	"strings"

	"github.com/specialistvlad/specgraph/internal/ast"
)

// nestingPass assigns constructs to their lexically enclosing component and
// every component to itself.
func nestingPass(st *state, _ Snapshot) []proposal {
	var out []proposal
	for _, key := range st.model.Keys() {
		if key.Kind == ast.KindComponent {
			out = append(out, proposal{key: key, component: key.Name})
			continue
		}
		if comp, ok := st.model.Enclosing[key]; ok {
			out = append(out, proposal{key: key, component: comp})
		}
	}
	return out
}

// apiPrefixPass gives a named API to the first component whose name is a
// case-insensitive prefix of the API name.
func apiPrefixPass(st *state, snap Snapshot) []proposal {
	var out []proposal
	for _, api := range st.model.APIs {
		if api.Name == "" {
			continue
		}
		if _, ok := snap[api.Key()]; ok {
			continue
		}
		name := strings.ToLower(api.Name)
		for _, comp := range st.components {
			if comp != "" && strings.HasPrefix(name, strings.ToLower(comp)) {
				out = append(out, proposal{key: api.Key(), component: comp})
				break
			}
		}
	}
	return out
}

// endpointScorePass scores unassigned entities and enums by the endpoints of
// owned APIs that mention them. The raw scores are kept for flowScorePass.
func endpointScorePass(st *state, snap Snapshot) []proposal {
	st.endpointScores = make(map[ast.Key]*scores)
	var order []ast.Key

	for _, api := range st.model.APIs {
		comp, ok := snap.Owner(api.Key())
		if !ok {
			continue
		}
		for _, ep := range api.Endpoints {
			for _, t := range []ast.TypeExpr{ep.Input, ep.Output} {
				for _, name := range ast.TypeRefs(t) {
					key, ok := st.dataKey(name)
					if !ok {
						continue
					}
					if _, owned := snap[key]; owned {
						continue
					}
					sc, seen := st.endpointScores[key]
					if !seen {
						sc = newScores()
						st.endpointScores[key] = sc
						order = append(order, key)
					}
					sc.add(comp, 3)
				}
			}
		}
	}

	out := make([]proposal, 0, len(order))
	for _, key := range order {
		if comp, ok := st.endpointScores[key].best(); ok {
			out = append(out, proposal{key: key, component: comp})
		}
	}
	return out
}

// flowScorePass scores unassigned flows by the entities their steps mention
// and the entities and enums their parameters and return type reference.
func flowScorePass(st *state, snap Snapshot) []proposal {
	var out []proposal
	for _, flow := range st.model.Flows {
		if _, ok := snap[flow.Key()]; ok {
			continue
		}
		sc := newScores()

		text := stepText(flow.Steps)
		for _, entity := range st.model.Entities {
			if entity.Name == "" || !strings.Contains(text, entity.Name) {
				continue
			}
			if comp, ok := snap.Owner(entity.Key()); ok {
				sc.add(comp, 2)
			} else if raw, ok := st.endpointScores[entity.Key()]; ok {
				sc.merge(raw)
			}
		}

		for _, t := range flowTypes(flow) {
			for _, name := range ast.TypeRefs(t) {
				if comp, ok := st.ownedData(snap, name); ok {
					sc.add(comp, 3)
				}
			}
		}

		if comp, ok := sc.best(); ok {
			out = append(out, proposal{key: flow.Key(), component: comp})
		}
	}
	return out
}

// enumInheritancePass gives an unassigned enum to the owner of the first
// owned entity with a field typed by it.
func enumInheritancePass(st *state, snap Snapshot) []proposal {
	var out []proposal
	for _, enum := range st.model.Enums {
		if _, ok := snap[enum.Key()]; ok {
			continue
		}
		if comp, ok := st.entityReferencing(snap, enum.Name); ok {
			out = append(out, proposal{key: enum.Key(), component: comp})
		}
	}
	return out
}

// fallbackPass gives everything still unassigned to the first component.
func fallbackPass(st *state, snap Snapshot) []proposal {
	if len(st.components) == 0 {
		return nil
	}
	first := st.components[0]
	var out []proposal
	for _, key := range st.model.Keys() {
		if _, ok := snap[key]; !ok {
			out = append(out, proposal{key: key, component: first})
		}
	}
	return out
}

func (st *state) entityReferencing(snap Snapshot, enumName string) (string, bool) {
	for _, entity := range st.model.Entities {
		comp, owned := snap.Owner(entity.Key())
		if !owned {
			continue
		}
		for _, f := range entity.Fields {
			for _, name := range ast.TypeRefs(f.Type) {
				if name == enumName {
					return comp, true
				}
			}
		}
	}
	return "", false
}

// dataKey resolves a type reference to an entity, then an enum.
func (st *state) dataKey(name string) (ast.Key, bool) {
	for _, kind := range []ast.Kind{ast.KindEntity, ast.KindEnum} {
		if st.model.Has(kind, name) {
			return ast.NewKey(kind, name), true
		}
	}
	return ast.Key{}, false
}

// ownedData returns the owner of the entity or enum a type reference names.
func (st *state) ownedData(snap Snapshot, name string) (string, bool) {
	key, ok := st.dataKey(name)
	if !ok {
		return "", false
	}
	return snap.Owner(key)
}

func stepText(steps []ast.FlowStep) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.Text()
	}
	return strings.Join(parts, " ")
}

func flowTypes(flow *ast.Flow) []ast.TypeExpr {
	out := make([]ast.TypeExpr, 0, len(flow.Params)+1)
	for _, p := range flow.Params {
		out = append(out, p.Type)
	}
	return append(out, flow.Returns)
}

func operationTypes(op *ast.Operation) []ast.TypeExpr {
	out := make([]ast.TypeExpr, 0, len(op.Params)+1)
	for _, p := range op.Params {
		out = append(out, p.Type)
	}
	return append(out, op.Returns)
}
