package collector

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/specgraph/internal/ast"
)

// Model is the collected form of a resolved document. It is built once by
// Collect and treated as read-only afterwards.
type Model struct {
	Elements   []*ast.Element
	Entities   []*ast.Entity
	Enums      []*ast.Enum
	Flows      []*ast.Flow
	States     []*ast.State
	Events     []*ast.Event
	Signals    []*ast.Signal
	APIs       []*ast.API
	Rules      []*ast.Rule
	Screens    []*ast.Screen
	Journeys   []*ast.Journey
	Operations []*ast.Operation
	Actions    []*ast.Action
	Components []*ast.Component
	Systems    []*ast.System
	Deps       []*ast.Dep
	Secrets    []*ast.Secret
	Nodes      []*ast.InfraNode

	// Enclosing maps a construct key to the name of the component it is
	// lexically declared in. Top-level constructs have no entry.
	Enclosing map[ast.Key]string

	// Unhandled lists nodes the walk did not recognize.
	Unhandled []Unhandled

	keys  []ast.Key
	index map[ast.Key]ast.Construct
}

// Unhandled is a node of a type the collector does not know.
type Unhandled struct {
	Type  string
	Range hcl.Range
}

// Diagnostic renders the unhandled node as an HCL warning.
func (u Unhandled) Diagnostic() *hcl.Diagnostic {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  "Unhandled node",
		Detail:   "Nodes of type " + u.Type + " are not collected.",
	}
	if u.Range.Filename != "" {
		d.Subject = u.Range.Ptr()
	}
	return d
}

func newModel() *Model {
	return &Model{
		Enclosing: make(map[ast.Key]string),
		index:     make(map[ast.Key]ast.Construct),
	}
}

// Keys returns every distinct construct key in collection order.
func (m *Model) Keys() []ast.Key {
	out := make([]ast.Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// Lookup returns the first construct declared under key.
func (m *Model) Lookup(key ast.Key) (ast.Construct, bool) {
	c, ok := m.index[key]
	return c, ok
}

// Has reports whether a construct with the given kind and name exists.
func (m *Model) Has(kind ast.Kind, name string) bool {
	_, ok := m.index[ast.NewKey(kind, name)]
	return ok
}

// Entity returns the first entity named name.
func (m *Model) Entity(name string) (*ast.Entity, bool) {
	c, ok := m.index[ast.NewKey(ast.KindEntity, name)]
	if !ok {
		return nil, false
	}
	return c.(*ast.Entity), true
}

// Operation returns the first operation named name.
func (m *Model) Operation(name string) (*ast.Operation, bool) {
	c, ok := m.index[ast.NewKey(ast.KindOperation, name)]
	if !ok {
		return nil, false
	}
	return c.(*ast.Operation), true
}

// ByKind returns every construct of kind in collection order.
func (m *Model) ByKind(kind ast.Kind) []ast.Construct {
	switch kind {
	case ast.KindElement:
		return constructs(m.Elements)
	case ast.KindEntity:
		return constructs(m.Entities)
	case ast.KindEnum:
		return constructs(m.Enums)
	case ast.KindFlow:
		return constructs(m.Flows)
	case ast.KindState:
		return constructs(m.States)
	case ast.KindEvent:
		return constructs(m.Events)
	case ast.KindSignal:
		return constructs(m.Signals)
	case ast.KindAPI:
		return constructs(m.APIs)
	case ast.KindRule:
		return constructs(m.Rules)
	case ast.KindScreen:
		return constructs(m.Screens)
	case ast.KindJourney:
		return constructs(m.Journeys)
	case ast.KindOperation:
		return constructs(m.Operations)
	case ast.KindAction:
		return constructs(m.Actions)
	case ast.KindComponent:
		return constructs(m.Components)
	case ast.KindSystem:
		return constructs(m.Systems)
	case ast.KindDep:
		return constructs(m.Deps)
	case ast.KindSecret:
		return constructs(m.Secrets)
	case ast.KindNode:
		return constructs(m.Nodes)
	default:
		return nil
	}
}

func constructs[T ast.Construct](items []T) []ast.Construct {
	out := make([]ast.Construct, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ComponentNames returns component names in declaration order, without
// duplicates.
func (m *Model) ComponentNames() []string {
	seen := make(map[string]bool, len(m.Components))
	out := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c.Name)
	}
	return out
}

// KnownTypes returns the names usable in a type position: primitive keywords
// plus entity, enum and event names. Events count because stream endpoints
// may return event payloads.
func KnownTypes(m *Model) map[string]bool {
	out := make(map[string]bool, len(ast.PrimitiveTypes)+len(m.Entities)+len(m.Enums)+len(m.Events))
	for name := range ast.PrimitiveTypes {
		out[name] = true
	}
	for _, e := range m.Entities {
		out[e.Name] = true
	}
	for _, e := range m.Enums {
		out[e.Name] = true
	}
	for _, e := range m.Events {
		out[e.Name] = true
	}
	return out
}

// KnownNames returns every name a cross-reference may target.
func KnownNames(m *Model) map[string]bool {
	out := make(map[string]bool, len(m.keys))
	for _, key := range m.keys {
		out[key.Name] = true
	}
	for _, api := range m.APIs {
		if api.Name != "" {
			out[api.Name] = true
		}
	}
	return out
}
