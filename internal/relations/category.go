package relations

import "github.com/specialistvlad/specgraph/internal/ast"

// Category names a field of a Record.
type Category string

const (
	References             Category = "references"
	ReferencedByEntities   Category = "referencedByEntities"
	ExposedByAPI           Category = "exposedByApi"
	InvolvesEntities       Category = "involvesEntities"
	UsedByFlows            Category = "usedByFlows"
	UsedByOperations       Category = "usedByOperations"
	TriggeredByEvents      Category = "triggeredByEvents"
	TriggersFlows          Category = "triggersFlows"
	TriggersOperations     Category = "triggersOperations"
	EmitsEvents            Category = "emitsEvents"
	EmittedByFlows         Category = "emittedByFlows"
	EmittedByOperations    Category = "emittedByOperations"
	TargetEnum             Category = "targetEnum"
	StateMachines          Category = "stateMachines"
	TriggerEvents          Category = "triggerEvents"
	TriggersStates         Category = "triggersStates"
	GovernedByStates       Category = "governedByStates"
	GovernsEntities        Category = "governsEntities"
	SourceScreen           Category = "sourceScreen"
	ActionSources          Category = "actionSources"
	HandlesSignals         Category = "handlesSignals"
	HandledByActions       Category = "handledByActions"
	EmitsSignals           Category = "emitsSignals"
	EmittedByActions       Category = "emittedByActions"
	StreamsFrom            Category = "streamsFrom"
	StreamedByActions      Category = "streamedByActions"
	TargetsEntities        Category = "targetsEntities"
	GovernedByRules        Category = "governedByRules"
	InvokesOperations      Category = "invokesOperations"
	InvokedByRules         Category = "invokedByRules"
	EnforcesRules          Category = "enforcesRules"
	EnforcedByOperations   Category = "enforcedByOperations"
	CallsOperations        Category = "callsOperations"
	CalledByFlows          Category = "calledByFlows"
	UsesElements           Category = "usesElements"
	UsedByScreens          Category = "usedByScreens"
	ExtendsParent          Category = "extendsParent"
	ExtendedByChildren     Category = "extendedByChildren"
	ImplementsInterfaces   Category = "implementsInterfaces"
	ImplementedByConcretes Category = "implementedByConcretes"
)

// Pair ties a forward category to its inverse. Source is the kind of
// construct the forward edge starts from; it is empty for the inheritance
// categories, which apply to every kind that can inherit.
type Pair struct {
	Forward Category
	Inverse Category
	Source  ast.Kind
}

var pairs = []Pair{
	{References, ReferencedByEntities, ast.KindEntity},
	{GovernedByStates, GovernsEntities, ast.KindEntity},
	{InvolvesEntities, UsedByFlows, ast.KindFlow},
	{TriggeredByEvents, TriggersFlows, ast.KindFlow},
	{EmitsEvents, EmittedByFlows, ast.KindFlow},
	{CallsOperations, CalledByFlows, ast.KindFlow},
	{InvolvesEntities, UsedByOperations, ast.KindOperation},
	{TriggeredByEvents, TriggersOperations, ast.KindOperation},
	{EmitsEvents, EmittedByOperations, ast.KindOperation},
	{EnforcesRules, EnforcedByOperations, ast.KindOperation},
	{TargetEnum, StateMachines, ast.KindState},
	{TriggerEvents, TriggersStates, ast.KindState},
	{SourceScreen, ActionSources, ast.KindAction},
	{HandlesSignals, HandledByActions, ast.KindAction},
	{EmitsSignals, EmittedByActions, ast.KindAction},
	{StreamsFrom, StreamedByActions, ast.KindAction},
	{TargetsEntities, GovernedByRules, ast.KindRule},
	{InvokesOperations, InvokedByRules, ast.KindRule},
	{UsesElements, UsedByScreens, ast.KindScreen},
	{ExtendsParent, ExtendedByChildren, ""},
	{ImplementsInterfaces, ImplementedByConcretes, ""},
}

// Pairs returns the forward/inverse category table.
func Pairs() []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

// InverseOf returns the inverse of a forward category for edges starting at
// a construct of kind source.
func InverseOf(forward Category, source ast.Kind) (Category, bool) {
	for _, p := range pairs {
		if p.Forward == forward && (p.Source == "" || p.Source == source) {
			return p.Inverse, true
		}
	}
	return "", false
}

// IsForward reports whether c is the forward side of some pair.
func IsForward(c Category) bool {
	for _, p := range pairs {
		if p.Forward == c {
			return true
		}
	}
	return false
}

// singles are the categories holding at most one reference.
var singles = map[Category]bool{
	TargetEnum:    true,
	SourceScreen:  true,
	ExtendsParent: true,
}

// IsSingle reports whether c holds at most one reference.
func IsSingle(c Category) bool {
	return singles[c]
}

// Categories lists every category in Record field order.
func Categories() []Category {
	return []Category{
		References, ReferencedByEntities, ExposedByAPI,
		InvolvesEntities, UsedByFlows, UsedByOperations,
		TriggeredByEvents, TriggersFlows, TriggersOperations,
		EmitsEvents, EmittedByFlows, EmittedByOperations,
		TargetEnum, StateMachines, TriggerEvents, TriggersStates,
		GovernedByStates, GovernsEntities,
		SourceScreen, ActionSources, HandlesSignals, HandledByActions,
		EmitsSignals, EmittedByActions, StreamsFrom, StreamedByActions,
		TargetsEntities, GovernedByRules, InvokesOperations, InvokedByRules,
		EnforcesRules, EnforcedByOperations, CallsOperations, CalledByFlows,
		UsesElements, UsedByScreens,
		ExtendsParent, ExtendedByChildren, ImplementsInterfaces, ImplementedByConcretes,
	}
}
