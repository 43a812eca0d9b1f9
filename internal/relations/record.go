package relations

import "slices"

// Record holds every relationship of one construct. Which fields are used
// depends on the construct's kind; the rest stay empty.
type Record struct {
	References             []Ref `json:"references,omitempty"`
	ReferencedByEntities   []Ref `json:"referencedByEntities,omitempty"`
	ExposedByAPI           []Ref `json:"exposedByApi,omitempty"`
	InvolvesEntities       []Ref `json:"involvesEntities,omitempty"`
	UsedByFlows            []Ref `json:"usedByFlows,omitempty"`
	UsedByOperations       []Ref `json:"usedByOperations,omitempty"`
	TriggeredByEvents      []Ref `json:"triggeredByEvents,omitempty"`
	TriggersFlows          []Ref `json:"triggersFlows,omitempty"`
	TriggersOperations     []Ref `json:"triggersOperations,omitempty"`
	EmitsEvents            []Ref `json:"emitsEvents,omitempty"`
	EmittedByFlows         []Ref `json:"emittedByFlows,omitempty"`
	EmittedByOperations    []Ref `json:"emittedByOperations,omitempty"`
	TargetEnum             *Ref  `json:"targetEnum,omitempty"`
	StateMachines          []Ref `json:"stateMachines,omitempty"`
	TriggerEvents          []Ref `json:"triggerEvents,omitempty"`
	TriggersStates         []Ref `json:"triggersStates,omitempty"`
	GovernedByStates       []Ref `json:"governedByStates,omitempty"`
	GovernsEntities        []Ref `json:"governsEntities,omitempty"`
	SourceScreen           *Ref  `json:"sourceScreen,omitempty"`
	ActionSources          []Ref `json:"actionSources,omitempty"`
	HandlesSignals         []Ref `json:"handlesSignals,omitempty"`
	HandledByActions       []Ref `json:"handledByActions,omitempty"`
	EmitsSignals           []Ref `json:"emitsSignals,omitempty"`
	EmittedByActions       []Ref `json:"emittedByActions,omitempty"`
	StreamsFrom            []Ref `json:"streamsFrom,omitempty"`
	StreamedByActions      []Ref `json:"streamedByActions,omitempty"`
	TargetsEntities        []Ref `json:"targetsEntities,omitempty"`
	GovernedByRules        []Ref `json:"governedByRules,omitempty"`
	InvokesOperations      []Ref `json:"invokesOperations,omitempty"`
	InvokedByRules         []Ref `json:"invokedByRules,omitempty"`
	EnforcesRules          []Ref `json:"enforcesRules,omitempty"`
	EnforcedByOperations   []Ref `json:"enforcedByOperations,omitempty"`
	CallsOperations        []Ref `json:"callsOperations,omitempty"`
	CalledByFlows          []Ref `json:"calledByFlows,omitempty"`
	UsesElements           []Ref `json:"usesElements,omitempty"`
	UsedByScreens          []Ref `json:"usedByScreens,omitempty"`
	ExtendsParent          *Ref  `json:"extendsParent,omitempty"`
	ExtendedByChildren     []Ref `json:"extendedByChildren,omitempty"`
	ImplementsInterfaces   []Ref `json:"implementsInterfaces,omitempty"`
	ImplementedByConcretes []Ref `json:"implementedByConcretes,omitempty"`
}

// list returns a pointer to the list field for c, or nil for single-valued
// and unknown categories.
func (r *Record) list(c Category) *[]Ref {
	switch c {
	case References:
		return &r.References
	case ReferencedByEntities:
		return &r.ReferencedByEntities
	case ExposedByAPI:
		return &r.ExposedByAPI
	case InvolvesEntities:
		return &r.InvolvesEntities
	case UsedByFlows:
		return &r.UsedByFlows
	case UsedByOperations:
		return &r.UsedByOperations
	case TriggeredByEvents:
		return &r.TriggeredByEvents
	case TriggersFlows:
		return &r.TriggersFlows
	case TriggersOperations:
		return &r.TriggersOperations
	case EmitsEvents:
		return &r.EmitsEvents
	case EmittedByFlows:
		return &r.EmittedByFlows
	case EmittedByOperations:
		return &r.EmittedByOperations
	case StateMachines:
		return &r.StateMachines
	case TriggerEvents:
		return &r.TriggerEvents
	case TriggersStates:
		return &r.TriggersStates
	case GovernedByStates:
		return &r.GovernedByStates
	case GovernsEntities:
		return &r.GovernsEntities
	case ActionSources:
		return &r.ActionSources
	case HandlesSignals:
		return &r.HandlesSignals
	case HandledByActions:
		return &r.HandledByActions
	case EmitsSignals:
		return &r.EmitsSignals
	case EmittedByActions:
		return &r.EmittedByActions
	case StreamsFrom:
		return &r.StreamsFrom
	case StreamedByActions:
		return &r.StreamedByActions
	case TargetsEntities:
		return &r.TargetsEntities
	case GovernedByRules:
		return &r.GovernedByRules
	case InvokesOperations:
		return &r.InvokesOperations
	case InvokedByRules:
		return &r.InvokedByRules
	case EnforcesRules:
		return &r.EnforcesRules
	case EnforcedByOperations:
		return &r.EnforcedByOperations
	case CallsOperations:
		return &r.CallsOperations
	case CalledByFlows:
		return &r.CalledByFlows
	case UsesElements:
		return &r.UsesElements
	case UsedByScreens:
		return &r.UsedByScreens
	case ExtendedByChildren:
		return &r.ExtendedByChildren
	case ImplementsInterfaces:
		return &r.ImplementsInterfaces
	case ImplementedByConcretes:
		return &r.ImplementedByConcretes
	}
	return nil
}

// single returns a pointer to the single-valued field for c.
func (r *Record) single(c Category) **Ref {
	switch c {
	case TargetEnum:
		return &r.TargetEnum
	case SourceScreen:
		return &r.SourceScreen
	case ExtendsParent:
		return &r.ExtendsParent
	}
	return nil
}

// Get returns the references stored under c. Single-valued categories yield
// at most one element.
func (r *Record) Get(c Category) []Ref {
	if p := r.single(c); p != nil {
		if *p == nil {
			return nil
		}
		return []Ref{**p}
	}
	if l := r.list(c); l != nil {
		return slices.Clone(*l)
	}
	return nil
}

// Contains reports whether ref is stored under c.
func (r *Record) Contains(c Category, ref Ref) bool {
	return slices.Contains(r.Get(c), ref)
}

// IsEmpty reports whether the record holds no references at all.
func (r *Record) IsEmpty() bool {
	for _, c := range Categories() {
		if len(r.Get(c)) > 0 {
			return false
		}
	}
	return true
}

// add stores ref under c. Lists skip duplicates; single-valued categories
// keep the first reference.
func (r *Record) add(c Category, ref Ref) bool {
	if p := r.single(c); p != nil {
		if *p != nil {
			return false
		}
		v := ref
		*p = &v
		return true
	}
	if l := r.list(c); l != nil {
		return addRef(l, ref)
	}
	return false
}

func (r *Record) sort() {
	for _, c := range Categories() {
		if l := r.list(c); l != nil {
			slices.SortFunc(*l, compareRefs)
		}
	}
}
