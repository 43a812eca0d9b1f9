package relations

import (
	"context"
	"log/slog"
	"strings"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/collector"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// OwnerLookup answers which component owns a construct.
type OwnerLookup interface {
	Owner(key ast.Key) (string, bool)
}

// inheritingKinds are the kinds whose extends/implements clauses produce
// inheritance edges.
var inheritingKinds = []ast.Kind{
	ast.KindElement, ast.KindEntity, ast.KindFlow, ast.KindEvent,
	ast.KindSignal, ast.KindScreen, ast.KindComponent,
}

// Build computes the relationship graph of m. Records are created on first
// reference, so constructs nothing points at and that point at nothing have
// no record.
func Build(ctx context.Context, m *collector.Model, owners OwnerLookup) *Graph {
	b := &builder{
		model:  m,
		owners: owners,
		graph:  newGraph(),
		logger: ctxlog.FromContext(ctx),
	}

	b.linkEntities()
	b.linkStates()
	b.linkFlows()
	b.linkAPIs()
	b.linkActions()
	b.linkRules()
	b.linkOperations()
	b.linkScreens()
	b.linkInheritance()
	b.touchJourneyScreens()

	for _, rec := range b.graph.records {
		rec.sort()
	}
	b.logger.Debug("Built relationship graph.", "records", b.graph.Len(), "links", b.links)
	return b.graph
}

type builder struct {
	model  *collector.Model
	owners OwnerLookup
	graph  *Graph
	logger *slog.Logger
	links  int
}

func (b *builder) ref(key ast.Key) Ref {
	comp, _ := b.owners.Owner(key)
	return Ref{Component: comp, Kind: key.Kind, Name: key.Name}
}

func (b *builder) record(key ast.Key) *Record {
	if rec, ok := b.graph.records[key]; ok {
		return rec
	}
	rec := &Record{}
	b.graph.records[key] = rec
	b.graph.self[key] = b.ref(key)
	return rec
}

// link stores src -fwd-> dst and dst -inv-> src. A single-valued forward
// category that already points elsewhere keeps its value and the inverse is
// not written either.
func (b *builder) link(src ast.Key, fwd Category, dst ast.Key, inv Category) {
	from := b.record(src)
	to := b.record(dst)
	dstRef, srcRef := b.ref(dst), b.ref(src)

	if IsSingle(fwd) {
		if cur := from.Get(fwd); len(cur) > 0 && cur[0] != dstRef {
			return
		}
	}
	added := from.add(fwd, dstRef)
	to.add(inv, srcRef)
	if added {
		b.links++
		b.logger.Debug("Linked constructs.", "from", src.String(), "category", fwd, "to", dst.String())
	}
}

// declared returns the key of name under kind when such a construct exists.
func (b *builder) declared(kind ast.Kind, name string) (ast.Key, bool) {
	if name == "" || !b.model.Has(kind, name) {
		return ast.Key{}, false
	}
	return ast.NewKey(kind, name), true
}

// dataTarget resolves a type reference to an entity, then an enum.
func (b *builder) dataTarget(name string) (ast.Key, bool) {
	if key, ok := b.declared(ast.KindEntity, name); ok {
		return key, true
	}
	return b.declared(ast.KindEnum, name)
}

// mentionedEntities returns the entities whose names occur in any of texts.
func (b *builder) mentionedEntities(texts ...string) []ast.Key {
	return mentioned(b.model.Entities, texts)
}

// mentionedEvents returns the events whose names occur in any of texts.
func (b *builder) mentionedEvents(texts ...string) []ast.Key {
	return mentioned(b.model.Events, texts)
}

func mentioned[T ast.Construct](items []T, texts []string) []ast.Key {
	var out []ast.Key
	for _, item := range items {
		key := item.Key()
		if key.Name == "" {
			continue
		}
		for _, text := range texts {
			if strings.Contains(text, key.Name) {
				out = append(out, key)
				break
			}
		}
	}
	return out
}

func (b *builder) linkEntities() {
	for _, e := range b.model.Entities {
		for _, f := range e.Fields {
			for _, name := range ast.TypeRefs(f.Type) {
				if key, ok := b.dataTarget(name); ok {
					b.link(e.Key(), References, key, ReferencedByEntities)
				}
			}
		}
	}
}

func (b *builder) linkStates() {
	for _, s := range b.model.States {
		enumKey, hasEnum := b.declared(ast.KindEnum, s.EnumRef)
		if hasEnum {
			b.link(s.Key(), TargetEnum, enumKey, StateMachines)
		}
		for _, t := range s.Transitions {
			if key, ok := b.declared(ast.KindEvent, t.On); ok {
				b.link(s.Key(), TriggerEvents, key, TriggersStates)
			}
		}
		if s.EnumRef == "" {
			continue
		}
		for _, e := range b.model.Entities {
			if entityUses(e, s.EnumRef) {
				b.link(e.Key(), GovernedByStates, s.Key(), GovernsEntities)
			}
		}
	}
}

func entityUses(e *ast.Entity, typeName string) bool {
	for _, f := range e.Fields {
		for _, name := range ast.TypeRefs(f.Type) {
			if name == typeName {
				return true
			}
		}
	}
	return false
}

func (b *builder) linkFlows() {
	for _, flow := range b.model.Flows {
		src := flow.Key()

		texts := make([]string, 0, len(flow.Steps))
		for _, step := range flow.Steps {
			texts = append(texts, step.Text())
		}
		for _, key := range b.mentionedEntities(texts...) {
			b.link(src, InvolvesEntities, key, UsedByFlows)
		}
		for _, t := range paramTypes(flow.Params, flow.Returns) {
			for _, name := range ast.TypeRefs(t) {
				if key, ok := b.declared(ast.KindEntity, name); ok {
					b.link(src, InvolvesEntities, key, UsedByFlows)
				}
			}
		}

		for _, name := range flow.On {
			if key, ok := b.declared(ast.KindEvent, name); ok {
				b.link(src, TriggeredByEvents, key, TriggersFlows)
			}
		}
		for _, name := range flow.Emits {
			if key, ok := b.declared(ast.KindEvent, name); ok {
				b.link(src, EmitsEvents, key, EmittedByFlows)
			}
		}

		for _, key := range b.mentionedEvents(texts...) {
			b.link(src, EmitsEvents, key, EmittedByFlows)
		}

		for _, step := range flow.Steps {
			switch step.Action {
			case actionEmit, actionReturn:
			default:
				if key, ok := b.declared(ast.KindOperation, step.Action); ok {
					b.link(src, CallsOperations, key, CalledByFlows)
				}
			}
		}
	}
}

// linkAPIs records entities taken or returned by endpoints as exposed by the
// API. The edge is one-sided; the API's own record is created but holds no
// forward reference.
func (b *builder) linkAPIs() {
	for _, api := range b.model.APIs {
		apiKey := api.Key()
		for _, ep := range api.Endpoints {
			for _, t := range []ast.TypeExpr{ep.Input, ep.Output} {
				for _, name := range ast.TypeRefs(t) {
					key, ok := b.declared(ast.KindEntity, name)
					if !ok {
						continue
					}
					b.record(apiKey)
					if b.record(key).add(ExposedByAPI, b.ref(apiKey)) {
						b.links++
					}
				}
			}
		}
	}
}

func (b *builder) linkActions() {
	for _, a := range b.model.Actions {
		src := a.Key()
		if key, ok := b.declared(ast.KindScreen, a.From); ok {
			b.link(src, SourceScreen, key, ActionSources)
		}
		for _, name := range a.On {
			if key, ok := b.declared(ast.KindSignal, name); ok {
				b.link(src, HandlesSignals, key, HandledByActions)
			}
		}
		for _, name := range a.Emits {
			if key, ok := b.declared(ast.KindSignal, name); ok {
				b.link(src, EmitsSignals, key, EmittedByActions)
			}
		}
		if a.Stream != "" {
			for _, key := range b.streamingAPIs(a.Stream) {
				b.link(src, StreamsFrom, key, StreamedByActions)
			}
		}
	}
}

// streamingAPIs returns the APIs with a STREAM endpoint whose prefixed path
// equals stream.
func (b *builder) streamingAPIs(stream string) []ast.Key {
	want := normalizePath(stream)
	var out []ast.Key
	for _, api := range b.model.APIs {
		prefix := api.Prefix()
		for _, ep := range api.Endpoints {
			if !strings.EqualFold(ep.Method, ast.MethodStream) {
				continue
			}
			if normalizePath(prefix+ep.Path) == want {
				out = append(out, api.Key())
				break
			}
		}
	}
	return out
}

func (b *builder) linkRules() {
	for _, r := range b.model.Rules {
		src := r.Key()

		var texts []string
		for _, c := range r.Clauses {
			texts = append(texts, c.Texts()...)
		}
		for _, key := range b.mentionedEntities(texts...) {
			b.link(src, TargetsEntities, key, GovernedByRules)
		}

		for _, c := range r.Clauses {
			switch c.Kind {
			case ast.ClauseThen, ast.ClauseElseIf, ast.ClauseElse:
			default:
				continue
			}
			name, ok := calledName(c.Action)
			if !ok || name == actionEmit || name == actionDeny {
				continue
			}
			if key, ok := b.declared(ast.KindOperation, name); ok {
				b.link(src, InvokesOperations, key, InvokedByRules)
			}
		}
	}
}

func (b *builder) linkOperations() {
	for _, op := range b.model.Operations {
		src := op.Key()
		for _, name := range op.Emits {
			if key, ok := b.declared(ast.KindEvent, name); ok {
				b.link(src, EmitsEvents, key, EmittedByOperations)
			}
		}
		for _, name := range op.On {
			if key, ok := b.declared(ast.KindEvent, name); ok {
				b.link(src, TriggeredByEvents, key, TriggersOperations)
			}
		}
		for _, name := range op.Enforces {
			if key, ok := b.declared(ast.KindRule, name); ok {
				b.link(src, EnforcesRules, key, EnforcedByOperations)
			}
		}
		for _, t := range paramTypes(op.Params, op.Returns) {
			for _, name := range ast.TypeRefs(t) {
				if key, ok := b.declared(ast.KindEntity, name); ok {
					b.link(src, InvolvesEntities, key, UsedByOperations)
				}
			}
		}
	}
}

func (b *builder) linkScreens() {
	for _, s := range b.model.Screens {
		for _, name := range s.Uses {
			if key, ok := b.declared(ast.KindElement, name); ok {
				b.link(s.Key(), UsesElements, key, UsedByScreens)
			}
		}
	}
}

// linkInheritance resolves extends and implements against constructs of the
// same kind.
func (b *builder) linkInheritance() {
	for _, kind := range inheritingKinds {
		for _, c := range b.model.ByKind(kind) {
			inh, ok := c.(ast.Inheritor)
			if !ok {
				continue
			}
			clause := inh.Inheritance()
			if key, ok := b.declared(kind, clause.Extends); ok {
				b.link(c.Key(), ExtendsParent, key, ExtendedByChildren)
			}
			for _, name := range clause.Implements {
				if key, ok := b.declared(kind, name); ok {
					b.link(c.Key(), ImplementsInterfaces, key, ImplementedByConcretes)
				}
			}
		}
	}
}

// touchJourneyScreens makes sure every screen a journey passes through has a
// record, without adding edges.
func (b *builder) touchJourneyScreens() {
	for _, j := range b.model.Journeys {
		for _, step := range j.Steps {
			for _, name := range []string{step.From, step.To} {
				if name == "" || name == "*" || name == "end" {
					continue
				}
				b.record(ast.NewKey(ast.KindScreen, name))
			}
		}
	}
}

func paramTypes(params []ast.Param, returns ast.TypeExpr) []ast.TypeExpr {
	out := make([]ast.TypeExpr, 0, len(params)+1)
	for _, p := range params {
		out = append(out, p.Type)
	}
	return append(out, returns)
}
