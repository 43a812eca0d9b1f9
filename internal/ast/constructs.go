// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the construct declarations that are not containers.
package ast

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Field is a typed member of an entity, event or signal.
type Field struct {
	Name       string
	Type       TypeExpr
	Optional   bool
	Decorators []Decorator
	Range      hcl.Range
}

// Param is a named, typed parameter of a flow or operation.
type Param struct {
	Name  string
	Type  TypeExpr
	Range hcl.Range
}

// Prop is a typed input of a UI element.
type Prop struct {
	Name  string
	Type  TypeExpr
	Range hcl.Range
}

// Element is a reusable UI element.
type Element struct {
	Decl
	Inherit
	Props []Prop
}

// Entity is a domain record.
type Entity struct {
	Decl
	Inherit
	Fields []Field
}

// Enum is a closed set of values.
type Enum struct {
	Decl
	Values []string
}

// FlowStep is one step of a flow: an action name followed by free-form args.
type FlowStep struct {
	Action string
	Args   []string
	Range  hcl.Range
}

// Text returns the action and args joined by spaces, the form heuristics
// scan for names.
func (s FlowStep) Text() string {
	if len(s.Args) == 0 {
		return s.Action
	}
	return s.Action + " " + strings.Join(s.Args, " ")
}

// Flow is a business process.
type Flow struct {
	Decl
	Inherit
	Params  []Param
	Returns TypeExpr
	Steps   []FlowStep
	On      []string
	Emits   []string
}

// Transition moves a state machine between two enum values.
type Transition struct {
	From  string
	To    string
	On    string
	Range hcl.Range
}

// State is a state machine over the values of an enum.
type State struct {
	Decl
	EnumRef     string
	Transitions []Transition
}

// Event is a domain event.
type Event struct {
	Decl
	Inherit
	Fields []Field
}

// Signal is a UI-level notification.
type Signal struct {
	Decl
	Inherit
	Fields []Field
}

// Endpoint is one operation of an API. Input and Output may be nil.
type Endpoint struct {
	Method string
	Path   string
	Input  TypeExpr
	Output TypeExpr
	Range  hcl.Range
}

// MethodStream marks streaming endpoints.
const MethodStream = "STREAM"

// API is a transport surface. Name is empty for anonymous APIs.
type API struct {
	Decl
	Style     string
	Endpoints []Endpoint
}

// Prefix returns the first argument of the @prefix decorator.
func (a *API) Prefix() string {
	if dec, ok := a.Decorator("prefix"); ok && len(dec.Args) > 0 {
		return dec.Args[0]
	}
	return ""
}

// ClauseKind names the role of a rule clause.
type ClauseKind string

const (
	ClauseWhen   ClauseKind = "when"
	ClauseThen   ClauseKind = "then"
	ClauseElseIf ClauseKind = "elseif"
	ClauseElse   ClauseKind = "else"
	ClauseExpect ClauseKind = "expect"
)

// RuleClause is one clause of a rule body.
type RuleClause struct {
	Kind       ClauseKind
	Condition  string
	Expression string
	Action     string
	Range      hcl.Range
}

// Texts returns the non-empty condition, expression and action texts.
func (c RuleClause) Texts() []string {
	var out []string
	for _, s := range []string{c.Condition, c.Expression, c.Action} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Rule is a business rule.
type Rule struct {
	Decl
	Clauses []RuleClause
}

// Screen is a UI screen.
type Screen struct {
	Decl
	Inherit
	Uses []string
}

// JourneyStep moves a user from one screen to another.
type JourneyStep struct {
	From  string
	To    string
	On    string
	Range hcl.Range
}

// Journey is a user journey across screens.
type Journey struct {
	Decl
	Steps []JourneyStep
}

// Operation is a backend operation.
type Operation struct {
	Decl
	Params   []Param
	Returns  TypeExpr
	Emits    []string
	On       []string
	Enforces []string
}

// Action is a UI action.
type Action struct {
	Decl
	From   string
	On     []string
	Emits  []string
	Stream string
}

// Dep is an external dependency.
type Dep struct {
	Decl
	Target string
}

// Secret is a named secret.
type Secret struct {
	Decl
}

// InfraNode is a deployment node (kind "node").
type InfraNode struct {
	Decl
}

func (*Element) isNode()   {}
func (*Entity) isNode()    {}
func (*Enum) isNode()      {}
func (*Flow) isNode()      {}
func (*State) isNode()     {}
func (*Event) isNode()     {}
func (*Signal) isNode()    {}
func (*API) isNode()       {}
func (*Rule) isNode()      {}
func (*Screen) isNode()    {}
func (*Journey) isNode()   {}
func (*Operation) isNode() {}
func (*Action) isNode()    {}
func (*Dep) isNode()       {}
func (*Secret) isNode()    {}
func (*InfraNode) isNode() {}

func (*Element) Kind() Kind   { return KindElement }
func (*Entity) Kind() Kind    { return KindEntity }
func (*Enum) Kind() Kind      { return KindEnum }
func (*Flow) Kind() Kind      { return KindFlow }
func (*State) Kind() Kind     { return KindState }
func (*Event) Kind() Kind     { return KindEvent }
func (*Signal) Kind() Kind    { return KindSignal }
func (*API) Kind() Kind       { return KindAPI }
func (*Rule) Kind() Kind      { return KindRule }
func (*Screen) Kind() Kind    { return KindScreen }
func (*Journey) Kind() Kind   { return KindJourney }
func (*Operation) Kind() Kind { return KindOperation }
func (*Action) Kind() Kind    { return KindAction }
func (*Dep) Kind() Kind       { return KindDep }
func (*Secret) Kind() Kind    { return KindSecret }
func (*InfraNode) Kind() Kind { return KindNode }

func (n *Element) Key() Key   { return NewKey(KindElement, n.Name) }
func (n *Entity) Key() Key    { return NewKey(KindEntity, n.Name) }
func (n *Enum) Key() Key      { return NewKey(KindEnum, n.Name) }
func (n *Flow) Key() Key      { return NewKey(KindFlow, n.Name) }
func (n *State) Key() Key     { return NewKey(KindState, n.Name) }
func (n *Event) Key() Key     { return NewKey(KindEvent, n.Name) }
func (n *Signal) Key() Key    { return NewKey(KindSignal, n.Name) }
func (n *Rule) Key() Key      { return NewKey(KindRule, n.Name) }
func (n *Screen) Key() Key    { return NewKey(KindScreen, n.Name) }
func (n *Journey) Key() Key   { return NewKey(KindJourney, n.Name) }
func (n *Operation) Key() Key { return NewKey(KindOperation, n.Name) }
func (n *Action) Key() Key    { return NewKey(KindAction, n.Name) }
func (n *Dep) Key() Key       { return NewKey(KindDep, n.Name) }
func (n *Secret) Key() Key    { return NewKey(KindSecret, n.Name) }
func (n *InfraNode) Key() Key { return NewKey(KindNode, n.Name) }

// Key returns the API's key. Named APIs use their name; anonymous APIs use
// the style and @prefix value.
func (n *API) Key() Key {
	if n.Name != "" {
		return NewKey(KindAPI, n.Name)
	}
	return NewKey(KindAPI, APIKeyName(n.Style, n.Prefix()))
}
