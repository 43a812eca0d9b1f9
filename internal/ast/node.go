// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Document root and the container items.
//
// Why a sealed interface?
//
// Node carries an unexported marker method, so the set of node types is closed
// to this package. Consumers switch over concrete types and the collector's
// tests enumerate AllKinds to make sure no kind is silently dropped.
package ast

import "github.com/hashicorp/hcl/v2"

// Node is any item that may appear in a Document or container body.
type Node interface {
	SourceRange() hcl.Range
	isNode()
}

// Construct is a Node that declares something addressable by a Key.
type Construct interface {
	Node
	Kind() Kind
	Key() Key
}

// Inheritor is implemented by constructs that support extends/implements.
type Inheritor interface {
	Construct
	Inheritance() Inherit
}

// Document is the root of one parsed file, or of a merged model after include
// resolution.
type Document struct {
	Path  string
	Items []Node
}

// Decorator is an annotation such as @prefix(/auth).
type Decorator struct {
	Name string
	Args []string
}

// Decl holds what every construct declaration has in common.
type Decl struct {
	Name       string
	Decorators []Decorator
	Range      hcl.Range
}

// SourceRange returns the declaration's range.
func (d *Decl) SourceRange() hcl.Range { return d.Range }

// Decorator returns the first decorator with the given name.
func (d *Decl) Decorator(name string) (Decorator, bool) {
	for _, dec := range d.Decorators {
		if dec.Name == name {
			return dec, true
		}
	}
	return Decorator{}, false
}

// Inherit is the extends/implements clause.
type Inherit struct {
	Extends    string
	Implements []string
}

// Inheritance returns the inheritance clause.
func (i Inherit) Inheritance() Inherit { return i }

// System is a top-level container of components and constructs.
type System struct {
	Decl
	Body []Node
}

// Component is the unit of ownership; every construct ends up owned by one.
type Component struct {
	Decl
	Inherit
	Body []Node
}

// Include is an include or import directive naming another file.
type Include struct {
	Path   string
	Import bool
	Range  hcl.Range
}

// Comment is a preserved source comment.
type Comment struct {
	Text  string
	Range hcl.Range
}

func (*System) isNode()    {}
func (*Component) isNode() {}
func (*Include) isNode()   {}
func (*Comment) isNode()   {}

func (n *Include) SourceRange() hcl.Range { return n.Range }
func (n *Comment) SourceRange() hcl.Range { return n.Range }

func (*System) Kind() Kind    { return KindSystem }
func (*Component) Kind() Kind { return KindComponent }

func (n *System) Key() Key    { return NewKey(KindSystem, n.Name) }
func (n *Component) Key() Key { return NewKey(KindComponent, n.Name) }
