// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the type-expression union used by fields, parameters,
// props, return types and endpoint payloads.
package ast

import "strings"

// TypeExpr is a closed union: Primitive, TypeRef, Optional, ArrayType,
// UnionType and Literal.
type TypeExpr interface {
	String() string
	typeExpr()
}

// Primitive is a built-in scalar type such as string or number.
type Primitive struct {
	Name string
}

// TypeRef names another construct, usually an entity, enum or event.
type TypeRef struct {
	Name string
}

// Optional wraps a type that may be absent.
type Optional struct {
	Inner TypeExpr
}

// ArrayType is a homogeneous list.
type ArrayType struct {
	Elem TypeExpr
}

// UnionType accepts any of its alternatives.
type UnionType struct {
	Alternatives []TypeExpr
}

// Literal is a string literal type, e.g. "pending".
type Literal struct {
	Value string
}

func (*Primitive) typeExpr() {}
func (*TypeRef) typeExpr()   {}
func (*Optional) typeExpr()  {}
func (*ArrayType) typeExpr() {}
func (*UnionType) typeExpr() {}
func (*Literal) typeExpr()   {}

func (t *Primitive) String() string { return t.Name }
func (t *TypeRef) String() string   { return t.Name }
func (t *Optional) String() string  { return typeString(t.Inner) + "?" }
func (t *ArrayType) String() string { return typeString(t.Elem) + "[]" }
func (t *Literal) String() string   { return `"` + t.Value + `"` }

func (t *UnionType) String() string {
	parts := make([]string, 0, len(t.Alternatives))
	for _, alt := range t.Alternatives {
		parts = append(parts, typeString(alt))
	}
	return strings.Join(parts, " | ")
}

func typeString(t TypeExpr) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// TypeRefs returns the construct names referenced by t, in order of
// appearance. Unions contribute every alternative; primitives and literals
// contribute nothing.
func TypeRefs(t TypeExpr) []string {
	var out []string
	var walk func(TypeExpr)
	walk = func(t TypeExpr) {
		switch t := t.(type) {
		case *TypeRef:
			out = append(out, t.Name)
		case *Optional:
			walk(t.Inner)
		case *ArrayType:
			walk(t.Elem)
		case *UnionType:
			for _, alt := range t.Alternatives {
				walk(alt)
			}
		}
	}
	walk(t)
	return out
}
