// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package ast

// PrimitiveTypes is the set of built-in type keywords. A type name in this
// set never resolves to a declaration.
var PrimitiveTypes = map[string]bool{
	"string":   true,
	"text":     true,
	"email":    true,
	"url":      true,
	"uuid":     true,
	"date":     true,
	"datetime": true,
	"number":   true,
	"int":      true,
	"float":    true,
	"decimal":  true,
	"bool":     true,
	"boolean":  true,
	"any":      true,
	"json":     true,
}

// IsPrimitive reports whether name is a primitive keyword.
func IsPrimitive(name string) bool {
	return PrimitiveTypes[name]
}
