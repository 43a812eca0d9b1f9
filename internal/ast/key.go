// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Key, the identity of a construct inside a resolved model.
//
// Why a composite key?
//
// Names are only unique per kind: an entity and a screen may both be called
// "Orders". APIs are frequently anonymous, so their key is synthesized from
// the transport style and the @prefix decorator ("api:REST:/auth"). Every
// stage addresses constructs through this one type so that the synthesized
// API names never drift between the ownership map and the graph.
package ast

import (
	"fmt"
	"strings"
)

// Key identifies a construct by kind and name.
type Key struct {
	Kind Kind
	Name string
}

// NewKey creates a key for the given kind and name.
func NewKey(kind Kind, name string) Key {
	return Key{Kind: kind, Name: name}
}

// String returns the canonical "kind:name" form.
func (k Key) String() string {
	return string(k.Kind) + ":" + k.Name
}

// IsZero reports whether the key is unset.
func (k Key) IsZero() bool {
	return k.Kind == "" && k.Name == ""
}

// APIKeyName synthesizes the name part of an anonymous API's key.
func APIKeyName(style, prefix string) string {
	if prefix == "" {
		return style
	}
	return style + ":" + prefix
}

// ParseKey parses the canonical "kind:name" form produced by Key.String.
// Everything after the first colon is the name, so API keys such as
// "api:REST:/auth" round-trip.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, fmt.Errorf("construct key cannot be empty")
	}
	kind, name, ok := strings.Cut(raw, ":")
	if !ok {
		return Key{}, fmt.Errorf("construct key %q has no kind separator", raw)
	}
	if !Kind(kind).Valid() {
		return Key{}, fmt.Errorf("construct key %q has unknown kind %q", raw, kind)
	}
	if name == "" {
		return Key{}, fmt.Errorf("construct key %q has an empty name", raw)
	}
	return Key{Kind: Kind(kind), Name: name}, nil
}

// MarshalText implements encoding.TextMarshaler so keys can be used as JSON
// object keys.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
