// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the closed set of construct kinds.
package ast

// Kind names the category of a declared construct.
type Kind string

const (
	KindElement   Kind = "element"
	KindEntity    Kind = "entity"
	KindEnum      Kind = "enum"
	KindFlow      Kind = "flow"
	KindState     Kind = "state"
	KindEvent     Kind = "event"
	KindSignal    Kind = "signal"
	KindAPI       Kind = "api"
	KindRule      Kind = "rule"
	KindScreen    Kind = "screen"
	KindJourney   Kind = "journey"
	KindOperation Kind = "operation"
	KindAction    Kind = "action"
	KindComponent Kind = "component"
	KindSystem    Kind = "system"
	KindDep       Kind = "dep"
	KindSecret    Kind = "secret"
	KindNode      Kind = "node"
)

var allKinds = []Kind{
	KindElement, KindEntity, KindEnum, KindFlow, KindState, KindEvent,
	KindSignal, KindAPI, KindRule, KindScreen, KindJourney, KindOperation,
	KindAction, KindComponent, KindSystem, KindDep, KindSecret, KindNode,
}

// AllKinds returns every construct kind in canonical order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}
