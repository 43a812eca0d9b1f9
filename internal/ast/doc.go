// Package ast defines the syntax tree consumed by the semantic pipeline: the
// Document root, the container items (systems, components, includes,
// comments), the eighteen construct kinds and the closed type-expression
// union used by fields, parameters and endpoint payloads.
//
// The tree is produced by a Parser. Nodes are plain data; nothing in this
// package mutates a tree after construction. Every construct is addressable
// by a Key, which is the identity used by the collector, the ownership mapper
// and the relationship graph.
package ast
