// Package collector flattens a resolved document into per-kind sequences.
//
// Collection is a single depth-first walk that descends only into system and
// component bodies. Sequences keep every declaration in source order, while
// key-addressed lookups see the first declaration of a duplicated key.
package collector
