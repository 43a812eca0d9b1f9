/*
Package relations builds the cross-reference graph of a collected model.

Every reference from a source construct S to a target T is stored twice: as
a forward edge on S's record and as the matching inverse edge on T's record,
so navigation works in both directions without scanning. The category table
(Pairs) names each forward category and its inverse. Edges are deduplicated by
the (component, kind, name) triple and lists are sorted when the build
finishes, which makes the graph independent of traversal order.

One category is one-sided: endpoints that take or return an entity are
recorded as exposedByApi on the entity only.
*/
package relations
