package relations

import (
	"cmp"
	"slices"

	"github.com/specialistvlad/specgraph/internal/ast"
)

// Graph maps construct keys to their relationship records. It is read-only
// once Build returns.
type Graph struct {
	records map[ast.Key]*Record
	self    map[ast.Key]Ref
}

func newGraph() *Graph {
	return &Graph{
		records: make(map[ast.Key]*Record),
		self:    make(map[ast.Key]Ref),
	}
}

// Record returns the record of key.
func (g *Graph) Record(key ast.Key) (*Record, bool) {
	r, ok := g.records[key]
	return r, ok
}

// Ref returns the reference identifying key, including its owner.
func (g *Graph) Ref(key ast.Key) (Ref, bool) {
	r, ok := g.self[key]
	return r, ok
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.records)
}

// Keys returns every record key sorted by kind, then name.
func (g *Graph) Keys() []ast.Key {
	keys := make([]ast.Key, 0, len(g.records))
	for k := range g.records {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Records returns a copy of the key to record map. The records themselves
// are shared and must not be modified.
func (g *Graph) Records() map[ast.Key]*Record {
	out := make(map[ast.Key]*Record, len(g.records))
	for k, r := range g.records {
		out[k] = r
	}
	return out
}

// Edge is one forward reference.
type Edge struct {
	From     Ref      `json:"from"`
	Category Category `json:"category"`
	To       Ref      `json:"to"`
}

// Edges returns every forward edge in deterministic order. Inverse
// categories and exposedByApi are not included.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, key := range g.Keys() {
		rec := g.records[key]
		from := g.self[key]
		for _, c := range Categories() {
			if !IsForward(c) {
				continue
			}
			for _, to := range rec.Get(c) {
				out = append(out, Edge{From: from, Category: c, To: to})
			}
		}
	}
	return out
}

func compareKeys(a, b ast.Key) int {
	return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.Name, b.Name))
}
