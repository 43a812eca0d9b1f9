package relations

import (
	"cmp"
	"slices"

	"github.com/specialistvlad/specgraph/internal/ast"
)

// Ref points at a construct together with the component that owns it.
// Component is empty when the construct has no owner.
type Ref struct {
	Component string   `json:"component"`
	Kind      ast.Kind `json:"kind"`
	Name      string   `json:"name"`
}

// Key returns the construct key the reference points at.
func (r Ref) Key() ast.Key {
	return ast.NewKey(r.Kind, r.Name)
}

func (r Ref) String() string {
	if r.Component == "" {
		return r.Key().String()
	}
	return r.Component + "/" + r.Key().String()
}

func compareRefs(a, b Ref) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Component, b.Component),
	)
}

// addRef appends r unless the triple is already present.
func addRef(list *[]Ref, r Ref) bool {
	if slices.Contains(*list, r) {
		return false
	}
	*list = append(*list, r)
	return true
}
