package hclfront

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/zclconf/go-cty/cty"
)

// typeExpr converts an HCL expression written in a type position into an
// ast.TypeExpr. A single identifier is a primitive keyword or a reference,
// calls build composites, and a plain string is a literal type.
func typeExpr(expr hcl.Expression) (ast.TypeExpr, hcl.Diagnostics) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		if len(traversal) != 1 {
			return nil, invalidType(expr, "A type reference must be a single name, not an attribute path.")
		}
		name := traversal.RootName()
		if ast.IsPrimitive(name) {
			return &ast.Primitive{Name: name}, nil
		}
		return &ast.TypeRef{Name: name}, nil
	}

	if call, diags := hcl.ExprCall(expr); !diags.HasErrors() {
		return typeCall(expr, call)
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
		return nil, invalidType(expr, "Expected a type name, a type constructor such as optional(T), or a string literal.")
	}
	return &ast.Literal{Value: val.AsString()}, nil
}

func typeCall(expr hcl.Expression, call *hcl.StaticCall) (ast.TypeExpr, hcl.Diagnostics) {
	var args []ast.TypeExpr
	var diags hcl.Diagnostics
	for _, arg := range call.Arguments {
		t, argDiags := typeExpr(arg)
		diags = append(diags, argDiags...)
		args = append(args, t)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	switch call.Name {
	case "optional":
		if len(args) != 1 {
			return nil, invalidType(expr, "optional() takes exactly one type argument.")
		}
		return &ast.Optional{Inner: args[0]}, nil
	case "list", "array", "set":
		if len(args) != 1 {
			return nil, invalidType(expr, call.Name+"() takes exactly one type argument.")
		}
		return &ast.ArrayType{Elem: args[0]}, nil
	case "union":
		if len(args) < 2 {
			return nil, invalidType(expr, "union() needs at least two alternatives.")
		}
		return &ast.UnionType{Alternatives: args}, nil
	default:
		return nil, invalidType(expr, "Unknown type constructor \""+call.Name+"\".")
	}
}

func invalidType(expr hcl.Expression, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid type expression",
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}}
}
