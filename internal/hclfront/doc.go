/*
Package hclfront is an ast.Parser for the HCL rendering of the modeling DSL.

The native grammar of the DSL is produced by an external tokenizer; this
front end exists so that models can be written, tested and analyzed without
it. Every construct is a block labelled with its name, containers nest their
items, and include directives are blocks with the target path as the label:

	system "Shop" {
	  include "shared/types" {}

	  component "Auth" {
	    entity "User" {
	      field "email" { type = email }
	      field "manager" { type = optional(User) }
	    }

	    api "REST" {
	      prefix = "/auth"
	      endpoint "POST" "/login" { output = User }
	    }
	  }
	}

Type expressions are HCL expressions: a bare identifier is a primitive keyword
or a reference, optional(T), list(T) and union(A, B, ...) build the composite
forms, and a quoted string is a literal type.

Block order is preserved across block types, because include hoisting and the
ownership heuristics depend on declaration order.
*/
package hclfront
