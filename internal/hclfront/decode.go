package hclfront

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/specgraph/internal/ast"
)

// decoder accumulates diagnostics while walking a file so that one pass
// reports every structural problem, the first of which becomes the ParseError.
type decoder struct {
	diags hcl.Diagnostics
}

func (d *decoder) content(body hcl.Body, schema *hcl.BodySchema) *hcl.BodyContent {
	content, diags := body.Content(schema)
	d.diags = append(d.diags, diags...)
	if content == nil {
		return &hcl.BodyContent{Attributes: hcl.Attributes{}}
	}
	return content
}

// items decodes a container body. Decorator blocks are collected into decs
// rather than returned as items.
func (d *decoder) items(body hcl.Body, schema *hcl.BodySchema, decs *[]ast.Decorator) []ast.Node {
	content := d.content(body, schema)
	items := make([]ast.Node, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		if block.Type == "decorator" {
			if decs != nil {
				*decs = append(*decs, d.decorator(block))
			}
			continue
		}
		if n := d.node(block); n != nil {
			items = append(items, n)
		}
	}
	return items
}

func (d *decoder) node(block *hcl.Block) ast.Node {
	switch block.Type {
	case "system":
		return d.system(block)
	case "component":
		return d.component(block)
	case "include", "import":
		d.content(block.Body, includeSchema)
		return &ast.Include{Path: block.Labels[0], Import: block.Type == "import", Range: block.DefRange}
	case "element":
		return d.element(block)
	case "entity":
		decl, inh, fields := d.record(block)
		return &ast.Entity{Decl: decl, Inherit: inh, Fields: fields}
	case "event":
		decl, inh, fields := d.record(block)
		return &ast.Event{Decl: decl, Inherit: inh, Fields: fields}
	case "signal":
		decl, inh, fields := d.record(block)
		return &ast.Signal{Decl: decl, Inherit: inh, Fields: fields}
	case "enum":
		return d.enum(block)
	case "flow":
		return d.flow(block)
	case "state":
		return d.state(block)
	case "api":
		return d.api(block)
	case "rule":
		return d.rule(block)
	case "screen":
		return d.screen(block)
	case "journey":
		return d.journey(block)
	case "operation":
		return d.operation(block)
	case "action":
		return d.action(block)
	case "dep":
		content := d.content(block.Body, depSchema)
		return &ast.Dep{Decl: d.decl(block, content), Target: d.str(content, "target")}
	case "secret":
		return &ast.Secret{Decl: d.decl(block, d.content(block.Body, bareSchema))}
	case "node":
		return &ast.InfraNode{Decl: d.decl(block, d.content(block.Body, bareSchema))}
	default:
		d.diags = append(d.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   "Blocks of type \"" + block.Type + "\" are not supported here.",
			Subject:  &block.DefRange,
		})
		return nil
	}
}

// decl builds the shared declaration header from the block label and any
// decorator blocks in content.
func (d *decoder) decl(block *hcl.Block, content *hcl.BodyContent) ast.Decl {
	decl := ast.Decl{Range: blockRange(block)}
	if len(block.Labels) > 0 {
		decl.Name = block.Labels[0]
	}
	for _, inner := range content.Blocks {
		if inner.Type == "decorator" {
			decl.Decorators = append(decl.Decorators, d.decorator(inner))
		}
	}
	return decl
}

func (d *decoder) decorator(block *hcl.Block) ast.Decorator {
	content := d.content(block.Body, decoratorSchema)
	return ast.Decorator{Name: block.Labels[0], Args: d.strs(content, "args")}
}

func (d *decoder) inherit(content *hcl.BodyContent) ast.Inherit {
	return ast.Inherit{
		Extends:    d.str(content, "extends"),
		Implements: d.strs(content, "implements"),
	}
}

func (d *decoder) system(block *hcl.Block) *ast.System {
	sys := &ast.System{Decl: ast.Decl{Name: block.Labels[0], Range: blockRange(block)}}
	sys.Body = d.items(block.Body, systemSchema, &sys.Decorators)
	return sys
}

func (d *decoder) component(block *hcl.Block) *ast.Component {
	comp := &ast.Component{Decl: ast.Decl{Name: block.Labels[0], Range: blockRange(block)}}
	content := d.content(block.Body, componentSchema)
	comp.Inherit = d.inherit(content)
	for _, inner := range content.Blocks {
		if inner.Type == "decorator" {
			comp.Decorators = append(comp.Decorators, d.decorator(inner))
			continue
		}
		if n := d.node(inner); n != nil {
			comp.Body = append(comp.Body, n)
		}
	}
	return comp
}

func (d *decoder) element(block *hcl.Block) *ast.Element {
	content := d.content(block.Body, elementSchema)
	el := &ast.Element{Decl: d.decl(block, content), Inherit: d.inherit(content)}
	for _, inner := range content.Blocks.OfType("prop") {
		typed := d.content(inner.Body, typedSchema)
		el.Props = append(el.Props, ast.Prop{
			Name:  inner.Labels[0],
			Type:  d.typeAttr(typed, "type"),
			Range: blockRange(inner),
		})
	}
	return el
}

func (d *decoder) record(block *hcl.Block) (ast.Decl, ast.Inherit, []ast.Field) {
	content := d.content(block.Body, recordSchema)
	var fields []ast.Field
	for _, inner := range content.Blocks.OfType("field") {
		fc := d.content(inner.Body, fieldSchema)
		field := ast.Field{
			Name:     inner.Labels[0],
			Type:     d.typeAttr(fc, "type"),
			Optional: d.boolean(fc, "optional"),
			Range:    blockRange(inner),
		}
		for _, dec := range fc.Blocks.OfType("decorator") {
			field.Decorators = append(field.Decorators, d.decorator(dec))
		}
		fields = append(fields, field)
	}
	return d.decl(block, content), d.inherit(content), fields
}

func (d *decoder) enum(block *hcl.Block) *ast.Enum {
	content := d.content(block.Body, enumSchema)
	return &ast.Enum{Decl: d.decl(block, content), Values: d.strs(content, "values")}
}

func (d *decoder) params(blocks hcl.Blocks) []ast.Param {
	var params []ast.Param
	for _, inner := range blocks.OfType("param") {
		typed := d.content(inner.Body, typedSchema)
		params = append(params, ast.Param{
			Name:  inner.Labels[0],
			Type:  d.typeAttr(typed, "type"),
			Range: blockRange(inner),
		})
	}
	return params
}

func (d *decoder) flow(block *hcl.Block) *ast.Flow {
	content := d.content(block.Body, flowSchema)
	flow := &ast.Flow{
		Decl:    d.decl(block, content),
		Inherit: d.inherit(content),
		Params:  d.params(content.Blocks),
		Returns: d.typeAttr(content, "returns"),
		On:      d.strs(content, "on"),
		Emits:   d.strs(content, "emits"),
	}
	for _, inner := range content.Blocks.OfType("step") {
		sc := d.content(inner.Body, flowStepSchema)
		flow.Steps = append(flow.Steps, ast.FlowStep{
			Action: inner.Labels[0],
			Args:   d.strs(sc, "args"),
			Range:  blockRange(inner),
		})
	}
	return flow
}

func (d *decoder) state(block *hcl.Block) *ast.State {
	content := d.content(block.Body, stateSchema)
	st := &ast.State{Decl: d.decl(block, content), EnumRef: d.str(content, "enum")}
	for _, inner := range content.Blocks.OfType("transition") {
		tc := d.content(inner.Body, transitionSchema)
		st.Transitions = append(st.Transitions, ast.Transition{
			From:  inner.Labels[0],
			To:    inner.Labels[1],
			On:    d.str(tc, "on"),
			Range: blockRange(inner),
		})
	}
	return st
}

func (d *decoder) api(block *hcl.Block) *ast.API {
	content := d.content(block.Body, apiSchema)
	api := &ast.API{Decl: d.decl(block, content), Style: block.Labels[0]}
	api.Name = d.str(content, "name")
	if prefix := d.str(content, "prefix"); prefix != "" {
		api.Decorators = append([]ast.Decorator{{Name: "prefix", Args: []string{prefix}}}, api.Decorators...)
	}
	for _, inner := range content.Blocks.OfType("endpoint") {
		ec := d.content(inner.Body, endpointSchema)
		api.Endpoints = append(api.Endpoints, ast.Endpoint{
			Method: inner.Labels[0],
			Path:   inner.Labels[1],
			Input:  d.typeAttr(ec, "input"),
			Output: d.typeAttr(ec, "output"),
			Range:  blockRange(inner),
		})
	}
	return api
}

func (d *decoder) rule(block *hcl.Block) *ast.Rule {
	content := d.content(block.Body, ruleSchema)
	rule := &ast.Rule{Decl: d.decl(block, content)}
	for _, inner := range content.Blocks {
		if inner.Type == "decorator" {
			continue
		}
		cc := d.content(inner.Body, clauseSchema)
		rule.Clauses = append(rule.Clauses, ast.RuleClause{
			Kind:       ast.ClauseKind(inner.Type),
			Condition:  d.str(cc, "condition"),
			Expression: d.str(cc, "expression"),
			Action:     d.str(cc, "action"),
			Range:      blockRange(inner),
		})
	}
	return rule
}

func (d *decoder) screen(block *hcl.Block) *ast.Screen {
	content := d.content(block.Body, screenSchema)
	return &ast.Screen{
		Decl:    d.decl(block, content),
		Inherit: d.inherit(content),
		Uses:    d.strs(content, "uses"),
	}
}

func (d *decoder) journey(block *hcl.Block) *ast.Journey {
	content := d.content(block.Body, journeySchema)
	j := &ast.Journey{Decl: d.decl(block, content)}
	for _, inner := range content.Blocks.OfType("step") {
		sc := d.content(inner.Body, journeyStepSchema)
		j.Steps = append(j.Steps, ast.JourneyStep{
			From:  d.str(sc, "from"),
			To:    d.str(sc, "to"),
			On:    d.str(sc, "on"),
			Range: blockRange(inner),
		})
	}
	return j
}

func (d *decoder) operation(block *hcl.Block) *ast.Operation {
	content := d.content(block.Body, operationSchema)
	return &ast.Operation{
		Decl:     d.decl(block, content),
		Params:   d.params(content.Blocks),
		Returns:  d.typeAttr(content, "returns"),
		Emits:    d.strs(content, "emits"),
		On:       d.strs(content, "on"),
		Enforces: d.strs(content, "enforces"),
	}
}

func (d *decoder) action(block *hcl.Block) *ast.Action {
	content := d.content(block.Body, actionSchema)
	return &ast.Action{
		Decl:   d.decl(block, content),
		From:   d.str(content, "from"),
		On:     d.strs(content, "on"),
		Emits:  d.strs(content, "emits"),
		Stream: d.str(content, "stream"),
	}
}

// str decodes an optional string attribute; absent attributes yield "".
func (d *decoder) str(content *hcl.BodyContent, name string) string {
	attr, ok := content.Attributes[name]
	if !ok {
		return ""
	}
	var out string
	d.diags = append(d.diags, gohcl.DecodeExpression(attr.Expr, nil, &out)...)
	return out
}

// strs decodes an optional list-of-strings attribute.
func (d *decoder) strs(content *hcl.BodyContent, name string) []string {
	attr, ok := content.Attributes[name]
	if !ok {
		return nil
	}
	var out []string
	d.diags = append(d.diags, gohcl.DecodeExpression(attr.Expr, nil, &out)...)
	return out
}

func (d *decoder) boolean(content *hcl.BodyContent, name string) bool {
	attr, ok := content.Attributes[name]
	if !ok {
		return false
	}
	var out bool
	d.diags = append(d.diags, gohcl.DecodeExpression(attr.Expr, nil, &out)...)
	return out
}

func (d *decoder) typeAttr(content *hcl.BodyContent, name string) ast.TypeExpr {
	attr, ok := content.Attributes[name]
	if !ok {
		return nil
	}
	t, diags := typeExpr(attr.Expr)
	d.diags = append(d.diags, diags...)
	return t
}
