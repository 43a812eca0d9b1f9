package hclfront

import "github.com/hashicorp/hcl/v2"

var (
	nameLabel   = []string{"name"}
	inheritance = []hcl.AttributeSchema{
		{Name: "extends"},
		{Name: "implements"},
	}
	decoratorBlock = hcl.BlockHeaderSchema{Type: "decorator", LabelNames: nameLabel}
)

// constructBlocks lists every block that may appear inside a container body.
var constructBlocks = []hcl.BlockHeaderSchema{
	{Type: "system", LabelNames: nameLabel},
	{Type: "component", LabelNames: nameLabel},
	{Type: "include", LabelNames: []string{"path"}},
	{Type: "import", LabelNames: []string{"path"}},
	{Type: "element", LabelNames: nameLabel},
	{Type: "entity", LabelNames: nameLabel},
	{Type: "enum", LabelNames: nameLabel},
	{Type: "flow", LabelNames: nameLabel},
	{Type: "state", LabelNames: nameLabel},
	{Type: "event", LabelNames: nameLabel},
	{Type: "signal", LabelNames: nameLabel},
	{Type: "api", LabelNames: []string{"style"}},
	{Type: "rule", LabelNames: nameLabel},
	{Type: "screen", LabelNames: nameLabel},
	{Type: "journey", LabelNames: nameLabel},
	{Type: "operation", LabelNames: nameLabel},
	{Type: "action", LabelNames: nameLabel},
	{Type: "dep", LabelNames: nameLabel},
	{Type: "secret", LabelNames: nameLabel},
	{Type: "node", LabelNames: nameLabel},
}

var documentSchema = &hcl.BodySchema{Blocks: constructBlocks}

var systemSchema = &hcl.BodySchema{
	Blocks: append([]hcl.BlockHeaderSchema{decoratorBlock}, constructBlocks...),
}

var componentSchema = &hcl.BodySchema{
	Attributes: inheritance,
	Blocks:     append([]hcl.BlockHeaderSchema{decoratorBlock}, constructBlocks...),
}

var includeSchema = &hcl.BodySchema{}

var decoratorSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "args"}},
}

var fieldSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "optional"},
	},
	Blocks: []hcl.BlockHeaderSchema{decoratorBlock},
}

var typedSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "type", Required: true}},
}

var elementSchema = &hcl.BodySchema{
	Attributes: inheritance,
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "prop", LabelNames: nameLabel},
	},
}

// recordSchema serves entities, events and signals.
var recordSchema = &hcl.BodySchema{
	Attributes: inheritance,
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "field", LabelNames: nameLabel},
	},
}

var enumSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "values", Required: true}},
	Blocks:     []hcl.BlockHeaderSchema{decoratorBlock},
}

var flowSchema = &hcl.BodySchema{
	Attributes: append([]hcl.AttributeSchema{
		{Name: "returns"},
		{Name: "on"},
		{Name: "emits"},
	}, inheritance...),
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "param", LabelNames: nameLabel},
		{Type: "step", LabelNames: []string{"action"}},
	},
}

var flowStepSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "args"}},
}

var stateSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "enum", Required: true}},
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "transition", LabelNames: []string{"from", "to"}},
	},
}

var transitionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "on"}},
}

var apiSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "prefix"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "endpoint", LabelNames: []string{"method", "path"}},
	},
}

var endpointSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "input"},
		{Name: "output"},
	},
}

var ruleSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "when"},
		{Type: "then"},
		{Type: "elseif"},
		{Type: "else"},
		{Type: "expect"},
	},
}

var clauseSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "condition"},
		{Name: "expression"},
		{Name: "action"},
	},
}

var screenSchema = &hcl.BodySchema{
	Attributes: append([]hcl.AttributeSchema{{Name: "uses"}}, inheritance...),
	Blocks:     []hcl.BlockHeaderSchema{decoratorBlock},
}

var journeySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "step"},
	},
}

var journeyStepSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from", Required: true},
		{Name: "to", Required: true},
		{Name: "on"},
	},
}

var operationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "returns"},
		{Name: "emits"},
		{Name: "on"},
		{Name: "enforces"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		decoratorBlock,
		{Type: "param", LabelNames: nameLabel},
	},
}

var actionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from"},
		{Name: "on"},
		{Name: "emits"},
		{Name: "stream"},
	},
	Blocks: []hcl.BlockHeaderSchema{decoratorBlock},
}

var depSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "target"}},
	Blocks:     []hcl.BlockHeaderSchema{decoratorBlock},
}

var bareSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{decoratorBlock},
}
