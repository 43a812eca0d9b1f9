package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// Collect walks doc and returns its model. Include directives left in the
// document are ignored; resolve the document first to merge them.
func Collect(ctx context.Context, doc *ast.Document) *Model {
	logger := ctxlog.FromContext(ctx)
	m := newModel()
	if doc == nil {
		return m
	}

	c := &collector{model: m, logger: logger}
	c.walk(doc.Items, "")

	logger.Debug("Collected model.",
		"constructs", len(m.keys),
		"components", len(m.Components),
		"entities", len(m.Entities),
		"flows", len(m.Flows),
		"apis", len(m.APIs),
		"unhandled", len(m.Unhandled),
	)
	return m
}

type collector struct {
	model  *Model
	logger *slog.Logger
}

func (c *collector) walk(items []ast.Node, component string) {
	m := c.model
	for _, item := range items {
		switch n := item.(type) {
		case *ast.System:
			m.Systems = append(m.Systems, n)
			c.record(n, component)
			c.walk(n.Body, component)
		case *ast.Component:
			m.Components = append(m.Components, n)
			c.record(n, component)
			c.walk(n.Body, n.Name)
		case *ast.Include, *ast.Comment:
		case *ast.Element:
			m.Elements = append(m.Elements, n)
			c.record(n, component)
		case *ast.Entity:
			m.Entities = append(m.Entities, n)
			c.record(n, component)
		case *ast.Enum:
			m.Enums = append(m.Enums, n)
			c.record(n, component)
		case *ast.Flow:
			m.Flows = append(m.Flows, n)
			c.record(n, component)
		case *ast.State:
			m.States = append(m.States, n)
			c.record(n, component)
		case *ast.Event:
			m.Events = append(m.Events, n)
			c.record(n, component)
		case *ast.Signal:
			m.Signals = append(m.Signals, n)
			c.record(n, component)
		case *ast.API:
			m.APIs = append(m.APIs, n)
			c.record(n, component)
		case *ast.Rule:
			m.Rules = append(m.Rules, n)
			c.record(n, component)
		case *ast.Screen:
			m.Screens = append(m.Screens, n)
			c.record(n, component)
		case *ast.Journey:
			m.Journeys = append(m.Journeys, n)
			c.record(n, component)
		case *ast.Operation:
			m.Operations = append(m.Operations, n)
			c.record(n, component)
		case *ast.Action:
			m.Actions = append(m.Actions, n)
			c.record(n, component)
		case *ast.Dep:
			m.Deps = append(m.Deps, n)
			c.record(n, component)
		case *ast.Secret:
			m.Secrets = append(m.Secrets, n)
			c.record(n, component)
		case *ast.InfraNode:
			m.Nodes = append(m.Nodes, n)
			c.record(n, component)
		default:
			u := Unhandled{Type: fmt.Sprintf("%T", item)}
			if item != nil {
				u.Range = item.SourceRange()
			}
			c.logger.Warn("Unhandled node.", "type", u.Type)
			m.Unhandled = append(m.Unhandled, u)
		}
	}
}

// record indexes a construct under its key. The first declaration of a key
// wins for lookups and for the enclosing component.
func (c *collector) record(n ast.Construct, component string) {
	key := n.Key()
	if _, dup := c.model.index[key]; dup {
		c.logger.Debug("Duplicate construct key.", "key", key.String())
		return
	}
	c.model.index[key] = n
	c.model.keys = append(c.model.keys, key)
	if component != "" {
		c.model.Enclosing[key] = component
	}
}
