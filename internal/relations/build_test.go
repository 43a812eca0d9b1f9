package relations

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/specialistvlad/specgraph/internal/ownership"
	"github.com/specialistvlad/specgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richModel = `
system "Shop" {
  component "Auth" {
    entity "User" {
      field "role" { type = Role }
      field "manager" { type = optional(User) }
    }
    enum "Role" { values = ["admin", "member"] }
    state "RoleLifecycle" {
      enum = "Role"
      transition "member" "admin" { on = "UserPromoted" }
    }
    event "UserPromoted" {}
    api "REST" {
      prefix = "/auth"
      endpoint "POST" "/login" { output = User }
    }
  }

  component "Orders" {
    entity "Order" {
      field "buyer" { type = User }
    }
    event "OrderPlaced" {}
    event "OrderCharged" {}
    event "OrderShipped" {}

    flow "checkout" {
      param "user" { type = User }
      on    = ["CartReady"]
      emits = ["OrderPlaced"]
      step "validate" { args = ["Order"] }
      step "charge" {}
      step "emit" { args = ["OrderPlaced"] }
      step "return" {}
    }

    flow "ship" {
      step "emit" { args = ["OrderShipped(order)"] }
      step "publish" { args = ["OrderPlaced"] }
    }

    operation "charge" {
      param "order" { type = Order }
      on       = ["OrderPlaced"]
      emits    = ["OrderCharged"]
      enforces = ["CreditLimit"]
    }

    rule "CreditLimit" {
      when { condition = "Order.total > User.limit" }
      then { action = "charge(order)" }
      else { action = "deny(order)" }
    }

    api "REST" {
      prefix = "/orders"
      endpoint "STREAM" "/live/" { output = OrderPlaced }
    }
  }

  component "UI" {
    element "Base" {}
    element "Button" { extends = "Base" }
    screen "Cart" { uses = ["Button", "Ghost"] }
    screen "Payment" {}
    signal "Toast" {}
    signal "Refreshed" {}

    action "Refresh" {
      from   = "Cart"
      on     = ["Toast"]
      emits  = ["Refreshed"]
      stream = "/orders/live"
    }

    journey "Buy" {
      step {
        from = "*"
        to   = "Cart"
      }
      step {
        from = "Cart"
        to   = "Summary"
      }
      step {
        from = "Summary"
        to   = "end"
      }
    }
  }
}
`

func build(t *testing.T, src string) *Graph {
	t.Helper()
	ctx := testutil.QuietContext()
	m := testutil.CollectModel(t, src)
	return Build(ctx, m, ownership.Assign(ctx, m))
}

func record(t *testing.T, g *Graph, kind ast.Kind, name string) *Record {
	t.Helper()
	rec, ok := g.Record(ast.NewKey(kind, name))
	require.True(t, ok, "no record for %s:%s", kind, name)
	return rec
}

func ref(component string, kind ast.Kind, name string) Ref {
	return Ref{Component: component, Kind: kind, Name: name}
}

func TestBuild_Scenario(t *testing.T) {
	g := build(t, `
component "Auth" {
  entity "User" {
    field "email" { type = string }
  }
  api "REST" {
    prefix = "/auth"
    endpoint "POST" "/login" { output = User }
  }
}
component "Orders" {
  flow "checkout" {
    param "user" { type = User }
  }
}
`)

	checkout := record(t, g, ast.KindFlow, "checkout")
	assert.Equal(t, []Ref{ref("Auth", ast.KindEntity, "User")}, checkout.InvolvesEntities)

	user := record(t, g, ast.KindEntity, "User")
	assert.Equal(t, []Ref{ref("Orders", ast.KindFlow, "checkout")}, user.UsedByFlows)
	assert.Equal(t, []Ref{ref("Auth", ast.KindAPI, "REST:/auth")}, user.ExposedByAPI)
}

func TestBuild_Categories(t *testing.T) {
	g := build(t, richModel)

	user := ref("Auth", ast.KindEntity, "User")
	role := ref("Auth", ast.KindEnum, "Role")
	order := ref("Orders", ast.KindEntity, "Order")
	lifecycle := ref("Auth", ast.KindState, "RoleLifecycle")
	checkout := ref("Orders", ast.KindFlow, "checkout")
	ship := ref("Orders", ast.KindFlow, "ship")
	charge := ref("Orders", ast.KindOperation, "charge")
	placed := ref("Orders", ast.KindEvent, "OrderPlaced")
	charged := ref("Orders", ast.KindEvent, "OrderCharged")
	credit := ref("Orders", ast.KindRule, "CreditLimit")
	refresh := ref("UI", ast.KindAction, "Refresh")
	cart := ref("UI", ast.KindScreen, "Cart")

	t.Run("entity references", func(t *testing.T) {
		u := record(t, g, ast.KindEntity, "User")
		assert.Equal(t, []Ref{user, role}, u.References)
		assert.Equal(t, []Ref{order, user}, u.ReferencedByEntities)
		assert.Equal(t, []Ref{user}, record(t, g, ast.KindEnum, "Role").ReferencedByEntities)
		assert.Equal(t, []Ref{ref("Auth", ast.KindAPI, "REST:/auth")}, u.ExposedByAPI)
	})

	t.Run("state machine", func(t *testing.T) {
		st := record(t, g, ast.KindState, "RoleLifecycle")
		require.NotNil(t, st.TargetEnum)
		assert.Equal(t, role, *st.TargetEnum)
		assert.Equal(t, []Ref{lifecycle}, record(t, g, ast.KindEnum, "Role").StateMachines)
		assert.Equal(t, []Ref{ref("Auth", ast.KindEvent, "UserPromoted")}, st.TriggerEvents)
		assert.Equal(t, []Ref{lifecycle}, record(t, g, ast.KindEvent, "UserPromoted").TriggersStates)
		assert.Equal(t, []Ref{user}, st.GovernsEntities)
		assert.Equal(t, []Ref{lifecycle}, record(t, g, ast.KindEntity, "User").GovernedByStates)
	})

	t.Run("flow", func(t *testing.T) {
		f := record(t, g, ast.KindFlow, "checkout")
		assert.Equal(t, []Ref{order, user}, f.InvolvesEntities)
		assert.Empty(t, f.TriggeredByEvents, "undeclared events are not linked")
		assert.Equal(t, []Ref{placed}, f.EmitsEvents)
		assert.Equal(t, []Ref{charge}, f.CallsOperations)
		assert.Equal(t, []Ref{checkout, ship}, record(t, g, ast.KindEvent, "OrderPlaced").EmittedByFlows)
		assert.Equal(t, []Ref{checkout}, record(t, g, ast.KindOperation, "charge").CalledByFlows)
		assert.Equal(t, []Ref{checkout, ship}, record(t, g, ast.KindEntity, "Order").UsedByFlows)
	})

	t.Run("flow events named in step text", func(t *testing.T) {
		f := record(t, g, ast.KindFlow, "ship")
		shipped := ref("Orders", ast.KindEvent, "OrderShipped")
		assert.Equal(t, []Ref{placed, shipped}, f.EmitsEvents)
		assert.Empty(t, f.CallsOperations, "publish is not a declared operation")
		assert.Equal(t, []Ref{ship}, record(t, g, ast.KindEvent, "OrderShipped").EmittedByFlows)
	})

	t.Run("operation", func(t *testing.T) {
		op := record(t, g, ast.KindOperation, "charge")
		assert.Equal(t, []Ref{placed}, op.TriggeredByEvents)
		assert.Equal(t, []Ref{charged}, op.EmitsEvents)
		assert.Equal(t, []Ref{credit}, op.EnforcesRules)
		assert.Equal(t, []Ref{order}, op.InvolvesEntities)
		assert.Equal(t, []Ref{charge}, record(t, g, ast.KindEvent, "OrderPlaced").TriggersOperations)
		assert.Equal(t, []Ref{charge}, record(t, g, ast.KindEvent, "OrderCharged").EmittedByOperations)
		assert.Equal(t, []Ref{charge}, record(t, g, ast.KindRule, "CreditLimit").EnforcedByOperations)
		assert.Equal(t, []Ref{charge}, record(t, g, ast.KindEntity, "Order").UsedByOperations)
	})

	t.Run("rule", func(t *testing.T) {
		r := record(t, g, ast.KindRule, "CreditLimit")
		assert.Equal(t, []Ref{order, user}, r.TargetsEntities)
		assert.Equal(t, []Ref{charge}, r.InvokesOperations, "deny is reserved")
		assert.Equal(t, []Ref{credit}, record(t, g, ast.KindEntity, "User").GovernedByRules)
		assert.Equal(t, []Ref{credit}, record(t, g, ast.KindOperation, "charge").InvokedByRules)
	})

	t.Run("action", func(t *testing.T) {
		a := record(t, g, ast.KindAction, "Refresh")
		require.NotNil(t, a.SourceScreen)
		assert.Equal(t, cart, *a.SourceScreen)
		assert.Equal(t, []Ref{ref("UI", ast.KindSignal, "Toast")}, a.HandlesSignals)
		assert.Equal(t, []Ref{ref("UI", ast.KindSignal, "Refreshed")}, a.EmitsSignals)
		assert.Equal(t, []Ref{ref("Orders", ast.KindAPI, "REST:/orders")}, a.StreamsFrom)
		assert.Equal(t, []Ref{refresh}, record(t, g, ast.KindScreen, "Cart").ActionSources)
		assert.Equal(t, []Ref{refresh}, record(t, g, ast.KindSignal, "Toast").HandledByActions)
		assert.Equal(t, []Ref{refresh}, record(t, g, ast.KindSignal, "Refreshed").EmittedByActions)
		assert.Equal(t, []Ref{refresh}, record(t, g, ast.KindAPI, "REST:/orders").StreamedByActions)
	})

	t.Run("screen and inheritance", func(t *testing.T) {
		button := ref("UI", ast.KindElement, "Button")
		assert.Equal(t, []Ref{button}, record(t, g, ast.KindScreen, "Cart").UsesElements)
		assert.Equal(t, []Ref{cart}, record(t, g, ast.KindElement, "Button").UsedByScreens)

		b := record(t, g, ast.KindElement, "Button")
		require.NotNil(t, b.ExtendsParent)
		assert.Equal(t, ref("UI", ast.KindElement, "Base"), *b.ExtendsParent)
		assert.Equal(t, []Ref{button}, record(t, g, ast.KindElement, "Base").ExtendedByChildren)
	})

	t.Run("journey screens", func(t *testing.T) {
		summary := record(t, g, ast.KindScreen, "Summary")
		assert.True(t, summary.IsEmpty())
		_, ok := g.Record(ast.NewKey(ast.KindScreen, "end"))
		assert.False(t, ok)
		_, ok = g.Record(ast.NewKey(ast.KindScreen, "*"))
		assert.False(t, ok)
		_, ok = g.Record(ast.NewKey(ast.KindScreen, "Payment"))
		assert.False(t, ok, "unreferenced constructs have no record")
	})
}

func TestBuild_AnonymousAPIsStayDistinct(t *testing.T) {
	g := build(t, `
component "Auth" {
  entity "User" {}
  api "REST" {
    prefix = "/auth"
    endpoint "GET" "/me" { output = User }
  }
  api "REST" {
    prefix = "/admin"
    endpoint "GET" "/users" { output = list(User) }
  }
}
`)

	_, authOK := g.Record(ast.NewKey(ast.KindAPI, "REST:/auth"))
	_, adminOK := g.Record(ast.NewKey(ast.KindAPI, "REST:/admin"))
	assert.True(t, authOK)
	assert.True(t, adminOK)
	assert.Equal(t, []Ref{
		ref("Auth", ast.KindAPI, "REST:/admin"),
		ref("Auth", ast.KindAPI, "REST:/auth"),
	}, record(t, g, ast.KindEntity, "User").ExposedByAPI)
}

func TestBuild_Symmetry(t *testing.T) {
	g := build(t, richModel+`
component "Extra" {
  entity "Base" {}
  entity "Audited" {}
  entity "Invoice" {
    extends    = "Base"
    implements = ["Audited", "Missing"]
  }
  component "Child" { extends = "Extra" }
}
`)

	for _, key := range g.Keys() {
		rec, _ := g.Record(key)
		self, ok := g.Ref(key)
		require.True(t, ok)

		for _, p := range Pairs() {
			if p.Source == "" || p.Source == key.Kind {
				for _, to := range rec.Get(p.Forward) {
					target, ok := g.Record(to.Key())
					require.True(t, ok, "%s -%s-> %s has no target record", key, p.Forward, to)
					assert.True(t, target.Contains(p.Inverse, self), "%s lacks %s back to %s", to, p.Inverse, key)
				}
			}
			for _, from := range rec.Get(p.Inverse) {
				if p.Source != "" && from.Kind != p.Source {
					continue
				}
				source, ok := g.Record(from.Key())
				require.True(t, ok)
				assert.True(t, source.Contains(p.Forward, self), "%s lacks %s to %s", from, p.Forward, key)
			}
		}
	}

	invoice := record(t, g, ast.KindEntity, "Invoice")
	assert.Equal(t, []Ref{ref("Extra", ast.KindEntity, "Audited")}, invoice.ImplementsInterfaces)
	child := record(t, g, ast.KindComponent, "Child")
	require.NotNil(t, child.ExtendsParent)
	assert.Equal(t, ref("Extra", ast.KindComponent, "Extra"), *child.ExtendsParent)
}

func TestBuild_Deterministic(t *testing.T) {
	first := build(t, richModel)
	second := build(t, richModel)
	if diff := cmp.Diff(first.Records(), second.Records()); diff != "" {
		t.Errorf("rebuild differs (-first +second):\n%s", diff)
	}

	a := build(t, `
component "A" {
  entity "X" { field "y" { type = Y } }
}
component "B" {
  entity "Y" {}
  flow "f" { step "touch" { args = ["X Y"] } }
}
`)
	b := build(t, `
component "B" {
  flow "f" { step "touch" { args = ["X Y"] } }
  entity "Y" {}
}
component "A" {
  entity "X" { field "y" { type = Y } }
}
`)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.NotEmpty(t, a.Edges())
}

func TestBuild_EmptyModel(t *testing.T) {
	g := build(t, "")
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Edges())
}
