package hclfront

import (
	"testing"

	"github.com/specialistvlad/specgraph/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopSource = `
include "shared/types.sdl" {}

system "Shop" {
  decorator "version" { args = ["2"] }

  component "Auth" {
    entity "User" {
      field "email" { type = email }
      field "manager" {
        type     = optional(User)
        optional = true
      }
      field "roles" { type = list(Role) }
      field "kind" { type = union("guest", "member") }
    }

    enum "Role" { values = ["admin", "member"] }

    api "REST" {
      prefix = "/auth"
      endpoint "POST" "/login" {
        input  = Credentials
        output = User
      }
    }
  }

  import "billing.sdl" {}

  component "Orders" {
    extends    = "Base"
    implements = ["Auditable"]

    flow "PlaceOrder" {
      param "user" { type = User }
      returns = Order
      on      = ["CartCheckedOut"]
      emits   = ["OrderPlaced"]
      step "validate" { args = ["Order"] }
      step "emit" { args = ["OrderPlaced"] }
    }

    rule "Limit" {
      when { condition = "order.total > 100" }
      then { action = "approve(order)" }
      else { action = "deny" }
    }

    journey "Checkout" {
      step {
        from = "*"
        to   = "Cart"
      }
      step {
        from = "Cart"
        to   = "Payment"
        on   = "pay"
      }
    }

    api "REST" {
      name = "OrdersAPI"
    }
  }
}
`

func TestParse_Document(t *testing.T) {
	doc, err := New().Parse([]byte(shopSource), "shop.sdl")
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "shop.sdl", doc.Path)

	inc, ok := doc.Items[0].(*ast.Include)
	require.True(t, ok)
	assert.Equal(t, "shared/types.sdl", inc.Path)
	assert.False(t, inc.Import)
	assert.Equal(t, 2, inc.Range.Start.Line)

	sys, ok := doc.Items[1].(*ast.System)
	require.True(t, ok)
	assert.Equal(t, "Shop", sys.Name)
	assert.Equal(t, []ast.Decorator{{Name: "version", Args: []string{"2"}}}, sys.Decorators)
	require.Len(t, sys.Body, 3, "decorators are not items")

	auth := sys.Body[0].(*ast.Component)
	imp := sys.Body[1].(*ast.Include)
	orders := sys.Body[2].(*ast.Component)
	assert.Equal(t, "Auth", auth.Name)
	assert.True(t, imp.Import)
	assert.Equal(t, "Orders", orders.Name)
	assert.Equal(t, ast.Inherit{Extends: "Base", Implements: []string{"Auditable"}}, orders.Inherit)

	t.Run("entity fields", func(t *testing.T) {
		user := auth.Body[0].(*ast.Entity)
		require.Len(t, user.Fields, 4)
		assert.Equal(t, &ast.Primitive{Name: "email"}, user.Fields[0].Type)
		assert.Equal(t, "User?", user.Fields[1].Type.String())
		assert.True(t, user.Fields[1].Optional)
		assert.Equal(t, "Role[]", user.Fields[2].Type.String())
		assert.Equal(t, `"guest" | "member"`, user.Fields[3].Type.String())
	})

	t.Run("enum", func(t *testing.T) {
		role := auth.Body[1].(*ast.Enum)
		assert.Equal(t, []string{"admin", "member"}, role.Values)
	})

	t.Run("anonymous api", func(t *testing.T) {
		api := auth.Body[2].(*ast.API)
		assert.Empty(t, api.Name)
		assert.Equal(t, "REST", api.Style)
		assert.Equal(t, "/auth", api.Prefix())
		assert.Equal(t, ast.NewKey(ast.KindAPI, "REST:/auth"), api.Key())
		require.Len(t, api.Endpoints, 1)
		ep := api.Endpoints[0]
		assert.Equal(t, "POST", ep.Method)
		assert.Equal(t, "/login", ep.Path)
		assert.Equal(t, &ast.TypeRef{Name: "Credentials"}, ep.Input)
		assert.Equal(t, &ast.TypeRef{Name: "User"}, ep.Output)
	})

	t.Run("flow", func(t *testing.T) {
		flow := orders.Body[0].(*ast.Flow)
		require.Len(t, flow.Params, 1)
		assert.Equal(t, &ast.TypeRef{Name: "User"}, flow.Params[0].Type)
		assert.Equal(t, &ast.TypeRef{Name: "Order"}, flow.Returns)
		assert.Equal(t, []string{"CartCheckedOut"}, flow.On)
		assert.Equal(t, []string{"OrderPlaced"}, flow.Emits)
		require.Len(t, flow.Steps, 2)
		assert.Equal(t, "validate Order", flow.Steps[0].Text())
		assert.Equal(t, "emit", flow.Steps[1].Action)
	})

	t.Run("rule clauses keep order", func(t *testing.T) {
		rule := orders.Body[1].(*ast.Rule)
		require.Len(t, rule.Clauses, 3)
		assert.Equal(t, ast.ClauseWhen, rule.Clauses[0].Kind)
		assert.Equal(t, "order.total > 100", rule.Clauses[0].Condition)
		assert.Equal(t, ast.ClauseThen, rule.Clauses[1].Kind)
		assert.Equal(t, ast.ClauseElse, rule.Clauses[2].Kind)
		assert.Equal(t, "deny", rule.Clauses[2].Action)
	})

	t.Run("journey", func(t *testing.T) {
		j := orders.Body[2].(*ast.Journey)
		require.Len(t, j.Steps, 2)
		assert.Equal(t, ast.JourneyStep{From: "*", To: "Cart", Range: j.Steps[0].Range}, j.Steps[0])
		assert.Equal(t, "pay", j.Steps[1].On)
	})

	t.Run("named api", func(t *testing.T) {
		api := orders.Body[3].(*ast.API)
		assert.Equal(t, "OrdersAPI", api.Name)
		assert.Equal(t, ast.NewKey(ast.KindAPI, "OrdersAPI"), api.Key())
	})
}

func TestParse_RemainingConstructs(t *testing.T) {
	src := `
element "Button" {
  extends = "Base"
  prop "label" { type = string }
}
event "OrderPlaced" {
  field "id" { type = uuid }
}
signal "Toast" {}
state "OrderLifecycle" {
  enum = "OrderStatus"
  transition "pending" "paid" { on = "PaymentReceived" }
}
screen "Cart" { uses = ["Button"] }
operation "Charge" {
  param "order" { type = Order }
  returns  = Receipt
  emits    = ["Charged"]
  on       = ["OrderPlaced"]
  enforces = ["Limit"]
}
action "Refresh" {
  from   = "Cart"
  on     = ["Toast"]
  emits  = ["Refreshed"]
  stream = "/orders/live"
}
dep "stripe" { target = "https://stripe.com" }
secret "STRIPE_KEY" {}
node "web" {}
comment_free = 1
`
	_, err := New().Parse([]byte(src), "rest.sdl")
	require.Error(t, err, "top-level attributes are rejected")

	doc, err := New().Parse([]byte(src[:len(src)-len("comment_free = 1\n")]), "rest.sdl")
	require.NoError(t, err)

	var kinds []ast.Kind
	for _, item := range doc.Items {
		kinds = append(kinds, item.(ast.Construct).Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindElement, ast.KindEvent, ast.KindSignal, ast.KindState, ast.KindScreen,
		ast.KindOperation, ast.KindAction, ast.KindDep, ast.KindSecret, ast.KindNode,
	}, kinds)

	el := doc.Items[0].(*ast.Element)
	assert.Equal(t, "Base", el.Extends)
	assert.Equal(t, "label", el.Props[0].Name)

	st := doc.Items[3].(*ast.State)
	assert.Equal(t, "OrderStatus", st.EnumRef)
	assert.Equal(t, ast.Transition{From: "pending", To: "paid", On: "PaymentReceived", Range: st.Transitions[0].Range}, st.Transitions[0])

	op := doc.Items[5].(*ast.Operation)
	assert.Equal(t, []string{"Limit"}, op.Enforces)

	act := doc.Items[6].(*ast.Action)
	assert.Equal(t, "/orders/live", act.Stream)
	assert.Equal(t, "Cart", act.From)

	dep := doc.Items[7].(*ast.Dep)
	assert.Equal(t, "https://stripe.com", dep.Target)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		wantLine int
	}{
		{name: "syntax error", src: "entity \"User\" {\n  field \"a\" {\n"},
		{name: "unknown block", src: "\n\nwidget \"X\" {}\n", wantLine: 3},
		{name: "missing required attribute", src: "enum \"Role\" {\n}\n", wantLine: 1},
		{name: "bad type constructor", src: "entity \"U\" {\n  field \"a\" { type = map(string) }\n}\n", wantLine: 2},
		{name: "wrong attribute type", src: "enum \"Role\" {\n  values = 3\n}\n", wantLine: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := New().Parse([]byte(tc.src), "bad.sdl")
			require.Error(t, err)
			assert.Nil(t, doc)

			var perr *ast.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "bad.sdl", perr.Range.Filename)
			assert.GreaterOrEqual(t, perr.Range.Start.Line, 1)
			if tc.wantLine > 0 {
				assert.Equal(t, tc.wantLine, perr.Range.Start.Line)
			}
			assert.NotEmpty(t, perr.Message)
		})
	}
}

func TestParse_Concurrent(t *testing.T) {
	p := New()
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := p.Parse([]byte(shopSource), "shop.sdl")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
