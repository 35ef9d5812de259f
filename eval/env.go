package eval

import (
	"strings"

	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

// Env is what a filter expression sees for one node. Props holds the non
// nil properties as plain values: bool, int, float64, string, or []any
// for arrays.
type Env struct {
	Identifier    string
	Path          string
	Depth         int
	NumProperties int
	NumNodes      int
	Props         []any

	node  *ir.Node
	props []token.Token
}

func NewEnv(n *ir.Node, path string) Env {
	env := Env{
		Identifier: n.Identifier,
		Path:       path,
		Depth:      strings.Count(path, "."),
		node:       n,
	}
	for _, p := range n.Properties {
		if p == nil {
			continue
		}
		env.props = append(env.props, p)
		env.Props = append(env.Props, ToValue(p))
	}
	for _, c := range n.Nodes {
		if c != nil {
			env.NumNodes++
		}
	}
	env.NumProperties = len(env.props)
	return env
}

// Prop returns property i as a plain value, or nil when out of range.
func (e Env) Prop(i int) any {
	if i < 0 || i >= len(e.Props) {
		return nil
	}
	return e.Props[i]
}

// Kind names the kind of property i: a value type such as "Double",
// "String", or the element type followed by "Array". It is "" when i is
// out of range.
func (e Env) Kind(i int) string {
	if i < 0 || i >= len(e.props) {
		return ""
	}
	p := e.props[i]
	switch p.Type() {
	case token.TString:
		return "String"
	case token.TValueArray:
		return p.ValueType().String() + "Array"
	case token.TValue:
		return p.ValueType().String()
	default:
		return p.Type().String()
	}
}

// HasChild reports whether the node has a direct child with identifier id.
func (e Env) HasChild(id string) bool {
	return e.node != nil && e.node.Get(id) != nil
}

// ToValue converts a token to the value expressions operate on.
func ToValue(t token.Token) any {
	switch x := t.(type) {
	case *token.BoolToken:
		return x.Value
	case *token.ShortToken:
		return int(x.Value)
	case *token.IntegerToken:
		return int(x.Value)
	case *token.LongToken:
		return int(x.Value)
	case *token.FloatToken:
		return float64(x.Value)
	case *token.DoubleToken:
		return x.Value
	case *token.StringToken:
		return x.Value
	case *token.ByteArrayToken:
		return toAny(x.Values, func(v byte) any { return int(v) })
	case *token.IntegerArrayToken:
		return toAny(x.Values, func(v int32) any { return int(v) })
	case *token.LongArrayToken:
		return toAny(x.Values, func(v int64) any { return int(v) })
	case *token.FloatArrayToken:
		return toAny(x.Values, func(v float32) any { return float64(v) })
	case *token.DoubleArrayToken:
		return toAny(x.Values, func(v float64) any { return v })
	case *token.BoolArrayToken:
		return toAny(x.Values, func(v bool) any { return v })
	case *token.IdentifierToken:
		return x.Value
	case *token.CommentToken:
		return x.Value
	default:
		return nil
	}
}

func toAny[T any](vs []T, f func(T) any) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = f(v)
	}
	return res
}
