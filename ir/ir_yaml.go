package ir

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/token"
)

// FromYAML builds a Document from a YAML description:
//
//	version: 7.4          # or 7400, defaults to 7.4
//	nodes:
//	  - id: Geometry
//	    props: [1000, "Geometry::Cube", "Mesh"]
//	    nodes:
//	      - id: Vertices
//	        props: [!doubles [0, 0, 1.5]]
//
// Untagged numbers are classified from their literal text with
// token.ParseNumber, strings become string properties, booleans bool
// properties and nulls holes. Tags pick a kind explicitly: !short, !int,
// !long, !float, !double and !raw (base64) on scalars; !bytes, !ints,
// !longs, !floats, !doubles and !bools on sequences. A null entry under
// nodes is a hole as well.
//
// Errors in the description are *token.FormatErr values carrying the line
// and column of the offending YAML node.
func FromYAML(d []byte) (*Document, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTree, err)
	}
	doc := &Document{Version: format.DefaultVersion}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return doc, nil
	}
	body := f.Docs[0].Body
	kvs, ok := mappingValues(body)
	if !ok {
		return nil, nodeErr(body, errors.New("document must be a mapping"))
	}
	for _, kv := range kvs {
		switch key := keyString(kv.Key); key {
		case "version":
			v, err := format.ParseVersion(scalarText(kv.Value))
			if err != nil {
				return nil, nodeErr(kv.Value, err)
			}
			doc.Version = v
		case "nodes":
			nodes, err := yamlNodes(kv.Value)
			if err != nil {
				return nil, err
			}
			doc.Nodes = nodes
		default:
			return nil, nodeErr(kv.Key, fmt.Errorf("unknown document field %q", key))
		}
	}
	return doc, nil
}

func yamlNodes(n ast.Node) ([]*Node, error) {
	if _, ok := n.(*ast.NullNode); ok {
		return nil, nil
	}
	seq, ok := n.(*ast.SequenceNode)
	if !ok {
		return nil, nodeErr(n, errors.New("nodes must be a sequence"))
	}
	res := make([]*Node, len(seq.Values))
	for i, v := range seq.Values {
		if _, isNull := v.(*ast.NullNode); isNull {
			continue
		}
		node, err := yamlNode(v)
		if err != nil {
			return nil, err
		}
		res[i] = node
	}
	return res, nil
}

func yamlNode(n ast.Node) (*Node, error) {
	kvs, ok := mappingValues(n)
	if !ok {
		return nil, nodeErr(n, errors.New("node must be a mapping"))
	}
	res := &Node{}
	hasID := false
	for _, kv := range kvs {
		var err error
		switch key := keyString(kv.Key); key {
		case "id":
			res.Identifier = scalarText(kv.Value)
			hasID = true
		case "props":
			res.Properties, err = yamlProps(kv.Value)
		case "nodes":
			res.Nodes, err = yamlNodes(kv.Value)
		default:
			err = nodeErr(kv.Key, fmt.Errorf("unknown node field %q", key))
		}
		if err != nil {
			return nil, err
		}
	}
	if !hasID || res.Identifier == "" {
		return nil, nodeErr(n, errors.New("node without id"))
	}
	if len(res.Identifier) > 255 {
		return nil, nodeErr(n, fmt.Errorf("id longer than 255 bytes: %q...", res.Identifier[:16]))
	}
	return res, nil
}

func yamlProps(n ast.Node) ([]token.Token, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return nil, nil
	case *ast.SequenceNode:
		res := make([]token.Token, len(x.Values))
		for i, v := range x.Values {
			p, err := yamlProp(v)
			if err != nil {
				return nil, err
			}
			res[i] = p
		}
		return res, nil
	default:
		p, err := yamlProp(n)
		if err != nil {
			return nil, err
		}
		return []token.Token{p}, nil
	}
}

func yamlProp(n ast.Node) (token.Token, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return nil, nil
	case *ast.BoolNode:
		return token.NewBool(x.Value), nil
	case *ast.StringNode:
		return token.NewString(x.Value), nil
	case *ast.LiteralNode:
		return token.NewString(x.Value.Value), nil
	case *ast.IntegerNode, *ast.FloatNode:
		tok, err := token.ParseNumber(scalarText(n))
		if err != nil {
			return nil, nodeErr(n, err)
		}
		return tok, nil
	case *ast.TagNode:
		return yamlTagged(x)
	case *ast.SequenceNode:
		return nil, nodeErr(n, errors.New("array properties need a type tag such as !doubles"))
	default:
		return nil, nodeErr(n, fmt.Errorf("unsupported property %s", n.Type()))
	}
}

func yamlTagged(n *ast.TagNode) (token.Token, error) {
	tag := n.Start.Value
	if seq, ok := n.Value.(*ast.SequenceNode); ok {
		return yamlArray(tag, n, seq)
	}
	text := scalarText(n.Value)
	var (
		tok token.Token
		err error
	)
	switch tag {
	case "!short":
		var i int64
		i, err = strconv.ParseInt(text, 10, 16)
		tok = token.NewShort(int16(i))
	case "!int":
		var i int64
		i, err = strconv.ParseInt(text, 10, 32)
		tok = token.NewInteger(int32(i))
	case "!long":
		var i int64
		i, err = strconv.ParseInt(text, 10, 64)
		tok = token.NewLong(i)
	case "!float":
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		tok = token.NewFloat(float32(f))
	case "!double":
		var f float64
		f, err = strconv.ParseFloat(text, 64)
		tok = token.NewDouble(f)
	case "!raw":
		var d []byte
		d, err = base64.StdEncoding.DecodeString(text)
		tok = token.NewByteArray(d)
	default:
		return nil, nodeErr(n, fmt.Errorf("unknown scalar tag %s", tag))
	}
	if err != nil {
		return nil, nodeErr(n, fmt.Errorf("%s %q: %w", tag, text, err))
	}
	return tok, nil
}

func yamlArray(tag string, n *ast.TagNode, seq *ast.SequenceNode) (token.Token, error) {
	var (
		res   token.Token
		parse func(i int, text string) error
	)
	count := len(seq.Values)
	switch tag {
	case "!bytes":
		arr := token.NewByteArray(make([]byte, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseUint(s, 10, 8)
			arr.Values[i] = byte(v)
			return err
		}
	case "!ints":
		arr := token.NewIntegerArray(make([]int32, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseInt(s, 10, 32)
			arr.Values[i] = int32(v)
			return err
		}
	case "!longs":
		arr := token.NewLongArray(make([]int64, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseInt(s, 10, 64)
			arr.Values[i] = v
			return err
		}
	case "!floats":
		arr := token.NewFloatArray(make([]float32, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseFloat(s, 32)
			arr.Values[i] = float32(v)
			return err
		}
	case "!doubles":
		arr := token.NewDoubleArray(make([]float64, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseFloat(s, 64)
			arr.Values[i] = v
			return err
		}
	case "!bools":
		arr := token.NewBoolArray(make([]bool, count))
		res, parse = arr, func(i int, s string) error {
			v, err := strconv.ParseBool(s)
			arr.Values[i] = v
			return err
		}
	default:
		return nil, nodeErr(n, fmt.Errorf("unknown array tag %s", tag))
	}
	for i, v := range seq.Values {
		text := scalarText(v)
		if err := parse(i, text); err != nil {
			return nil, nodeErr(v, fmt.Errorf("%s element %q: %w", tag, text, err))
		}
	}
	return res, nil
}

func mappingValues(n ast.Node) ([]*ast.MappingValueNode, bool) {
	switch m := n.(type) {
	case *ast.MappingNode:
		return m.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{m}, true
	}
	return nil, false
}

func keyString(k ast.MapKeyNode) string {
	if s, ok := k.(*ast.StringNode); ok {
		return s.Value
	}
	return scalarText(k)
}

func scalarText(n ast.Node) string {
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	tk := n.GetToken()
	if tk == nil {
		return ""
	}
	return tk.Value
}

func nodeErr(n ast.Node, err error) error {
	e := fmt.Errorf("%w: %w", ErrTree, err)
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return token.NewOffsetErr(e, 0)
	}
	return token.NewLineColErr(e, tk.Position.Line, tk.Position.Column)
}

