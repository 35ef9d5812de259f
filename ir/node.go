package ir

import (
	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/token"
)

type Document struct {
	Version format.Version
	Nodes   []*Node
}

func NewDocument(v format.Version, nodes ...*Node) *Document {
	return &Document{Version: v, Nodes: nodes}
}

type Node struct {
	Identifier string
	Properties []token.Token
	Nodes      []*Node
}

func NewNode(id string, props ...token.Token) *Node {
	return &Node{Identifier: id, Properties: props}
}

// WithNodes appends children and returns n.
func (n *Node) WithNodes(children ...*Node) *Node {
	n.Nodes = append(n.Nodes, children...)
	return n
}

// WithProperties appends properties and returns n.
func (n *Node) WithProperties(props ...token.Token) *Node {
	n.Properties = append(n.Properties, props...)
	return n
}

// HasNodes reports whether n has at least one non nil child.
func (n *Node) HasNodes() bool {
	for _, c := range n.Nodes {
		if c != nil {
			return true
		}
	}
	return false
}

// HasProperties reports whether n has at least one non nil property.
func (n *Node) HasProperties() bool {
	for _, p := range n.Properties {
		if p != nil {
			return true
		}
	}
	return false
}

// Get returns the first child with the given identifier, or nil.
func (n *Node) Get(id string) *Node {
	for _, c := range n.Nodes {
		if c != nil && c.Identifier == id {
			return c
		}
	}
	return nil
}

// Get returns the first root node with the given identifier, or nil.
func (d *Document) Get(id string) *Node {
	for _, c := range d.Nodes {
		if c != nil && c.Identifier == id {
			return c
		}
	}
	return nil
}
