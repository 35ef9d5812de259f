package ir

// VisitFunc is called twice per node, before (isPost false) and after
// (isPost true) its children. path is the dotted chain of identifiers
// from the root, e.g. "Objects.Geometry.Vertices". Returning false from
// the pre call skips the children.
type VisitFunc func(n *Node, path string, isPost bool) (bool, error)

// Visit walks n depth first in preorder, skipping nil children.
func (n *Node) Visit(f VisitFunc) error {
	return n.visit("", f)
}

func (n *Node) visit(parent string, f VisitFunc) error {
	path := n.Identifier
	if parent != "" {
		path = parent + "." + path
	}
	dive, err := f(n, path, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Nodes {
			if c == nil {
				continue
			}
			if err := c.visit(path, f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, path, true); err != nil {
		return err
	}
	return nil
}

// Visit walks every root node of d in order.
func (d *Document) Visit(f VisitFunc) error {
	for _, n := range d.Nodes {
		if n == nil {
			continue
		}
		if err := n.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

// Select returns, in preorder, the nodes of d for which match returns
// true. The children of a selected node are not searched.
func Select(d *Document, match func(n *Node, path string) (bool, error)) ([]*Node, error) {
	var res []*Node
	err := d.Visit(func(n *Node, path string, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		ok, err := match(n, path)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
