package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

type Op int

const (
	OpInsert Op = iota + 1
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	case OpReplace:
		return "~"
	default:
		return "?"
	}
}

// VersionPath is the Path of a change to the document version.
const VersionPath = "@version"

// Change is one difference between two documents. Path is the dotted
// identifier path of the node concerned. Prop is the index of the
// property among the node's non nil properties, or -1 when the change is
// about the node itself.
type Change struct {
	Op   Op
	Path string
	Prop int
	From string
	To   string

	// Detail is an inline character diff when both sides are strings.
	Detail string
}

func (c Change) String() string {
	at := c.Path
	if c.Prop >= 0 {
		at = fmt.Sprintf("%s[%d]", c.Path, c.Prop)
	}
	switch {
	case c.Detail != "":
		return fmt.Sprintf("%s %s: %s", c.Op, at, c.Detail)
	case c.Op == OpInsert:
		return fmt.Sprintf("%s %s: %s", c.Op, at, c.To)
	case c.Op == OpDelete:
		return fmt.Sprintf("%s %s: %s", c.Op, at, c.From)
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, at, c.From, c.To)
	}
}

// Diff lists the changes turning from into to, in document order. Equal
// documents give no changes.
func Diff(from, to *ir.Document) []Change {
	d := &differ{}
	if from.Version != to.Version {
		d.add(Change{Op: OpReplace, Path: VersionPath, Prop: -1, From: from.Version.String(), To: to.Version.String()})
	}
	d.nodes("", from.Nodes, to.Nodes)
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(c Change) { d.changes = append(d.changes, c) }

// nodes aligns two sibling lists by identifier: each distinct identifier
// becomes one rune and the rune strings are diffed.
func (d *differ) nodes(parent string, from, to []*ir.Node) {
	from, to = compact(from), compact(to)
	m := map[string]rune{}
	diffs := diffpatch.New().DiffMainRunes(idRunes(m, from), idRunes(m, to), false)
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				d.add(Change{Op: OpDelete, Path: join(parent, from[fi].Identifier), Prop: -1, From: summary(from[fi])})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Change{Op: OpInsert, Path: join(parent, to[ti].Identifier), Prop: -1, To: summary(to[ti])})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.node(join(parent, from[fi].Identifier), from[fi], to[ti])
				fi++
				ti++
			}
		}
	}
}

func (d *differ) node(path string, from, to *ir.Node) {
	fp, tp := compactProps(from.Properties), compactProps(to.Properties)
	for i := range max(len(fp), len(tp)) {
		switch {
		case i >= len(tp):
			d.add(Change{Op: OpDelete, Path: path, Prop: i, From: Text(fp[i])})
		case i >= len(fp):
			d.add(Change{Op: OpInsert, Path: path, Prop: i, To: Text(tp[i])})
		case !Same(fp[i], tp[i]):
			c := Change{Op: OpReplace, Path: path, Prop: i, From: Text(fp[i]), To: Text(tp[i])}
			fs, fok := fp[i].(*token.StringToken)
			ts, tok := tp[i].(*token.StringToken)
			if fok && tok {
				c.Detail = inline(fs.Value, ts.Value)
			}
			d.add(c)
		}
	}
	d.nodes(path, from.Nodes, to.Nodes)
}

// Same reports whether two property tokens hold the same value. Scalars
// follow token.Equal; arrays of the same kind compare element by element
// through their text form.
func Same(a, b token.Token) bool {
	if token.Equal(a, b) {
		return true
	}
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != token.TValueArray || b.Type() != token.TValueArray || a.ValueType() != b.ValueType() {
		return false
	}
	return fullText(a) == fullText(b)
}

func inline(from, to string) string {
	dp := diffpatch.New()
	diffs := dp.DiffCleanupSemantic(dp.DiffMain(from, to, false))
	sb := &strings.Builder{}
	sb.WriteByte('"')
	for _, df := range diffs {
		switch df.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + df.Text + "+}")
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + df.Text + "-]")
		default:
			sb.WriteString(df.Text)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func idRunes(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		r, ok := m[n.Identifier]
		if !ok {
			r = rune(len(m))
			m[n.Identifier] = r
		}
		rs[i] = r
	}
	return rs
}

func compact(nodes []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			res = append(res, n)
		}
	}
	return res
}

func compactProps(props []token.Token) []token.Token {
	res := make([]token.Token, 0, len(props))
	for _, p := range props {
		if p != nil {
			res = append(res, p)
		}
	}
	return res
}

func join(parent, id string) string {
	if parent == "" {
		return id
	}
	return parent + "." + id
}
