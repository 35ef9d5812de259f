package encode

import (
	"fmt"
	"io"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

// ASCIIWriter renders documents in the FBX text form. Every document opens
// with its own header comment, so one writer may append several documents
// to the same stream.
type ASCIIWriter struct {
	w  io.Writer
	es *EncState
}

func NewASCIIWriter(w io.Writer, opts ...EncodeOption) (*ASCIIWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	es, err := newEncState(opts)
	if err != nil {
		return nil, err
	}
	return &ASCIIWriter{w: w, es: es}, nil
}

func (aw *ASCIIWriter) Write(doc *ir.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	b := token.NewASCIIBuffer(aw.es.cfg)
	b.Color = aw.es.Color
	v := doc.Version
	b.WriteColored(token.ValueNone, token.HeaderColor,
		fmt.Sprintf("; FBX %d.%d.%d project file", v.Major(), v.Minor(), v.Revision()))
	b.NewLine()
	lineStart := b.NewLine()
	var err error
	for _, n := range doc.Nodes {
		if n == nil {
			continue
		}
		if _, err = writeASCIINode(v, b, n, 0, lineStart); err != nil {
			return err
		}
		// roots are separated by a blank line
		lineStart = b.NewLine()
	}
	_, err = io.WriteString(aw.w, b.String())
	return err
}

func writeASCIINode(v format.Version, b *token.ASCIIBuffer, n *ir.Node, indent, lineStart int) (int, error) {
	b.Indent(indent)
	b.WriteColored(token.ValueNone, token.IdentifierColor, n.Identifier)
	b.WriteColored(token.ValueNone, token.SepColor, ":")
	first := true
	var err error
	for _, p := range n.Properties {
		if p == nil {
			continue
		}
		if !first {
			b.WriteColored(p.ValueType(), token.SepColor, ",")
		}
		first = false
		b.WriteByte(' ')
		lineStart, err = p.WriteASCII(v, b, indent, lineStart)
		if err != nil {
			return lineStart, fmt.Errorf("%w: node %s: %w", ErrEncoding, n.Identifier, err)
		}
	}
	if n.HasNodes() {
		b.WriteString(" {")
		lineStart = b.NewLine()
		for _, c := range n.Nodes {
			if c == nil {
				continue
			}
			lineStart, err = writeASCIINode(v, b, c, indent+1, lineStart)
			if err != nil {
				return lineStart, err
			}
		}
		b.Indent(indent)
		b.WriteByte('}')
	}
	return b.NewLine(), nil
}
