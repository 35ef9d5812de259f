package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/signadot/fbx-format/go-fbx/debug"
	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

var (
	binaryMagic = []byte("Kaydara FBX Binary  \x00\x1a\x00")
	footerID    = []byte{
		0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66,
		0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e,
	}
	footerMagic = []byte{
		0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e,
		0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
	}
)

// BinaryWriter renders documents in the FBX binary form: header, node
// records, a closing null record and the footer.
type BinaryWriter struct {
	w  io.Writer
	es *EncState
}

func NewBinaryWriter(w io.Writer, opts ...EncodeOption) (*BinaryWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	es, err := newEncState(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryWriter{w: w, es: es}, nil
}

func (bw *BinaryWriter) Write(doc *ir.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	v := doc.Version
	out := token.NewBinaryWriter(bw.es.cfg)
	appendBytes(out, binaryMagic)
	out.WriteUint32(uint32(v))
	if err := writeBinaryNodes(v, out, doc.Nodes); err != nil {
		return err
	}
	writeNullRecord(v, out)
	writeFooter(v, out)
	_, err := out.WriteTo(bw.w)
	return err
}

func writeBinaryNodes(v format.Version, out *token.BinaryWriter, nodes []*ir.Node) error {
	last := -1
	for i, n := range nodes {
		if n != nil {
			last = i
		}
	}
	for i, n := range nodes {
		if n == nil {
			continue
		}
		if err := writeBinaryNode(v, out, n, i == last); err != nil {
			return err
		}
	}
	return nil
}

// writeBinaryNode writes one node record. The record header (end offset,
// property count, property byte length) is written as zeros and patched
// once the properties and children are in place.
func writeBinaryNode(v format.Version, out *token.BinaryWriter, n *ir.Node, isLast bool) error {
	start := out.Len()
	if len(n.Identifier) > math.MaxUint8 {
		return token.NewOffsetErr(
			fmt.Errorf("%w: node identifier of %d bytes", ErrEncoding, len(n.Identifier)),
			int64(start))
	}
	wide := v.WideRecords()
	if wide {
		out.WriteUint64(0)
		out.WriteUint64(0)
		out.WriteUint64(0)
	} else {
		out.WriteUint32(0)
		out.WriteUint32(0)
		out.WriteUint32(0)
	}
	appendBytes(out, []byte{byte(len(n.Identifier))}, []byte(n.Identifier))

	propStart := out.Len()
	numProps := 0
	for _, p := range n.Properties {
		if p == nil {
			continue
		}
		if err := p.WriteBinary(v, out); err != nil {
			return fmt.Errorf("%w: node %s: %w", ErrEncoding, n.Identifier, err)
		}
		numProps++
	}
	propLen := out.Len() - propStart

	hasNodes := n.HasNodes()
	if err := writeBinaryNodes(v, out, n.Nodes); err != nil {
		return err
	}
	if hasNodes || (numProps == 0 && !isLast) {
		writeNullRecord(v, out)
	}
	end := out.Len()
	if debug.Nodes() {
		debug.Logf("node %s: %v\n", n.Identifier, map[string]any{
			"start":     start,
			"end":       end,
			"props":     numProps,
			"propBytes": propLen,
		})
	}
	if wide {
		out.PatchUint64(start, uint64(end))
		out.PatchUint64(start+8, uint64(numProps))
		out.PatchUint64(start+16, uint64(propLen))
		return nil
	}
	if uint64(end) > math.MaxUint32 {
		return token.NewOffsetErr(
			fmt.Errorf("%w: node %s ends beyond 4GiB, which needs version 7.5 or later", ErrEncoding, n.Identifier),
			int64(start))
	}
	out.PatchUint32(start, uint32(end))
	out.PatchUint32(start+4, uint32(numProps))
	out.PatchUint32(start+8, uint32(propLen))
	return nil
}

func nullRecordLen(v format.Version) int {
	if v.WideRecords() {
		return 25
	}
	return 13
}

func writeNullRecord(v format.Version, out *token.BinaryWriter) {
	appendBytes(out, make([]byte, nullRecordLen(v)))
}

func writeFooter(v format.Version, out *token.BinaryWriter) {
	appendBytes(out, footerID, make([]byte, 4))
	appendBytes(out, make([]byte, 16-out.Len()%16))
	out.WriteUint32(uint32(v))
	appendBytes(out, make([]byte, 120), footerMagic)
}

// appendBytes writes each of ps to out. The in-memory writer cannot fail.
func appendBytes(out *token.BinaryWriter, ps ...[]byte) {
	for _, p := range ps {
		_, _ = out.Write(p)
	}
}

// IsBinary reports whether d starts with the binary FBX magic.
func IsBinary(d []byte) bool {
	return bytes.HasPrefix(d, binaryMagic)
}
