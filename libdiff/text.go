package libdiff

import (
	"math"
	"strings"

	"github.com/signadot/fbx-format/go-fbx/format"
	"github.com/signadot/fbx-format/go-fbx/ir"
	"github.com/signadot/fbx-format/go-fbx/token"
)

// maxText bounds the property text shown in a Change.
const maxText = 64

// Text renders a property as it appears in ASCII FBX, arrays as a bare
// element list, shortened to a readable length.
func Text(t token.Token) string {
	s := fullText(t)
	if t.Type() == token.TValueArray {
		s = "[" + s + "]"
	}
	if len(s) > maxText {
		s = s[:maxText-3] + "..."
	}
	return s
}

func fullText(t token.Token) string {
	cfg := token.DefaultConfig()
	cfg.MaxLineLength = math.MaxInt
	b := token.NewASCIIBuffer(cfg)
	if _, err := t.WriteASCII(format.V7_0, b, 0, 0); err != nil {
		return "<" + t.Type().String() + ">"
	}
	return b.String()
}

func summary(n *ir.Node) string {
	parts := make([]string, 0, len(n.Properties))
	for _, p := range n.Properties {
		if p != nil {
			parts = append(parts, Text(p))
		}
	}
	s := n.Identifier + ":"
	if len(parts) > 0 {
		s += " " + strings.Join(parts, ", ")
	}
	if n.HasNodes() {
		s += " {...}"
	}
	return s
}
