package token

import (
	"strconv"
	"strings"

	"github.com/signadot/fbx-format/go-fbx/format"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	IdentifierColor
	ValueColor
	StringColor
	SepColor
	ArrayColor
)

// ColorFunc decorates visible text. It must only add zero width content
// such as terminal escapes.
type ColorFunc func(ValueType, ColorAttr, string) string

// ASCIIBuffer accumulates ASCII FBX output. Len counts visible bytes only,
// so line lengths and line starts are unaffected by colors.
type ASCIIBuffer struct {
	sb  strings.Builder
	n   int
	cfg Config

	Color ColorFunc
}

func NewASCIIBuffer(cfg Config) *ASCIIBuffer {
	return &ASCIIBuffer{cfg: cfg}
}

func (b *ASCIIBuffer) Config() Config { return b.cfg }

func (b *ASCIIBuffer) Len() int { return b.n }

func (b *ASCIIBuffer) String() string { return b.sb.String() }

func (b *ASCIIBuffer) WriteString(s string) (int, error) {
	b.n += len(s)
	return b.sb.WriteString(s)
}

func (b *ASCIIBuffer) WriteByte(c byte) error {
	b.n++
	return b.sb.WriteByte(c)
}

// WriteColored writes s, decorated when a color function is set.
func (b *ASCIIBuffer) WriteColored(vt ValueType, attr ColorAttr, s string) {
	b.n += len(s)
	if b.Color != nil {
		s = b.Color(vt, attr, s)
	}
	b.sb.WriteString(s)
}

func (b *ASCIIBuffer) Indent(level int) {
	for range level {
		b.WriteByte('\t')
	}
}

// NewLine writes a newline and returns the start offset of the new line.
func (b *ASCIIBuffer) NewLine() int {
	b.WriteByte('\n')
	return b.n
}

// writeASCIIArray writes n elements rendered by item. From 7.1 on the
// elements sit in a `*n {` block on an `a:` line one level deeper than the
// owning node; earlier versions write the bare list. The list wraps before
// any element after the first whose text would bring the current line to
// MaxLineLength.
func writeASCIIArray(v format.Version, b *ASCIIBuffer, vt ValueType, n, indent, lineStart int, item func(i int) string) int {
	if v.ArrayBlocks() {
		b.WriteColored(vt, ArrayColor, "*"+strconv.Itoa(n))
		b.WriteString(" {")
		lineStart = b.NewLine()
		b.Indent(indent + 1)
		b.WriteColored(vt, ArrayColor, "a:")
		b.WriteByte(' ')
	}
	maxLen := b.cfg.MaxLineLength
	for i := range n {
		s := item(i)
		if i > 0 {
			b.WriteColored(vt, SepColor, ",")
			if b.Len()-lineStart+len(s) >= maxLen {
				lineStart = b.NewLine()
			}
		}
		b.WriteColored(vt, ValueColor, s)
	}
	if v.ArrayBlocks() {
		b.WriteByte('\n')
		b.Indent(indent)
		b.WriteByte('}')
	}
	return lineStart
}

// FormatFloat renders v with the fewest digits that read back as the same
// value at the given bit size. The text always holds a '.', so that
// ParseNumber classifies it as a floating token again.
func FormatFloat(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'g', -1, bitSize)
	if strings.ContainsAny(s, ".nN") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
