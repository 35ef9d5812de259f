package token

import (
	"strconv"
	"strings"

	"github.com/signadot/fbx-format/go-fbx/format"
)

// binary property type codes
const (
	codeBool   = 'C'
	codeShort  = 'Y'
	codeInt    = 'I'
	codeLong   = 'L'
	codeFloat  = 'F'
	codeDouble = 'D'
	codeString = 'S'
	codeRaw    = 'R'
)

type BoolToken struct{ Value bool }

func NewBool(v bool) *BoolToken { return &BoolToken{Value: v} }

func (t *BoolToken) Type() TokenType      { return TValue }
func (t *BoolToken) ValueType() ValueType { return ValueBool }

func (t *BoolToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeBool)
	return w.WriteByte(boolByte(t.Value))
}

func (t *BoolToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	s := "F"
	if t.Value {
		s = "T"
	}
	b.WriteColored(ValueBool, ValueColor, s)
	return lineStart, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

type ShortToken struct{ Value int16 }

func NewShort(v int16) *ShortToken { return &ShortToken{Value: v} }

func (t *ShortToken) Type() TokenType      { return TValue }
func (t *ShortToken) ValueType() ValueType { return ValueShort }

func (t *ShortToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeShort)
	w.WriteInt16(t.Value)
	return nil
}

func (t *ShortToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueShort, ValueColor, strconv.FormatInt(int64(t.Value), 10))
	return lineStart, nil
}

type IntegerToken struct{ Value int32 }

func NewInteger(v int32) *IntegerToken { return &IntegerToken{Value: v} }

func (t *IntegerToken) Type() TokenType      { return TValue }
func (t *IntegerToken) ValueType() ValueType { return ValueInteger }

func (t *IntegerToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeInt)
	w.WriteInt32(t.Value)
	return nil
}

func (t *IntegerToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueInteger, ValueColor, strconv.FormatInt(int64(t.Value), 10))
	return lineStart, nil
}

type LongToken struct{ Value int64 }

func NewLong(v int64) *LongToken { return &LongToken{Value: v} }

func (t *LongToken) Type() TokenType      { return TValue }
func (t *LongToken) ValueType() ValueType { return ValueLong }

func (t *LongToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeLong)
	w.WriteInt64(t.Value)
	return nil
}

func (t *LongToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueLong, ValueColor, strconv.FormatInt(t.Value, 10))
	return lineStart, nil
}

type FloatToken struct{ Value float32 }

func NewFloat(v float32) *FloatToken { return &FloatToken{Value: v} }

func (t *FloatToken) Type() TokenType      { return TValue }
func (t *FloatToken) ValueType() ValueType { return ValueFloat }

func (t *FloatToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeFloat)
	w.WriteFloat32(t.Value)
	return nil
}

func (t *FloatToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueFloat, ValueColor, FormatFloat(float64(t.Value), 32))
	return lineStart, nil
}

type DoubleToken struct{ Value float64 }

func NewDouble(v float64) *DoubleToken { return &DoubleToken{Value: v} }

func (t *DoubleToken) Type() TokenType      { return TValue }
func (t *DoubleToken) ValueType() ValueType { return ValueDouble }

func (t *DoubleToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	w.WriteByte(codeDouble)
	w.WriteFloat64(t.Value)
	return nil
}

func (t *DoubleToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueDouble, ValueColor, FormatFloat(t.Value, 64))
	return lineStart, nil
}

type StringToken struct{ Value string }

func NewString(v string) *StringToken { return &StringToken{Value: v} }

func (t *StringToken) Type() TokenType      { return TString }
func (t *StringToken) ValueType() ValueType { return ValueNone }

func (t *StringToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	if err := checkLen("string", len(t.Value), w.Len()); err != nil {
		return err
	}
	w.WriteByte(codeString)
	w.WriteUint32(uint32(len(t.Value)))
	_, err := w.WriteString(t.Value)
	return err
}

func (t *StringToken) WriteASCII(_ format.Version, b *ASCIIBuffer, _, lineStart int) (int, error) {
	b.WriteColored(ValueNone, StringColor, Quote(t.Value))
	return lineStart, nil
}

// Quote renders s as an ASCII FBX string literal; embedded double quotes
// become &quot;.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "&quot;") + `"`
}

// IdentifierToken is a bare word such as a node name. It is structural and
// has no wire form of its own.
type IdentifierToken struct{ Value string }

func NewIdentifier(v string) *IdentifierToken { return &IdentifierToken{Value: v} }

func (t *IdentifierToken) Type() TokenType      { return TIdentifier }
func (t *IdentifierToken) ValueType() ValueType { return ValueNone }

func (t *IdentifierToken) WriteBinary(format.Version, *BinaryWriter) error {
	return notImplemented(t)
}

func (t *IdentifierToken) WriteASCII(_ format.Version, _ *ASCIIBuffer, _, lineStart int) (int, error) {
	return lineStart, notImplemented(t)
}

type CommentToken struct{ Value string }

func NewComment(v string) *CommentToken { return &CommentToken{Value: v} }

func (t *CommentToken) Type() TokenType      { return TComment }
func (t *CommentToken) ValueType() ValueType { return ValueNone }

func (t *CommentToken) WriteBinary(format.Version, *BinaryWriter) error {
	return notImplemented(t)
}

func (t *CommentToken) WriteASCII(_ format.Version, _ *ASCIIBuffer, _, lineStart int) (int, error) {
	return lineStart, notImplemented(t)
}
