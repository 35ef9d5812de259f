package token

import (
	"errors"
	"fmt"

	"github.com/signadot/fbx-format/go-fbx/format"
)

type TokenType int

const (
	TEndOfStream TokenType = iota
	TComment
	TWhiteSpace
	TOpenBrace
	TCloseBrace
	TComma
	TAsterisk
	TIdentifier
	TString
	TValue
	TValueArray
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEndOfStream: "TEndOfStream",
		TComment:     "TComment",
		TWhiteSpace:  "TWhiteSpace",
		TOpenBrace:   "TOpenBrace",
		TCloseBrace:  "TCloseBrace",
		TComma:       "TComma",
		TAsterisk:    "TAsterisk",
		TIdentifier:  "TIdentifier",
		TString:      "TString",
		TValue:       "TValue",
		TValueArray:  "TValueArray",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

type ValueType int

const (
	ValueNone ValueType = iota
	ValueBool
	ValueByte // arrays only
	ValueShort
	ValueInteger
	ValueLong
	ValueFloat
	ValueDouble
)

func (v ValueType) String() string {
	s, ok := map[ValueType]string{
		ValueNone:    "None",
		ValueBool:    "Bool",
		ValueByte:    "Byte",
		ValueShort:   "Short",
		ValueInteger: "Integer",
		ValueLong:    "Long",
		ValueFloat:   "Float",
		ValueDouble:  "Double",
	}[v]
	if ok {
		return s
	}
	return "<unknown value type>"
}

// Width is the byte width of one element of this value type in the
// binary format, 0 for ValueNone.
func (v ValueType) Width() int {
	switch v {
	case ValueBool, ValueByte:
		return 1
	case ValueShort:
		return 2
	case ValueInteger, ValueFloat:
		return 4
	case ValueLong, ValueDouble:
		return 8
	default:
		return 0
	}
}

// Token is a value or structural token. Value tokens (scalars and arrays)
// write themselves in both wire formats; structural tokens return
// ErrNotImplemented.
type Token interface {
	Type() TokenType
	ValueType() ValueType

	WriteBinary(v format.Version, w *BinaryWriter) error

	// WriteASCII appends the token's text to b. indent is the indentation
	// level of the node owning the token and lineStart the offset in b
	// where the current line starts. It returns the possibly advanced
	// line start.
	WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error)
}

var ErrNotImplemented = errors.New("not implemented")

// Marker is a payload free structural token: a brace, comma, asterisk,
// whitespace run or end of stream.
type Marker struct {
	typ TokenType
}

func NewMarker(t TokenType) *Marker { return &Marker{typ: t} }

func OpenBrace() *Marker   { return NewMarker(TOpenBrace) }
func CloseBrace() *Marker  { return NewMarker(TCloseBrace) }
func Comma() *Marker       { return NewMarker(TComma) }
func Asterisk() *Marker    { return NewMarker(TAsterisk) }
func WhiteSpace() *Marker  { return NewMarker(TWhiteSpace) }
func EndOfStream() *Marker { return NewMarker(TEndOfStream) }

func (m *Marker) Type() TokenType      { return m.typ }
func (m *Marker) ValueType() ValueType { return ValueNone }

func (m *Marker) WriteBinary(format.Version, *BinaryWriter) error {
	return notImplemented(m)
}

func (m *Marker) WriteASCII(_ format.Version, _ *ASCIIBuffer, _, lineStart int) (int, error) {
	return lineStart, notImplemented(m)
}

func notImplemented(t Token) error {
	return fmt.Errorf("%w: writing %s tokens", ErrNotImplemented, t.Type())
}
