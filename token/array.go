package token

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/signadot/fbx-format/go-fbx/format"
)

// binary array type codes
const (
	codeIntArray    = 'i'
	codeLongArray   = 'l'
	codeFloatArray  = 'f'
	codeDoubleArray = 'd'
	codeBoolArray   = 'b'
)

// ByteArrayToken holds raw bytes. In binary files it is an uncompressed
// 'R' property.
type ByteArrayToken struct{ Values []byte }

func NewByteArray(v []byte) *ByteArrayToken { return &ByteArrayToken{Values: v} }

func (t *ByteArrayToken) Type() TokenType      { return TValueArray }
func (t *ByteArrayToken) ValueType() ValueType { return ValueByte }

func (t *ByteArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	if err := checkLen("raw bytes", len(t.Values), w.Len()); err != nil {
		return err
	}
	w.WriteByte(codeRaw)
	w.WriteUint32(uint32(len(t.Values)))
	_, err := w.Write(t.Values)
	return err
}

func (t *ByteArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueByte, len(t.Values), indent, lineStart, func(i int) string {
		return strconv.FormatUint(uint64(t.Values[i]), 10)
	}), nil
}

type IntegerArrayToken struct{ Values []int32 }

func NewIntegerArray(v []int32) *IntegerArrayToken { return &IntegerArrayToken{Values: v} }

func (t *IntegerArrayToken) Type() TokenType      { return TValueArray }
func (t *IntegerArrayToken) ValueType() ValueType { return ValueInteger }

func (t *IntegerArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	return writeBinaryArray(w, codeIntArray, ValueInteger, t.Values, func(d []byte, v int32) []byte {
		return binary.LittleEndian.AppendUint32(d, uint32(v))
	})
}

func (t *IntegerArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueInteger, len(t.Values), indent, lineStart, func(i int) string {
		return strconv.FormatInt(int64(t.Values[i]), 10)
	}), nil
}

type LongArrayToken struct{ Values []int64 }

func NewLongArray(v []int64) *LongArrayToken { return &LongArrayToken{Values: v} }

func (t *LongArrayToken) Type() TokenType      { return TValueArray }
func (t *LongArrayToken) ValueType() ValueType { return ValueLong }

func (t *LongArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	return writeBinaryArray(w, codeLongArray, ValueLong, t.Values, func(d []byte, v int64) []byte {
		return binary.LittleEndian.AppendUint64(d, uint64(v))
	})
}

func (t *LongArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueLong, len(t.Values), indent, lineStart, func(i int) string {
		return strconv.FormatInt(t.Values[i], 10)
	}), nil
}

type FloatArrayToken struct{ Values []float32 }

func NewFloatArray(v []float32) *FloatArrayToken { return &FloatArrayToken{Values: v} }

func (t *FloatArrayToken) Type() TokenType      { return TValueArray }
func (t *FloatArrayToken) ValueType() ValueType { return ValueFloat }

func (t *FloatArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	return writeBinaryArray(w, codeFloatArray, ValueFloat, t.Values, func(d []byte, v float32) []byte {
		return binary.LittleEndian.AppendUint32(d, math.Float32bits(v))
	})
}

func (t *FloatArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueFloat, len(t.Values), indent, lineStart, func(i int) string {
		return FormatFloat(float64(t.Values[i]), 32)
	}), nil
}

type DoubleArrayToken struct{ Values []float64 }

func NewDoubleArray(v []float64) *DoubleArrayToken { return &DoubleArrayToken{Values: v} }

func (t *DoubleArrayToken) Type() TokenType      { return TValueArray }
func (t *DoubleArrayToken) ValueType() ValueType { return ValueDouble }

func (t *DoubleArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	return writeBinaryArray(w, codeDoubleArray, ValueDouble, t.Values, func(d []byte, v float64) []byte {
		return binary.LittleEndian.AppendUint64(d, math.Float64bits(v))
	})
}

func (t *DoubleArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueDouble, len(t.Values), indent, lineStart, func(i int) string {
		return FormatFloat(t.Values[i], 64)
	}), nil
}

type BoolArrayToken struct{ Values []bool }

func NewBoolArray(v []bool) *BoolArrayToken { return &BoolArrayToken{Values: v} }

func (t *BoolArrayToken) Type() TokenType      { return TValueArray }
func (t *BoolArrayToken) ValueType() ValueType { return ValueBool }

func (t *BoolArrayToken) WriteBinary(_ format.Version, w *BinaryWriter) error {
	return writeBinaryArray(w, codeBoolArray, ValueBool, t.Values, func(d []byte, v bool) []byte {
		return append(d, boolByte(v))
	})
}

func (t *BoolArrayToken) WriteASCII(v format.Version, b *ASCIIBuffer, indent, lineStart int) (int, error) {
	return writeASCIIArray(v, b, ValueBool, len(t.Values), indent, lineStart, func(i int) string {
		return strconv.Itoa(int(boolByte(t.Values[i])))
	}), nil
}

func writeBinaryArray[T any](w *BinaryWriter, code byte, vt ValueType, vals []T, appendElem func([]byte, T) []byte) error {
	n := len(vals)
	if err := checkLen("array count", n, w.Len()); err != nil {
		return err
	}
	size := n * vt.Width()
	w.WriteByte(code)
	w.WriteUint32(uint32(n))
	return w.WriteArray(size, func(iw io.Writer) error {
		raw := make([]byte, 0, size)
		for _, v := range vals {
			raw = appendElem(raw, v)
		}
		_, err := iw.Write(raw)
		return err
	})
}
