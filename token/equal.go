package token

import "math"

// Equal reports whether a and b are the same token.
//
// Scalars of the same concrete kind compare payloads: floats and doubles
// bitwise, text by content. Tokens of different concrete kinds never
// compare payloads. Remaining tokens are equal when both their token and
// value types match, except arrays, which are never equal to anything,
// themselves included.
func Equal(a, b Token) bool {
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *BoolToken:
		if y, ok := b.(*BoolToken); ok {
			return x.Value == y.Value
		}
	case *ShortToken:
		if y, ok := b.(*ShortToken); ok {
			return x.Value == y.Value
		}
	case *IntegerToken:
		if y, ok := b.(*IntegerToken); ok {
			return x.Value == y.Value
		}
	case *LongToken:
		if y, ok := b.(*LongToken); ok {
			return x.Value == y.Value
		}
	case *FloatToken:
		if y, ok := b.(*FloatToken); ok {
			return math.Float32bits(x.Value) == math.Float32bits(y.Value)
		}
	case *DoubleToken:
		if y, ok := b.(*DoubleToken); ok {
			return math.Float64bits(x.Value) == math.Float64bits(y.Value)
		}
	case *StringToken:
		if y, ok := b.(*StringToken); ok {
			return x.Value == y.Value
		}
	case *CommentToken:
		if y, ok := b.(*CommentToken); ok {
			return x.Value == y.Value
		}
	case *IdentifierToken:
		if y, ok := b.(*IdentifierToken); ok {
			return x.Value == y.Value
		}
	}
	return a.Type() == b.Type() && a.Type() != TValueArray && a.ValueType() == b.ValueType()
}
