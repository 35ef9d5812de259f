package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/fbx-format/go-fbx/debug"
)

// maxFloatFraction is the longest fraction (or exponent) segment still
// classified as a 32-bit float; longer literals become doubles.
const maxFloatFraction = 6

// ParseNumber classifies the numeric literal lit into the narrowest token
// holding it.
//
// Literals with a '.' are floating point. When the segment following the
// first '.', 'e' or 'E' is longer than 6 characters the literal is a
// Double, otherwise a Float; a Float that overflows 32 bits is promoted to
// a Double. Other literals are parsed as 64-bit integers and become an
// Integer when they fit in 32 bits, a Long otherwise.
//
// Unparsable literals return an error wrapping ErrNumber so callers may
// treat the text as something else.
func ParseNumber(lit string) (Token, error) {
	tok, err := parseNumber(lit)
	if debug.Classify() {
		if err != nil {
			debug.Logf("classify %q: %v\n", lit, err)
		} else {
			debug.Logf("classify %q: %s\n", lit, tok.ValueType())
		}
	}
	return tok, err
}

func parseNumber(lit string) (Token, error) {
	if !isDecimal(lit) {
		return nil, numberErr(lit, errNotDecimal)
	}
	if strings.Contains(lit, ".") {
		segs := splitAny(lit, ".eE")
		if len(segs) > 1 && len(segs[1]) > maxFloatFraction {
			d, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, numberErr(lit, err)
			}
			return NewDouble(d), nil
		}
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				return nil, numberErr(lit, err)
			}
			d, dErr := strconv.ParseFloat(lit, 64)
			if dErr != nil {
				return nil, numberErr(lit, dErr)
			}
			return NewDouble(d), nil
		}
		return NewFloat(float32(f)), nil
	}
	l, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, numberErr(lit, err)
	}
	if l >= math.MinInt32 && l <= math.MaxInt32 {
		return NewInteger(int32(l)), nil
	}
	return NewLong(l), nil
}

var errNotDecimal = errors.New("not a decimal literal")

// isDecimal reports whether lit is a plain decimal literal: an optional
// sign, digits with at most one '.', and an optional exponent. strconv
// alone would also take hex floats, underscores, inf and nan.
func isDecimal(lit string) bool {
	i := 0
	if i < len(lit) && (lit[i] == '+' || lit[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(lit) && isDigit(lit[i]); i++ {
		digits++
	}
	if i < len(lit) && lit[i] == '.' {
		i++
		for ; i < len(lit) && isDigit(lit[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(lit) && (lit[i] == 'e' || lit[i] == 'E') {
		i++
		if i < len(lit) && (lit[i] == '+' || lit[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(lit) && isDigit(lit[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(lit)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func numberErr(lit string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrNumber, lit, err)
}

// splitAny splits s around every byte in seps, keeping empty segments.
func splitAny(s, seps string) []string {
	var res []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(seps, s[i]) >= 0 {
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	return append(res, s[start:])
}
