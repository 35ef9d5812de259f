package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		lit  string
		want Token
	}{
		{"0", NewInteger(0)},
		{"123", NewInteger(123)},
		{"-42", NewInteger(-42)},
		{"+7", NewInteger(7)},
		{"2147483647", NewInteger(2147483647)},
		{"-2147483648", NewInteger(-2147483648)},
		{"2147483648", NewLong(2147483648)},
		{"-2147483649", NewLong(-2147483649)},
		{"9223372036854775807", NewLong(9223372036854775807)},
		{"1.5", NewFloat(1.5)},
		{"-0.25", NewFloat(-0.25)},
		{"1.123456", NewFloat(1.123456)},
		{"1.1234567", NewDouble(1.1234567)},
		{"0.000000001", NewDouble(0.000000001)},
		{".5", NewFloat(0.5)},
		{"1.e5", NewFloat(1e5)},
		{"1.5e10", NewFloat(1.5e10)},
		{"1.5e+0000010", NewFloat(1.5e10)},
		{"3.0e40", NewDouble(3.0e40)},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			got, err := ParseNumber(tt.lit)
			if err != nil {
				t.Fatalf("ParseNumber(%q): %v", tt.lit, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseNumber(%q) mismatch (-want +got):\n%s", tt.lit, diff)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, lit := range []string{
		"", "abc", "1.2.3", "12x", "9223372036854775808", "1e5", "--1", "1.5f",
		"0x1.8p1", "0X1.Fp+0", "0x1_0.8p0", "1_0.5", "1.5p3", "0x10", "inf.0", "1.5e", "1.5e+", ".", "+.e5",
	} {
		t.Run(lit, func(t *testing.T) {
			tok, err := ParseNumber(lit)
			if !errors.Is(err, ErrNumber) {
				t.Fatalf("ParseNumber(%q) = %v, %v; want ErrNumber", lit, tok, err)
			}
			if tok != nil {
				t.Errorf("expected nil token, got %v", tok)
			}
		})
	}
}

func TestSplitAny(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"1.5", []string{"1", "5"}},
		{"1.e5", []string{"1", "", "5"}},
		{".5", []string{"", "5"}},
		{"1.5E-3", []string{"1", "5", "-3"}},
		{"12", []string{"12"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitAny(tt.in, ".eE")); diff != "" {
			t.Errorf("splitAny(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
