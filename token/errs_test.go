package token

import (
	"errors"
	"testing"
)

func TestFormatErr(t *testing.T) {
	bad := errors.New("unexpected end")
	tests := []struct {
		err  *FormatErr
		want string
	}{
		{NewOffsetErr(bad, 27), "unexpected end, near offset 27"},
		{NewLineColErr(bad, 3, 14), "unexpected end, near line 3 column 14"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, ErrFormat) {
			t.Error("expected errors.Is(err, ErrFormat)")
		}
		if !errors.Is(tt.err, bad) {
			t.Error("expected the cause to unwrap")
		}
	}
}
