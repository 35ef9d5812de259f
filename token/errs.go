package token

import (
	"errors"
	"fmt"
)

var (
	ErrNumber = errors.New("number")
	ErrFormat = errors.New("bad fbx data")
)

// FormatErr reports malformed FBX data or tree input. It carries either a
// byte offset (binary input) or a line and column (text input); Line is 0
// for offset errors.
type FormatErr struct {
	Err    error
	Offset int64
	Line   int
	Column int
}

func NewOffsetErr(e error, offset int64) *FormatErr {
	return &FormatErr{Err: e, Offset: offset}
}

func NewLineColErr(e error, line, column int) *FormatErr {
	return &FormatErr{Err: e, Line: line, Column: column}
}

func (e *FormatErr) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s, near offset %d", e.Err.Error(), e.Offset)
	}
	return fmt.Sprintf("%s, near line %d column %d", e.Err.Error(), e.Line, e.Column)
}

func (e *FormatErr) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}
