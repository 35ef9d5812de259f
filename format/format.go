package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	ASCIIFormat Format = iota
	BinaryFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"a":      ASCIIFormat,
		"ascii":  ASCIIFormat,
		"text":   ASCIIFormat,
		"b":      BinaryFormat,
		"bin":    BinaryFormat,
		"binary": BinaryFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case ASCIIFormat:
		return []byte("ascii"), nil
	case BinaryFormat:
		return []byte("binary"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsASCII() bool  { return f == ASCIIFormat }
func (f Format) IsBinary() bool { return f == BinaryFormat }
