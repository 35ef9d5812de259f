package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is an FBX file format version ordinal, e.g. 7400 for 7.4.
type Version int

const (
	V6_0 Version = 6000
	V6_1 Version = 6100
	V7_0 Version = 7000
	V7_1 Version = 7100
	V7_2 Version = 7200
	V7_3 Version = 7300
	V7_4 Version = 7400
	V7_5 Version = 7500
	V7_7 Version = 7700

	DefaultVersion = V7_4
)

var ErrBadVersion = errors.New("bad version")

func (v Version) Major() int    { return int(v) / 1000 }
func (v Version) Minor() int    { return (int(v) % 1000) / 100 }
func (v Version) Revision() int { return (int(v) % 100) / 10 }

// ArrayBlocks reports whether ASCII arrays are written as `*N { a: ... }`
// blocks rather than bare element lists.
func (v Version) ArrayBlocks() bool { return v >= V7_1 }

// WideRecords reports whether binary node records carry 64-bit offsets
// and lengths.
func (v Version) WideRecords() bool { return v >= V7_5 }

// String returns the dotted form, e.g. "7.4.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Revision())
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(d []byte) error {
	pv, err := ParseVersion(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// ParseVersion accepts either an ordinal ("7400") or a dotted version
// ("7.4", "7.4.0").
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadVersion)
	}
	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1000 {
			return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
		}
		return Version(n), nil
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
	}
	weights := []int{1000, 100, 10}
	res := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || (i > 0 && n > 9) {
			return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
		}
		res += n * weights[i]
	}
	if res < 1000 {
		return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
	}
	return Version(res), nil
}
