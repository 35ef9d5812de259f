package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Arrays   bool
	Nodes    bool
	Classify bool
	Filter   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Arrays = boolEnv("FBX_DEBUG_ARRAYS")
	d.Nodes = boolEnv("FBX_DEBUG_NODES")
	d.Classify = boolEnv("FBX_DEBUG_CLASSIFY")
	d.Filter = boolEnv("FBX_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Arrays reports whether array compression decisions are logged.
func Arrays() bool {
	return d.Arrays
}

// Nodes reports whether binary node record offsets are logged.
func Nodes() bool {
	return d.Nodes
}

func Classify() bool {
	return d.Classify
}

func Filter() bool {
	return d.Filter
}
