package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Apply  bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("RIBS_DEBUG_DECODE")
	d.Apply = boolEnv("RIBS_DEBUG_APPLY")
	d.Filter = boolEnv("RIBS_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Apply() bool {
	return d.Apply
}
func Filter() bool {
	return d.Filter
}

// Logf writes a debug line to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
