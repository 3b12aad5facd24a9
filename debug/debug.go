package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Reduce bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SERPENT_DEBUG_PARSE")
	d.Encode = boolEnv("SERPENT_DEBUG_ENCODE")
	d.Reduce = boolEnv("SERPENT_DEBUG_REDUCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Reduce() bool {
	return d.Reduce
}
