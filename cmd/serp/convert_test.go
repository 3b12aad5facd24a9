package main

import (
	"testing"

	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/parse"
)

func TestLossy(t *testing.T) {
	for _, tc := range []struct {
		in    string
		want  ir.Type
		lossy bool
	}{
		{in: `{'a': [1, 2.5, None, True]}`},
		{in: `{'a': (1, 2)}`, want: ir.TupleType, lossy: true},
		{in: `[{1, 2}]`, want: ir.SetType, lossy: true},
		{in: `{(1, 2): 3}`, want: ir.TupleType, lossy: true},
		{in: `b'x'`, want: ir.BytesType, lossy: true},
		{in: `[3j]`, want: ir.ComplexType, lossy: true},
	} {
		y, err := parse.ParseString(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		got, ok := lossy(y)
		if ok != tc.lossy || got != tc.want {
			t.Errorf("%s: got %s %t, want %s %t", tc.in, got, ok, tc.want, tc.lossy)
		}
	}
}
