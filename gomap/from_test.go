package gomap

import (
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/native"
	"github.com/signadot/serpent-format/go-serpent/parse"
	"github.com/signadot/serpent-format/go-serpent/registry"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

var bigCmp = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func TestFromIR(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	for _, tc := range []struct {
		in   string
		want any
	}{
		{`None`, nil},
		{`True`, true},
		{`42`, 42},
		{`-2147483648`, -2147483648},
		{`4294967296`, int64(4294967296)},
		{`123456789012345678901234567890`, huge},
		{`2.5`, 2.5},
		{`(1+2j)`, complex(1, 2)},
		{`'hi'`, "hi"},
		{`b'\x00\xff'`, []byte{0, 0xff}},
		{`[1, 'a']`, []any{1, "a"}},
		{`(1, 2)`, native.Tuple{1, 2}},
		{`()`, native.Tuple{}},
		{`{1, 2, 1}`, native.NewSet(1, 2)},
		{`{}`, native.NewDict()},
		{`{'a': [1], (1, 2): None}`, native.DictOf("a", []any{1}, native.Tuple{1, 2}, nil)},
		{`{'__class__': 'Thing', 'x': 1}`, native.DictOf("__class__", "Thing", "x", 1)},
	} {
		got, err := FromIR(mustParse(t, tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got, bigCmp); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestFromIRBandTypes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want reflect.Kind
	}{
		{`2147483647`, reflect.Int},
		{`2147483648`, reflect.Int64},
		{`-9223372036854775808`, reflect.Int64},
		{`9223372036854775808`, reflect.Pointer},
	} {
		got, err := FromIR(mustParse(t, tc.in))
		if err != nil {
			t.Fatal(err)
		}
		if k := reflect.TypeOf(got).Kind(); k != tc.want {
			t.Errorf("%s: got %s want %s", tc.in, k, tc.want)
		}
	}
}

type point struct {
	X, Y int
}

func TestClassHook(t *testing.T) {
	hook := func(class string, d map[string]any) (any, bool, error) {
		if class != "point" {
			return nil, false, nil
		}
		p := &point{}
		if err := DecodeDict(d, p); err != nil {
			return nil, false, err
		}
		return p, true, nil
	}
	got, err := FromIR(mustParse(t, `[{'__class__': 'point', 'X': 1, 'Y': 2}, {'__class__': 'other'}]`), WithClassHook(hook))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{&point{1, 2}, native.DictOf("__class__", "other")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// non string keys never reach the hook
	called := false
	_, err = FromIR(mustParse(t, `{'__class__': 'point', 1: 2}`), WithClassHook(func(string, map[string]any) (any, bool, error) {
		called = true
		return nil, false, nil
	}))
	if err != nil || called {
		t.Errorf("hook called on non string keys: %v %v", called, err)
	}

	_, err = FromIR(mustParse(t, `{'__class__': 'point', 'X': 'one'}`), WithClassHook(hook))
	if !errors.Is(err, registry.ErrConversion) {
		t.Errorf("expected conversion error, got %v", err)
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Errorf("expected wrapped type error, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	reg := registry.New()
	reg.Register(reflect.TypeFor[point](), registry.Funcs{
		From: func(d map[string]any) (any, bool, error) {
			p := point{}
			if err := DecodeDict(d, &p); err != nil {
				return nil, false, err
			}
			return p, true, nil
		},
	})
	class := registry.ClassName(reflect.TypeFor[point](), true)
	for _, name := range []string{"point", class} {
		got, err := FromIR(ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("__class__"), Val: ir.FromString(name)},
			{Key: ir.FromString("Y"), Val: ir.FromInt(5)},
		}), WithRegistry(reg))
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := got.(point); !ok {
			t.Errorf("%s: got %T", name, got)
		}
	}
}
