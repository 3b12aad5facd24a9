package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"testing"
)

type point struct{ X, Y int }

type named interface{ Name() string }

type dog struct{}

func (dog) Name() string { return "dog" }

func constConv(tag string) Converter {
	return Funcs{
		To: func(any) (map[string]any, error) {
			return map[string]any{"tag": tag}, nil
		},
	}
}

func tagOf(t *testing.T, c Converter) string {
	t.Helper()
	d, err := c.ToDict(nil)
	if err != nil {
		t.Fatal(err)
	}
	return d["tag"].(string)
}

func TestLookup(t *testing.T) {
	r := New()
	r.Register(reflect.TypeFor[named](), constConv("iface"))
	r.Register(reflect.TypeFor[point](), constConv("point"))
	r.Register(reflect.TypeFor[dog](), constConv("dog"))

	for _, tc := range []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeFor[point](), "point"},
		{reflect.TypeFor[dog](), "dog"},
		{reflect.TypeFor[*dog](), "iface"},
	} {
		c, ok := r.Lookup(tc.typ)
		if !ok {
			t.Errorf("%s: not found", tc.typ)
			continue
		}
		if got := tagOf(t, c); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.typ, got, tc.want)
		}
	}
	if _, ok := r.Lookup(reflect.TypeFor[*point]()); ok {
		t.Errorf("*point should not match point")
	}
	if _, ok := r.Lookup(reflect.TypeFor[string]()); ok {
		t.Errorf("string should not match")
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := New()
	r.Register(reflect.TypeFor[point](), constConv("a"))
	r.Register(reflect.TypeFor[point](), constConv("b"))
	if r.Len() != 1 {
		t.Fatalf("got %d registrations", r.Len())
	}
	c, _ := r.Lookup(reflect.TypeFor[point]())
	if got := tagOf(t, c); got != "b" {
		t.Errorf("got %q", got)
	}
}

func TestLookupClass(t *testing.T) {
	r := New()
	r.Register(reflect.TypeFor[point](), constConv("point"))
	qual := ClassName(reflect.TypeFor[point](), true)
	if qual != reflect.TypeFor[point]().PkgPath()+".point" {
		t.Errorf("qualified name %q", qual)
	}
	for _, name := range []string{"point", qual} {
		if _, ok := r.LookupClass(name); !ok {
			t.Errorf("%q not found", name)
		}
	}
	if _, ok := r.LookupClass("Point"); ok {
		t.Errorf("class names are case sensitive")
	}
}

func TestClassName(t *testing.T) {
	for _, tc := range []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeFor[*point](), "point"},
		{reflect.TypeFor[fs.PathError](), "PathError"},
		{reflect.TypeFor[[]int](), "[]int"},
		{nil, "NoneType"},
	} {
		if got := ClassName(tc.typ, false); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
	if got := ClassName(reflect.TypeFor[fs.PathError](), true); got != "io/fs.PathError" {
		t.Errorf("got %q", got)
	}
}

func TestConversionError(t *testing.T) {
	cause := fmt.Errorf("bad field")
	err := error(&ConversionError{Class: "point", Err: cause})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("not ErrConversion")
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause lost")
	}
	want := `class conversion error for "point": bad field`
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	_, err = Funcs{}.ToDict(point{})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("missing ToDict: got %v", err)
	}
	_, ok, err := Funcs{}.FromDict(nil)
	if ok || err != nil {
		t.Errorf("missing FromDict: got %v %v", ok, err)
	}
}
