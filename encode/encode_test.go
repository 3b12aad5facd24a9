package encode

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/netip"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/serpent-format/go-serpent/gomap"
	"github.com/signadot/serpent-format/go-serpent/native"
	"github.com/signadot/serpent-format/go-serpent/parse"
	"github.com/signadot/serpent-format/go-serpent/registry"
)

type colour int

const (
	red colour = iota
	green
)

func (c colour) String() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	}
	return fmt.Sprintf("colour(%d)", int(c))
}

type point struct {
	X, Y int
}

type tagged struct {
	Name  string `serpent:"name"`
	Note  string `serpent:"note,omitempty"`
	Inner *point `serpent:"inner,omitempty"`
	Skip  int    `serpent:"-"`
}

type linked struct {
	Next *linked
}

func TestEncodeCompact(t *testing.T) {
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	five := 5
	for _, tc := range []struct {
		in   any
		want string
	}{
		{nil, `None`},
		{(*int)(nil), `None`},
		{&five, `5`},
		{"hi", `'hi'`},
		{"it's", `"it's"`},
		{`'"`, `'\'"'`},
		{"tab\there\n", `'tab\there\n'`},
		{[]byte("hi"), `{'data':'aGk=','encoding':'base64'}`},
		{[2]byte{0, 1}, `{'data':'AAE=','encoding':'base64'}`},
		{true, `True`},
		{false, `False`},
		{green, `'green'`},
		{decimal.RequireFromString("3.14"), `'3.14'`},
		{big.NewRat(1, 3), `'1/3'`},
		{42, `42`},
		{int8(-7), `-7`},
		{uint64(math.MaxUint64), `18446744073709551615`},
		{huge, `-123456789012345678901234567890`},
		{1.5, `1.5`},
		{2.0, `2.0`},
		{float32(0.1), `0.1`},
		{1e20, `1e+20`},
		{math.Inf(1), `1e30000`},
		{math.Inf(-1), `-1e30000`},
		{math.NaN(), `{'__class__':'float','value':'nan'}`},
		{1500 * time.Millisecond, `1.5`},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), `'2020-01-02T03:04:05Z'`},
		{time.Date(2020, 1, 2, 3, 4, 5, 5e8, time.UTC), `'2020-01-02T03:04:05.5Z'`},
		{uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6"), `'f81d4fae-7dec-11d0-a765-00a0c91e6bf6'`},
		{native.NewSet(3, 1, 2), `{3,1,2}`},
		{map[int]struct{}{2: {}, 1: {}}, `{1,2}`},
		{native.NewSet(), `()`},
		{map[string]int{"b": 2, "a": 1}, `{'a':1,'b':2}`},
		{map[float64]bool{2.5: true, -1: false}, `{-1.0:False,2.5:True}`},
		{native.DictOf("b", 2, "a", 1), `{'b':2,'a':1}`},
		{native.DictOf(native.Tuple{1, 2}, nil), `{(1,2):None}`},
		{map[string]any{}, `{}`},
		{complex(1, -2), `(1.0-2.0j)`},
		{complex(0, 3), `(0.0+3.0j)`},
		{errors.New("boom"), `{'__class__':'errorString','__exception__':True,'args':('boom',),'attributes':{}}`},
		{native.Tuple{1}, `(1,)`},
		{native.Tuple{}, `()`},
		{native.Tuple{1, "a"}, `(1,'a')`},
		{[]int{1, 2}, `[1,2]`},
		{[]int(nil), `[]`},
		{[2]string{"a", "b"}, `['a','b']`},
		{[]any{nil, []any{}}, `[None,[]]`},
		{point{1, 2}, `{'__class__':'point','X':1,'Y':2}`},
		{&point{3, 4}, `{'__class__':'point','X':3,'Y':4}`},
		{tagged{Name: "n", Skip: 1}, `{'__class__':'tagged','name':'n'}`},
		{tagged{Name: "n", Inner: &point{}}, `{'__class__':'tagged','name':'n','inner':{'__class__':'point','X':0,'Y':0}}`},
		{netip.MustParseAddr("::1"), `'::1'`},
		{linked{}, `{'__class__':'linked','Next':None}`},
	} {
		got := MustString(tc.in)
		if got != tc.want {
			t.Errorf("%#v:\ngot  %s\nwant %s", tc.in, got, tc.want)
		}
	}
}

func TestEncodeOptions(t *testing.T) {
	for _, tc := range []struct {
		in   any
		opts []EncodeOption
		want string
	}{
		{[]byte("a'b"), []EncodeOption{BytesRepr(true)}, `b"a'b"`},
		{[]byte{0, 0x80}, []EncodeOption{BytesRepr(true)}, `b'\x00\x80'`},
		{native.NewSet(1), []EncodeOption{SetLiterals(false)}, `(1,)`},
		{native.NewSet(2, 1), []EncodeOption{SetLiterals(false)}, `(2,1)`},
		{native.NewSet(), []EncodeOption{SetLiterals(false)}, `()`},
		{point{}, []EncodeOption{QualifiedClassNames(true)},
			`{'__class__':'github.com/signadot/serpent-format/go-serpent/encode.point','X':0,'Y':0}`},
		{point{1, 2}, []EncodeOption{WithAttributes(func(v reflect.Value) ([]Attr, error) {
			return []Attr{{Name: "sum", Value: v.Field(0).Int() + v.Field(1).Int()}}, nil
		})}, `{'__class__':'point','sum':3}`},
	} {
		got := MustString(tc.in, tc.opts...)
		if got != tc.want {
			t.Errorf("%#v:\ngot  %s\nwant %s", tc.in, got, tc.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	in := map[string]any{
		"b": []any{1, 2},
		"a": native.Tuple{"x"},
		"c": map[string]any{},
		"d": native.NewSet(3, 1),
		"e": native.DictOf(2, "two", 1, "one"),
	}
	want := `{
  'a': (
    'x',
  ),
  'b': [
    1,
    2
  ],
  'c': {},
  'd': {
    1,
    3
  },
  'e': {
    1: 'one',
    2: 'two'
  }
}`
	got := MustString(in, Indent(true))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// mixed keys keep their order
	got = MustString(native.DictOf("b", 1, 2, 2, "a", 3), Indent(true))
	want = "{\n  'b': 1,\n  2: 2,\n  'a': 3\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode([]int{1}, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "# serpent utf-8 python3.2\n[1]" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	if err := Encode(1, buf, SetLiterals(false)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "# serpent utf-8 python2.6\n1" {
		t.Errorf("got %q", got)
	}
	if d := Dialect(SetLiterals(false)); d.SetLiterals() {
		t.Errorf("got dialect %s", d)
	}
}

func TestEncodeErrors(t *testing.T) {
	deep := any(1)
	for i := 0; i < 10; i++ {
		deep = []any{deep}
	}
	cyc := &linked{}
	cyc.Next = cyc
	for _, tc := range []struct {
		in   any
		opts []EncodeOption
		want error
	}{
		{deep, []EncodeOption{MaxLevel(5)}, ErrDepthExceeded},
		{cyc, nil, ErrDepthExceeded},
		{make(chan int), nil, ErrUnsupportedType},
		{struct{ F func() }{}, nil, ErrUnsupportedType},
		{[]any{1, complex(math.NaN(), 0)}, nil, ErrUnsupportedType},
	} {
		buf := &bytes.Buffer{}
		err := Encode(tc.in, buf, tc.opts...)
		if !errors.Is(err, tc.want) {
			t.Errorf("%T: got %v want %v", tc.in, err, tc.want)
		}
		if buf.Len() != 0 {
			t.Errorf("%T: partial output %q", tc.in, buf.String())
		}
	}
	var ute *UnsupportedTypeError
	if err := Encode(make(chan int), &bytes.Buffer{}); !errors.As(err, &ute) || ute.Type.Kind() != reflect.Chan {
		t.Errorf("got %v", err)
	}
	if err := Encode(deep, &bytes.Buffer{}, MaxLevel(10)); err != nil {
		t.Errorf("depth 10 within MaxLevel(10): %v", err)
	}
}

type stringer interface{ String() string }

func TestEncodeRegistry(t *testing.T) {
	reg := registry.New()
	reg.Register(reflect.TypeFor[stringer](), registry.Funcs{
		To: func(v any) (map[string]any, error) {
			return map[string]any{"s": v.(stringer).String()}, nil
		},
	})
	reg.Register(reflect.TypeFor[point](), registry.Funcs{
		To: func(v any) (map[string]any, error) {
			p := v.(point)
			return map[string]any{"__class__": "Point", "xy": native.Tuple{p.X, p.Y}}, nil
		},
	})
	reg.Register(reflect.TypeFor[linked](), registry.Funcs{
		To: func(any) (map[string]any, error) {
			return nil, errors.New("no links")
		},
	})
	for _, tc := range []struct {
		in   any
		want string
	}{
		{point{1, 2}, `{'__class__':'Point','xy':(1,2)}`},
		{&point{1, 2}, `{'__class__':'Point','xy':(1,2)}`},
		{netip.MustParseAddr("::1"), `{'s':'::1'}`},
		{tagged{Name: "n"}, `{'__class__':'tagged','name':'n'}`},
	} {
		got := MustString(tc.in, WithRegistry(reg))
		if got != tc.want {
			t.Errorf("%#v:\ngot  %s\nwant %s", tc.in, got, tc.want)
		}
	}
	err := Encode(linked{}, &bytes.Buffer{}, WithRegistry(reg))
	if !errors.Is(err, registry.ErrConversion) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeErrorValue(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errors.New("inner"))
	got := MustString(err)
	want := `{'__class__':'wrapError','__exception__':True,'args':('wrapped: inner',),'attributes':{}}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	reg := registry.New()
	reg.Register(reflect.TypeOf(err), registry.Funcs{
		To: func(v any) (map[string]any, error) {
			return map[string]any{"message": v.(error).Error()}, nil
		},
	})
	if got := MustString(err, WithRegistry(reg)); got != `{'message':'wrapped: inner'}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := native.DictOf(
		"name", "serpent",
		"ints", []any{1, int64(1) << 40},
		"t", native.Tuple{1.5, nil, true},
		"s", native.NewSet("a"),
		native.Tuple{1, 2}, complex(1, 2),
		"tc", native.Tuple{complex(1, 2)},
		"esc", "\x00\u2028\U0001F600'\"",
	)
	for _, indent := range []bool{false, true} {
		buf := &bytes.Buffer{}
		if err := Encode(in, buf, Indent(indent), BytesRepr(true)); err != nil {
			t.Fatal(err)
		}
		node, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("indent=%t: %v\n%s", indent, err, buf.String())
		}
		out, err := gomap.FromIR(node)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("indent=%t (-want +got):\n%s", indent, diff)
		}
	}
}

func TestEncodeRoundTripParens(t *testing.T) {
	for _, tc := range []struct {
		in   any
		opts []EncodeOption
		text string
		want any
	}{
		{
			in:   native.Tuple{complex(1, 2)},
			text: `((1.0+2.0j),)`,
			want: native.Tuple{complex(1, 2)},
		},
		{
			in:   native.Tuple{"xj)", 1},
			text: `('xj)',1)`,
			want: native.Tuple{"xj)", 1},
		},
		{
			in:   []any{native.Tuple{1, complex(0, -1)}},
			text: `[(1,(0.0-1.0j))]`,
			want: []any{native.Tuple{1, complex(0, -1)}},
		},
		{
			in:   native.NewSet(complex(1, 2)),
			opts: []EncodeOption{SetLiterals(false)},
			text: `((1.0+2.0j),)`,
			want: native.Tuple{complex(1, 2)},
		},
	} {
		got := MustString(tc.in, tc.opts...)
		if got != tc.text {
			t.Errorf("got %s want %s", got, tc.text)
		}
		node, err := parse.ParseString(got)
		if err != nil {
			t.Fatalf("%s: %v", got, err)
		}
		out, err := gomap.FromIR(node)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, out); diff != "" {
			t.Errorf("%s (-want +got):\n%s", got, diff)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got := MustString(map[string]any{"a": []int{1}}, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escapes in %q", got)
	}
	plain := MustString(map[string]any{"a": []int{1}}, EncodeColors(nil))
	if plain != `{'a':[1]}` {
		t.Errorf("got %q", plain)
	}
}
