package token

import (
	"math"
	"testing"
)

func TestQuote(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"", "''"},
		{"hello", "'hello'"},
		{"tab\tnewline\n.", `'tab\tnewline\n.'`},
		{`back\slash`, `'back\\slash'`},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`it's "x"`, `'it\'s "x"'`},
		{"\x00\x1f\x7f", `'\x00\x1f\x7f'`},
		{"\u00a0\u00ad\u00e9", `'\xa0\xad` + "\u00e9'"},
		{"€", "'€'"},
		{"\u2028", `'\u2028'`},
		{"\u3000", `'\u3000'`},
	} {
		if got := Quote(tc.in); got != tc.out {
			t.Errorf("Quote(%q): got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestQuoteBytes(t *testing.T) {
	for _, tc := range []struct {
		in  []byte
		out string
	}{
		{nil, "b''"},
		{[]byte("abc"), "b'abc'"},
		{[]byte{0, 'a', 0xff, '\n'}, `b'\x00a\xff\n'`},
		{[]byte("'"), `b"'"`},
	} {
		if got := QuoteBytes(tc.in); got != tc.out {
			t.Errorf("QuoteBytes(%v): got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	for _, tc := range []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{1234567, "1234567.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "1e30000"},
		{math.Inf(-1), "-1e30000"},
		{math.NaN(), "{'__class__':'float','value':'nan'}"},
	} {
		if got := FormatFloat(tc.in); got != tc.out {
			t.Errorf("FormatFloat(%v): got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestFormatComplex(t *testing.T) {
	if got := FormatComplex(complex(2.2, 3.3)); got != "(2.2+3.3j)" {
		t.Errorf("got %s", got)
	}
	if got := FormatComplex(complex(0, -3.2)); got != "(0.0-3.2j)" {
		t.Errorf("got %s", got)
	}
	if got := FormatComplex(complex(0, math.Copysign(0, -1))); got != "(0.0-0.0j)" {
		t.Errorf("got %s", got)
	}
}
