package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out Format
	}{
		{"s", SerpentFormat},
		{"serpent", SerpentFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	} {
		f, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if f != tc.out {
			t.Errorf("%q: got %s want %s", tc.in, f, tc.out)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestHeader(t *testing.T) {
	if got := Python32.Header(); got != "# serpent utf-8 python3.2\n" {
		t.Errorf("got %q", got)
	}
	if got := DialectFor(false).Header(); got != "# serpent utf-8 python2.6\n" {
		t.Errorf("got %q", got)
	}
	d, ok := ParseHeader([]byte("# serpent utf-8 python2.6\n[1]"))
	if !ok || d != Python26 {
		t.Errorf("got %v %v", d, ok)
	}
	if _, ok := ParseHeader([]byte("[1]")); ok {
		t.Errorf("expected no header")
	}
	if _, ok := ParseHeader([]byte("# serpent utf-8 python9\n")); ok {
		t.Errorf("expected bad dialect to be rejected")
	}
}
