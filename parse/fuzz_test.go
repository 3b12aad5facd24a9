package parse

import (
	"testing"

	"github.com/signadot/serpent-format/go-serpent/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// single values
		`None`,
		`True`,
		`False`,
		`42`,
		`-7`,
		`3.14`,
		`-1e10`,
		`1e30000`,
		`''`,
		`'hello'`,
		`"it's"`,
		`'\x00ሴ\U0001F600'`,
		`b'\xff'`,
		`3.2j`,
		`(1.5-2e3j)`,
		`((1.0+2.0j),)`,
		`('xj)', 1)`,
		`-0.0j`,

		// containers
		`[]`,
		`[1, 2, 3,]`,
		`()`,
		`(1,)`,
		`(1, 'a', None)`,
		`{}`,
		`{1, 2, 2}`,
		`{'a': 1, 'a': 2}`,
		`{(1, 2): [3, {4}]}`,
		`{'__class__':'float','value':'nan'}`,

		// comments and header
		"# serpent utf-8 python3.2\n[1, # one\n 2]",
		"# serpent utf-8 python2.6\n(1, 2)",

		// broken
		`[1, 2`,
		`(1, 2j)`,
		`{'a' 1}`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := Parse(d)
		if err != nil || node == nil {
			return
		}
		back, err := ParseString(node.Literal())
		if err != nil {
			t.Fatalf("could not parse %q: %v", node.Literal(), err)
		}
		if !ir.Equal(node, back) {
			t.Fatalf("round trip changed %q: %q", node.Literal(), back.Literal())
		}
	})
}
