package serpent

import (
	"slices"
	"strings"

	"github.com/signadot/serpent-format/go-serpent/encode"
	"github.com/signadot/serpent-format/go-serpent/gomap"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/native"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Canonical returns the indented, sorted form of a node, with no
// header. Equal nodes have equal canonical forms: members of sets and
// dicts the encoder cannot sort keep the order of their native.Key.
func Canonical(y *ir.Node, opts ...encode.EncodeOption) (string, error) {
	v, err := gomap.FromIR(y)
	if err != nil {
		return "", err
	}
	v = keyOrder(v)
	opts = append([]encode.EncodeOption{encode.Indent(true), encode.BytesRepr(true)}, opts...)
	opts = append(opts, encode.EncodeHeader(false))
	buf := &strings.Builder{}
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String() + "\n", nil
}

// Diff compares the canonical forms of from and to line by line. It
// returns the lines prefixed by "-", "+" or " ", and whether there is
// any difference.
func Diff(from, to *ir.Node, opts ...encode.EncodeOption) (string, bool, error) {
	a, err := Canonical(from, opts...)
	if err != nil {
		return "", false, err
	}
	b, err := Canonical(to, opts...)
	if err != nil {
		return "", false, err
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	out := &strings.Builder{}
	changed := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
		}
	}
	return out.String(), changed, nil
}

// keyOrder rebuilds the sets and dicts within v with their members
// ordered by native.Key.
func keyOrder(v any) any {
	switch x := v.(type) {
	case []any:
		return keyOrderSeq(x)
	case native.Tuple:
		return native.Tuple(keyOrderSeq(x))
	case *native.Set:
		items := keyOrderSeq(x.Items())
		slices.SortFunc(items, compareKeys)
		return native.NewSet(items...)
	case *native.Dict:
		keys := x.Keys()
		slices.SortFunc(keys, compareKeys)
		res := native.NewDict()
		for _, k := range keys {
			val, _ := x.Get(k)
			res.Set(keyOrder(k), keyOrder(val))
		}
		return res
	}
	return v
}

func keyOrderSeq(vs []any) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = keyOrder(v)
	}
	return res
}

func compareKeys(a, b any) int {
	return strings.Compare(native.Key(a), native.Key(b))
}
