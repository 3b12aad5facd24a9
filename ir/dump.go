package ir

import (
	"strings"

	"github.com/signadot/serpent-format/go-serpent/token"
)

// Dump returns a multi-line rendering of the tree naming the variant of
// each node. Integers are labelled int, long or bigint by band.
func (y *Node) Dump() string {
	b := &strings.Builder{}
	dump(b, y, 0)
	return b.String()
}

func dump(b *strings.Builder, y *Node, level int) {
	if y == nil {
		b.WriteString("None")
		return
	}
	switch y.Type {
	case NoneType:
		b.WriteString("None")
	case BoolType:
		b.WriteString("bool ")
		b.WriteString(y.Literal())
	case IntType:
		switch y.Band() {
		case NarrowBand:
			b.WriteString("int ")
		case WideBand:
			b.WriteString("long ")
		default:
			b.WriteString("bigint ")
		}
		b.WriteString(y.Literal())
	case FloatType:
		b.WriteString("float ")
		b.WriteString(token.FormatFloat(y.Float64))
	case ComplexType:
		b.WriteString("complex (")
		b.WriteString(token.FormatFloat(real(y.Complex)))
		b.WriteString("r,")
		b.WriteString(token.FormatFloat(imag(y.Complex)))
		b.WriteString("i)")
	case StringType, BytesType:
		b.WriteString(strings.ToLower(y.Type.String()))
		b.WriteByte(' ')
		b.WriteString(y.Literal())
	case DictType:
		b.WriteString("(dict\n")
		for i, f := range y.Fields {
			dumpIndent(b, level+1)
			dump(b, f, level+1)
			b.WriteString(" = ")
			dump(b, y.Values[i], level+1)
			b.WriteString(",\n")
		}
		dumpIndent(b, level)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		b.WriteString(strings.ToLower(y.Type.String()))
		b.WriteByte('\n')
		for _, v := range y.Values {
			dumpIndent(b, level+1)
			dump(b, v, level+1)
			b.WriteString(",\n")
		}
		dumpIndent(b, level)
		b.WriteByte(')')
	}
}

func dumpIndent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString("    ")
	}
}
