package ir

import (
	"strconv"
	"strings"

	"github.com/signadot/serpent-format/go-serpent/token"
)

// Literal returns the compact serpent text of y, without header.
func (y *Node) Literal() string {
	b := &strings.Builder{}
	writeLiteral(b, y)
	return b.String()
}

func writeLiteral(b *strings.Builder, y *Node) {
	if y == nil {
		b.WriteString("None")
		return
	}
	switch y.Type {
	case NoneType:
		b.WriteString("None")
	case BoolType:
		if y.Bool {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case IntType:
		if y.Big != nil {
			b.WriteString(y.Big.String())
		} else {
			b.WriteString(strconv.FormatInt(y.i64(), 10))
		}
	case FloatType:
		b.WriteString(token.FormatFloat(y.Float64))
	case ComplexType:
		b.WriteString(token.FormatComplex(y.Complex))
	case StringType:
		b.WriteString(token.Quote(y.String))
	case BytesType:
		b.WriteString(token.QuoteBytes(y.Bytes))
	case ListType:
		writeSeq(b, "[", "]", y.Values, false)
	case TupleType:
		writeSeq(b, "(", ")", y.Values, len(y.Values) == 1)
	case SetType:
		if len(y.Values) == 0 {
			b.WriteString("()")
			return
		}
		writeSeq(b, "{", "}", y.Values, false)
	case DictType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			writeLiteral(b, f)
			b.WriteByte(':')
			writeLiteral(b, y.Values[i])
		}
		b.WriteByte('}')
	}
}

func writeSeq(b *strings.Builder, open, close string, vs []*Node, trailingComma bool) {
	b.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeLiteral(b, v)
	}
	if trailingComma {
		b.WriteByte(',')
	}
	b.WriteString(close)
}
