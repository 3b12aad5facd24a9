package native

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Key returns a string which is equal for structurally equal values.
// Integers of any width with the same value share a key, floats compare
// by value with all NaNs equal, and sets and dicts ignore order.
func Key(v any) string {
	b := &strings.Builder{}
	writeKey(b, v)
	return b.String()
}

func writeKey(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("N")
	case bool:
		if x {
			b.WriteString("B1")
		} else {
			b.WriteString("B0")
		}
	case int:
		writeInt(b, int64(x))
	case int8:
		writeInt(b, int64(x))
	case int16:
		writeInt(b, int64(x))
	case int32:
		writeInt(b, int64(x))
	case int64:
		writeInt(b, x)
	case uint:
		writeBig(b, new(big.Int).SetUint64(uint64(x)))
	case uint8:
		writeInt(b, int64(x))
	case uint16:
		writeInt(b, int64(x))
	case uint32:
		writeInt(b, int64(x))
	case uint64:
		writeBig(b, new(big.Int).SetUint64(x))
	case *big.Int:
		if x == nil {
			b.WriteString("N")
			return
		}
		writeBig(b, x)
	case float32:
		writeFloat(b, float64(x))
	case float64:
		writeFloat(b, x)
	case complex64:
		b.WriteString("C")
		writeFloat(b, float64(real(x)))
		writeFloat(b, float64(imag(x)))
	case complex128:
		b.WriteString("C")
		writeFloat(b, real(x))
		writeFloat(b, imag(x))
	case string:
		b.WriteString("S")
		b.WriteString(strconv.Quote(x))
	case []byte:
		b.WriteString("Y")
		b.WriteString(strconv.Quote(string(x)))
	case []any:
		writeSeqKey(b, "L", x)
	case Tuple:
		writeSeqKey(b, "T", x)
	case *Set:
		if x == nil {
			b.WriteString("N")
			return
		}
		keys := make([]string, 0, x.Len())
		for _, it := range x.items {
			keys = append(keys, Key(it))
		}
		slices.Sort(keys)
		b.WriteString("E{")
		b.WriteString(strings.Join(keys, ","))
		b.WriteString("}")
	case *Dict:
		if x == nil {
			b.WriteString("N")
			return
		}
		pairs := make([]string, 0, x.Len())
		for i, k := range x.keys {
			pairs = append(pairs, Key(k)+":"+Key(x.vals[i]))
		}
		slices.Sort(pairs)
		b.WriteString("D{")
		b.WriteString(strings.Join(pairs, ","))
		b.WriteString("}")
	case map[string]any:
		pairs := make([]string, 0, len(x))
		for k, val := range x {
			pairs = append(pairs, Key(k)+":"+Key(val))
		}
		slices.Sort(pairs)
		b.WriteString("D{")
		b.WriteString(strings.Join(pairs, ","))
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "O%T:%v", v, v)
	}
}

func writeInt(b *strings.Builder, v int64) {
	b.WriteString("I")
	b.WriteString(strconv.FormatInt(v, 10))
}

func writeBig(b *strings.Builder, v *big.Int) {
	b.WriteString("I")
	b.WriteString(v.String())
}

func writeFloat(b *strings.Builder, f float64) {
	b.WriteString("F")
	switch {
	case math.IsNaN(f):
		b.WriteString("nan")
	case f == 0:
		b.WriteString("0")
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

func writeSeqKey(b *strings.Builder, tag string, vs []any) {
	b.WriteString(tag)
	b.WriteString("[")
	for i, v := range vs {
		if i > 0 {
			b.WriteString(",")
		}
		writeKey(b, v)
	}
	b.WriteString("]")
}
