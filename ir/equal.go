package ir

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal. Lists and
// tuples compare element by element, sets and dicts compare as sets of
// elements and keys. Integers compare by value whatever their band,
// and NaN is equal to NaN.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NoneType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		if a.Big == nil && b.Big == nil {
			return a.i64() == b.i64()
		}
		return a.BigInt().Cmp(b.BigInt()) == 0
	case FloatType:
		return floatEqual(a.Float64, b.Float64)
	case ComplexType:
		return floatEqual(real(a.Complex), real(b.Complex)) &&
			floatEqual(imag(a.Complex), imag(b.Complex))
	case StringType:
		return a.String == b.String
	case BytesType:
		return bytes.Equal(a.Bytes, b.Bytes)
	case ListType, TupleType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case SetType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		idx := newIndex(len(b.Values))
		for i, v := range b.Values {
			idx.add(v, i)
		}
		for _, v := range a.Values {
			if idx.find(v) < 0 {
				return false
			}
		}
		return true
	case DictType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		idx := newIndex(len(b.Fields))
		for i, f := range b.Fields {
			idx.add(f, i)
		}
		for i, f := range a.Fields {
			j := idx.find(f)
			if j < 0 || !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	}
	return false
}

func (y *Node) i64() int64 {
	if y.Int64 == nil {
		return 0
	}
	return *y.Int64
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
