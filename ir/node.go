package ir

import (
	"math"
	"math/big"
)

type Node struct {
	Type Type

	// Fields holds the keys of a DictType node, Fields[i] being the key
	// of Values[i]. Values holds the elements of every container type.
	Fields []*Node
	Values []*Node

	Bool    bool
	Int64   *int64
	Big     *big.Int
	Float64 float64
	Complex complex128
	String  string
	Bytes   []byte
}

// Band returns the precision band of an IntType node.
func (y *Node) Band() Band {
	if y.Big != nil {
		return ArbitraryBand
	}
	if y.Int64 == nil {
		return NarrowBand
	}
	v := *y.Int64
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return NarrowBand
	}
	return WideBand
}

// BigInt returns the value of an IntType node as a big.Int.
func (y *Node) BigInt() *big.Int {
	if y.Big != nil {
		return new(big.Int).Set(y.Big)
	}
	if y.Int64 != nil {
		return big.NewInt(*y.Int64)
	}
	return new(big.Int)
}

func None() *Node {
	return &Node{Type: NoneType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: &v,
	}
}

// FromBigInt returns an integer node, storing v as an int64 when it
// fits.
func FromBigInt(v *big.Int) *Node {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return &Node{
		Type: IntType,
		Big:  new(big.Int).Set(v),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromComplex(c complex128) *Node {
	return &Node{
		Type:    ComplexType,
		Complex: c,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBytes(v []byte) *Node {
	return &Node{
		Type:  BytesType,
		Bytes: v,
	}
}

// FromSlice returns a list node.
func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ListType,
		Values: ySlice,
	}
}

func FromTuple(ySlice []*Node) *Node {
	return &Node{
		Type:   TupleType,
		Values: ySlice,
	}
}

// FromSet returns a set node holding the distinct elements of ySlice,
// in order of first occurrence.
func FromSet(ySlice []*Node) *Node {
	idx := newIndex(len(ySlice))
	res := &Node{Type: SetType}
	for _, y := range ySlice {
		if idx.find(y) >= 0 {
			continue
		}
		idx.add(y, len(res.Values))
		res.Values = append(res.Values, y)
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals returns a dict node. A key occurring more than once keeps
// the position of its first occurrence and the value of its last.
func FromKeyVals(kvs []KeyVal) *Node {
	idx := newIndex(len(kvs))
	res := &Node{Type: DictType}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = None()
		}
		if j := idx.find(kv.Key); j >= 0 {
			res.Values[j] = kv.Val
			continue
		}
		idx.add(kv.Key, len(res.Fields))
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// FromStringMap returns a dict node with string keys in the order given
// by keys.
func FromStringMap(keys []string, m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, KeyVal{Key: FromString(k), Val: m[k]})
	}
	return FromKeyVals(kvs)
}

// Get returns the value of the string key field in a dict node, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != DictType {
		return nil
	}
	for i, f := range y.Fields {
		if f.Type == StringType && f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// KeyVals returns the entries of a dict node.
func (y *Node) KeyVals() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Visit calls f on y before (isPost false) and after (isPost true) its
// children. Dict keys are visited before their values. If f returns
// false on the pre visit, the children are skipped.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i, yy := range y.Values {
			if y.Type == DictType {
				if err := y.Fields[i].Visit(f); err != nil {
					return err
				}
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := *y
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Big != nil {
		res.Big = new(big.Int).Set(y.Big)
	}
	if y.Bytes != nil {
		res.Bytes = append([]byte(nil), y.Bytes...)
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return &res
}
