package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal: sets
// and dicts hash independently of element order.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))
	var b [8]byte

	switch n.Type {
	case NoneType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		switch {
		case n.Int64 != nil:
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		case n.Big != nil && n.Big.IsInt64():
			binary.LittleEndian.PutUint64(b[:], uint64(n.Big.Int64()))
			h.Write(b[:])
		case n.Big != nil:
			h.WriteByte(byte(n.Big.Sign() + 1))
			h.Write(n.Big.Bytes())
		default:
			h.Write(b[:])
		}
	case FloatType:
		writeFloat(&h, n.Float64)
	case ComplexType:
		writeFloat(&h, real(n.Complex))
		writeFloat(&h, imag(n.Complex))
	case StringType:
		h.WriteString(n.String)
	case BytesType:
		h.Write(n.Bytes)
	case ListType, TupleType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case SetType:
		var sum uint64
		for _, v := range n.Values {
			sum += v.Hash()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	case DictType:
		var sum uint64
		for i, f := range n.Fields {
			sum += pairHash(f.Hash(), n.Values[i].Hash())
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}

func pairHash(k, v uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	h.Write(b[:])
	return h.Sum64()
}

// writeFloat hashes f so that values Equal treats as equal hash alike:
// all NaNs and both zeros.
func writeFloat(h *maphash.Hash, f float64) {
	var b [8]byte
	switch {
	case math.IsNaN(f):
		f = math.NaN()
	case f == 0:
		f = 0
	}
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	h.Write(b[:])
}

// index finds nodes by structural equality.
type index struct {
	m map[uint64][]indexEntry
}

type indexEntry struct {
	n *Node
	i int
}

func newIndex(n int) *index {
	return &index{m: make(map[uint64][]indexEntry, n)}
}

func (x *index) find(y *Node) int {
	for _, e := range x.m[y.Hash()] {
		if Equal(e.n, y) {
			return e.i
		}
	}
	return -1
}

func (x *index) add(y *Node, i int) {
	h := y.Hash()
	x.m[h] = append(x.m[h], indexEntry{n: y, i: i})
}
