package encode

import (
	"math"
	"math/big"
	"reflect"
	"slices"
	"strings"
)

type sortClass int

const (
	unsortable sortClass = iota
	sortStrings
	sortNumbers
	sortBools
)

// sortKey is a value reduced to what ordering needs.
type sortKey struct {
	class sortClass
	s     string
	n     *big.Float
	b     bool
}

func sortKeyOf(v reflect.Value) sortKey {
	v = deref(v)
	if !v.IsValid() {
		return sortKey{}
	}
	switch classify(v) {
	case shapeString:
		return sortKey{class: sortStrings, s: v.String()}
	case shapeBool:
		return sortKey{class: sortBools, b: v.Bool()}
	case shapeNumber:
		n := new(big.Float)
		switch {
		case v.Type() == durationType, v.CanInt():
			n.SetInt64(v.Int())
		case v.CanUint():
			n.SetUint64(v.Uint())
		case v.CanFloat():
			f := v.Float()
			if math.IsNaN(f) {
				return sortKey{}
			}
			n.SetFloat64(f)
		default:
			n.SetInt(bigIntOf(v))
		}
		return sortKey{class: sortNumbers, n: n}
	}
	return sortKey{}
}

func compareKeys(a, b sortKey) int {
	switch a.class {
	case sortStrings:
		return strings.Compare(a.s, b.s)
	case sortNumbers:
		return a.n.Cmp(b.n)
	case sortBools:
		switch {
		case a.b == b.b:
			return 0
		case b.b:
			return -1
		}
		return 1
	}
	return 0
}

// sortOrder returns the sorted permutation of vs, or nil when they are
// not all strings, all numbers or all bools.
func sortOrder(vs []reflect.Value) []int {
	if len(vs) < 2 {
		return nil
	}
	keys := make([]sortKey, len(vs))
	for i, v := range vs {
		keys[i] = sortKeyOf(v)
		if keys[i].class == unsortable || keys[i].class != keys[0].class {
			return nil
		}
	}
	perm := make([]int, len(vs))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		return compareKeys(keys[i], keys[j])
	})
	return perm
}

func sortValues(vs []reflect.Value) []reflect.Value {
	perm := sortOrder(vs)
	if perm == nil {
		return vs
	}
	res := make([]reflect.Value, len(vs))
	for i, p := range perm {
		res[i] = vs[p]
	}
	return res
}

func sortEntries(es []entry) []entry {
	keys := make([]reflect.Value, len(es))
	for i, e := range es {
		keys[i] = e.key
	}
	perm := sortOrder(keys)
	if perm == nil {
		return es
	}
	res := make([]entry, len(es))
	for i, p := range perm {
		res[i] = es[p]
	}
	return res
}
