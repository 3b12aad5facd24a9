package ir

import (
	"math"
	"math/big"
	"testing"
)

func ints(vs ...int64) []*Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromInt(v)
	}
	return res
}

func TestFromSetDedup(t *testing.T) {
	s := FromSet(ints(1, 2, 2, 3, 3, 3))
	if len(s.Values) != 3 {
		t.Fatalf("expected 3 elements, got %s", s.Literal())
	}
	if !Equal(s, FromSet(ints(3, 2, 1))) {
		t.Errorf("set equality should ignore order")
	}
	tup := FromSet([]*Node{FromTuple(ints(1, 2)), FromTuple(ints(1, 2)), FromTuple(ints(2, 1))})
	if len(tup.Values) != 2 {
		t.Errorf("expected 2 tuples, got %s", tup.Literal())
	}
}

func TestFromKeyValsLastWins(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(9)},
		{Key: FromString("a"), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(3)},
	})
	if len(d.Fields) != 2 {
		t.Fatalf("expected 2 keys, got %s", d.Literal())
	}
	if got := d.Literal(); got != "{'a':3,'b':9}" {
		t.Errorf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	for i, tc := range []struct {
		a, b *Node
		eq   bool
	}{
		{None(), None(), true},
		{FromInt(1), FromFloat(1), false},
		{FromBool(true), FromInt(1), false},
		{FromFloat(nan), FromFloat(nan), true},
		{FromFloat(0), FromFloat(math.Copysign(0, -1)), true},
		{FromComplex(complex(1, nan)), FromComplex(complex(1, nan)), true},
		{FromSlice(ints(1, 2)), FromSlice(ints(2, 1)), false},
		{FromSlice(ints(1, 2)), FromTuple(ints(1, 2)), false},
		{FromBigInt(big.NewInt(7)), FromInt(7), true},
		{&Node{Type: IntType, Big: big.NewInt(7)}, FromInt(7), true},
		{FromBytes([]byte("ab")), FromBytes([]byte("ab")), true},
		{FromBytes([]byte("ab")), FromString("ab"), false},
		{
			FromKeyVals([]KeyVal{{FromInt(1), FromString("x")}, {FromInt(2), FromString("y")}}),
			FromKeyVals([]KeyVal{{FromInt(2), FromString("y")}, {FromInt(1), FromString("x")}}),
			true,
		},
		{
			FromKeyVals([]KeyVal{{FromInt(1), FromString("x")}}),
			FromKeyVals([]KeyVal{{FromInt(1), FromString("y")}}),
			false,
		},
	} {
		if got := Equal(tc.a, tc.b); got != tc.eq {
			t.Errorf("%d: Equal(%s, %s) = %t", i, tc.a.Literal(), tc.b.Literal(), got)
		}
		if tc.eq && tc.a.Hash() != tc.b.Hash() {
			t.Errorf("%d: equal nodes hash differently", i)
		}
	}
}

func TestBand(t *testing.T) {
	big27, _ := new(big.Int).SetString("123456789123456789123456789", 10)
	for _, tc := range []struct {
		n    *Node
		band Band
	}{
		{FromInt(52), NarrowBand},
		{FromInt(math.MinInt32), NarrowBand},
		{FromInt(math.MaxInt32 + 1), WideBand},
		{FromInt(123456789123456789), WideBand},
		{FromBigInt(big27), ArbitraryBand},
	} {
		if got := tc.n.Band(); got != tc.band {
			t.Errorf("%s: got %s want %s", tc.n.Literal(), got, tc.band)
		}
	}
}

func TestLiteral(t *testing.T) {
	for _, tc := range []struct {
		n   *Node
		out string
	}{
		{None(), "None"},
		{FromTuple(ints(1)), "(1,)"},
		{FromTuple(nil), "()"},
		{FromSet(nil), "()"},
		{FromSlice([]*Node{FromString("a"), FromFloat(1.5), FromBool(false)}), "['a',1.5,False]"},
		{FromComplex(complex(2.2, 3.3)), "(2.2+3.3j)"},
		{FromBytes([]byte{0, 'z'}), `b'\x00z'`},
	} {
		if got := tc.n.Literal(); got != tc.out {
			t.Errorf("got %s want %s", got, tc.out)
		}
	}
}

func TestVisit(t *testing.T) {
	d := FromKeyVals([]KeyVal{{FromString("k"), FromSlice(ints(1, 2))}})
	pre := []Type{}
	err := d.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, y.Type)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{DictType, StringType, ListType, IntType, IntType}
	if len(pre) != len(want) {
		t.Fatalf("got %v", pre)
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Errorf("%d: got %s want %s", i, pre[i], want[i])
		}
	}
}

func TestJSON(t *testing.T) {
	d := FromKeyVals([]KeyVal{
		{FromString("b"), FromTuple(ints(1, 2))},
		{FromString("a"), FromFloat(math.Inf(1))},
		{FromInt(3), FromBytes([]byte("hi"))},
	})
	j, err := ToJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(j); got != `{"b":[1,2],"a":"inf","3":"aGk="}` {
		t.Errorf("got %s", got)
	}
	back, err := FromJSON([]byte(`{"z":[1,2.5,null,true],"a":"s","big":123456789123456789123456789}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Literal(); got != "{'z':[1,2.5,None,True],'a':'s','big':123456789123456789123456789}" {
		t.Errorf("got %s", got)
	}
}

func TestDump(t *testing.T) {
	huge, _ := new(big.Int).SetString("99999999999999999999", 10)
	y := FromKeyVals([]KeyVal{
		{FromString("a"), FromSlice([]*Node{FromInt(1), FromInt(1 << 40), FromBigInt(huge)})},
		{FromTuple(ints(1)), FromSet([]*Node{None(), FromBool(true)})},
		{FromString("c"), FromComplex(complex(1, -2))},
		{FromString("d"), FromBytes([]byte("x"))},
		{FromString("e"), FromFloat(0.5)},
	})
	want := `(dict
    string 'a' = (list
        int 1,
        long 1099511627776,
        bigint 99999999999999999999,
    ),
    (tuple
        int 1,
    ) = (set
        None,
        bool True,
    ),
    string 'c' = complex (1.0r,-2.0i),
    string 'd' = bytes b'x',
    string 'e' = float 0.5,
)`
	if got := y.Dump(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
