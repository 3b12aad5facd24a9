package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	BoolType
	IntType
	FloatType
	ComplexType
	StringType
	BytesType
	ListType
	TupleType
	SetType
	DictType
)

var typeNames = map[Type]string{
	NoneType:    "None",
	BoolType:    "Bool",
	IntType:     "Int",
	FloatType:   "Float",
	ComplexType: "Complex",
	StringType:  "String",
	BytesType:   "Bytes",
	ListType:    "List",
	TupleType:   "Tuple",
	SetType:     "Set",
	DictType:    "Dict",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NoneType,
		BoolType,
		IntType,
		FloatType,
		ComplexType,
		StringType,
		BytesType,
		ListType,
		TupleType,
		SetType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, TupleType, SetType, DictType:
		return false
	default:
		return true
	}
}

// Band is the precision band of an integer.
type Band int

const (
	// NarrowBand integers fit in 32 bits.
	NarrowBand Band = iota
	// WideBand integers fit in 64 bits.
	WideBand
	// ArbitraryBand integers need a big.Int.
	ArbitraryBand
)

func (b Band) String() string {
	switch b {
	case NarrowBand:
		return "narrow"
	case WideBand:
		return "wide"
	case ArbitraryBand:
		return "arbitrary"
	}
	return "<unknown band>"
}
