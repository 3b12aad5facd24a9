package encode

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/serpent-format/go-serpent/native"
)

// shape is the serpent form chosen for a Go value. The constants are in
// priority order: a value takes the first shape it qualifies for.
type shape int

const (
	shapeNone shape = iota
	shapeString
	shapeBytes
	shapeBool
	shapeEnum
	shapeDecimal
	shapeNumber
	shapeTime
	shapeUUID
	shapeSet
	shapeDict
	shapeComplex
	shapeError
	shapeTuple
	shapeList
	shapeStruct
	shapeUnsupported
)

var shapeNames = [...]string{
	shapeNone:        "none",
	shapeString:      "string",
	shapeBytes:       "bytes",
	shapeBool:        "bool",
	shapeEnum:        "enum",
	shapeDecimal:     "decimal",
	shapeNumber:      "number",
	shapeTime:        "time",
	shapeUUID:        "uuid",
	shapeSet:         "set",
	shapeDict:        "dict",
	shapeComplex:     "complex",
	shapeError:       "error",
	shapeTuple:       "tuple",
	shapeList:        "list",
	shapeStruct:      "struct",
	shapeUnsupported: "unsupported",
}

func (s shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

var (
	errorType         = reflect.TypeFor[error]()
	stringerType      = reflect.TypeFor[fmt.Stringer]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

	bigIntType     = reflect.TypeFor[big.Int]()
	bigFloatType   = reflect.TypeFor[big.Float]()
	bigRatType     = reflect.TypeFor[big.Rat]()
	decimalType    = reflect.TypeFor[decimal.Decimal]()
	durationType   = reflect.TypeFor[time.Duration]()
	timeType       = reflect.TypeFor[time.Time]()
	uuidType       = reflect.TypeFor[uuid.UUID]()
	tupleType      = reflect.TypeFor[native.Tuple]()
	nativeSetType  = reflect.TypeFor[native.Set]()
	nativeDictType = reflect.TypeFor[native.Dict]()
)

// deref follows interfaces and pointers down to the value whose shape
// decides the encoding. Pointers are kept where the pointer type itself
// matters: pointers to big numbers, decimals, native containers and
// structs, and any pointer implementing error.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		case reflect.Pointer:
			if v.IsNil() {
				return reflect.Value{}
			}
			t := v.Type()
			et := t.Elem()
			switch {
			case t.Implements(errorType), et.Kind() == reflect.Struct:
				return v
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

// classify gives the shape of v, which must come from deref.
func classify(v reflect.Value) shape {
	if !v.IsValid() {
		return shapeNone
	}
	t := v.Type()
	k := t.Kind()
	bt := t
	if k == reflect.Pointer {
		bt = t.Elem()
	}
	switch {
	case k == reflect.String:
		return shapeString
	case isBytes(t):
		return shapeBytes
	case k == reflect.Bool:
		return shapeBool
	case isInt(k) && t.Name() != "" && t != durationType && t.Implements(stringerType):
		return shapeEnum
	case bt == decimalType, bt == bigFloatType, bt == bigRatType:
		return shapeDecimal
	case isInt(k), isFloat(k), bt == bigIntType:
		return shapeNumber
	case bt == timeType:
		return shapeTime
	case bt == uuidType:
		return shapeUUID
	case bt == nativeSetType, isStructSet(t):
		return shapeSet
	case bt == nativeDictType, k == reflect.Map:
		return shapeDict
	case k == reflect.Complex64, k == reflect.Complex128:
		return shapeComplex
	case t.Implements(errorType):
		return shapeError
	case t == tupleType:
		return shapeTuple
	case k == reflect.Slice, k == reflect.Array:
		return shapeList
	case bt.Kind() == reflect.Struct:
		return shapeStruct
	}
	return shapeUnsupported
}

func isBytes(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	case reflect.Array:
		return t.Name() == "" && t.Elem().Kind() == reflect.Uint8
	}
	return false
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// isStructSet reports whether t is a map[K]struct{}.
func isStructSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}
