package gomap

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/signadot/serpent-format/go-serpent/native"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// DecodeDict fills the struct pointed to by out from a reduced dict,
// matching keys to fields as StructFields names them. Keys without a
// field, such as __class__, are ignored.
//
// Values convert as reduction produces them: integers of any band fit
// integer and float fields when in range, []any and native.Tuple fill
// slices and arrays, *native.Set fills slices and map[K]struct{},
// nested dicts fill structs and maps, and strings fill
// encoding.TextUnmarshaler fields.
func DecodeDict(d map[string]any, out any) error {
	val := reflect.ValueOf(out)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return &UnmarshalError{Message: fmt.Sprintf("destination must point to a struct, not %s", elem.Type())}
	}
	return decodeStruct(d, elem, "")
}

func decodeStruct(d map[string]any, val reflect.Value, path string) error {
	for _, fi := range StructFields(val.Type()) {
		v, ok := d[fi.Name]
		if !ok {
			continue
		}
		fv, err := settableField(val, fi.Index)
		if err != nil {
			return &UnmarshalError{FieldPath: joinPath(path, fi.Name), Message: err.Error()}
		}
		if !fv.CanSet() {
			return &UnmarshalError{FieldPath: joinPath(path, fi.Name), Message: "field cannot be set"}
		}
		if err := assign(fv, v, joinPath(path, fi.Name)); err != nil {
			return err
		}
	}
	return nil
}

func settableField(v reflect.Value, index []int) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("cannot set embedded pointer to unexported %s", v.Type().Elem())
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, nil
}

func assign(dst reflect.Value, v any, path string) error {
	mismatch := func() error {
		return &TypeError{FieldPath: path, Expected: dst.Type().String(), Actual: fmt.Sprintf("%T", v)}
	}
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	src := reflect.ValueOf(v)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}
	if s, ok := v.(string); ok && reflect.PointerTo(dst.Type()).Implements(textUnmarshalerType) {
		if err := dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return &UnmarshalError{FieldPath: path, Message: "cannot unmarshal text", Err: err}
		}
		return nil
	}

	switch dst.Kind() {
	case reflect.Pointer:
		nv := reflect.New(dst.Type().Elem())
		if err := assign(nv.Elem(), v, path); err != nil {
			return err
		}
		dst.Set(nv)
		return nil
	case reflect.Interface:
		if src.Type().Implements(dst.Type()) {
			dst.Set(src)
			return nil
		}
		return mismatch()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b, ok := toBig(v)
		if !ok {
			return mismatch()
		}
		if !b.IsInt64() || dst.OverflowInt(b.Int64()) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", b, dst.Type())}
		}
		dst.SetInt(b.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b, ok := toBig(v)
		if !ok {
			return mismatch()
		}
		if !b.IsUint64() || dst.OverflowUint(b.Uint64()) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", b, dst.Type())}
		}
		dst.SetUint(b.Uint64())
		return nil
	case reflect.Float32, reflect.Float64:
		var f float64
		switch x := v.(type) {
		case float64:
			f = x
		default:
			b, ok := toBig(v)
			if !ok {
				return mismatch()
			}
			f, _ = new(big.Float).SetInt(b).Float64()
		}
		if dst.Kind() == reflect.Float32 && !math.IsInf(f, 0) && !math.IsNaN(f) && dst.OverflowFloat(f) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%v overflows %s", f, dst.Type())}
		}
		dst.SetFloat(f)
		return nil
	case reflect.Complex64, reflect.Complex128:
		switch x := v.(type) {
		case complex128:
			dst.SetComplex(x)
		case float64:
			dst.SetComplex(complex(x, 0))
		default:
			return mismatch()
		}
		return nil
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return mismatch()
		}
		dst.SetString(s)
		return nil
	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return mismatch()
		}
		dst.SetBool(b)
		return nil
	case reflect.Slice, reflect.Array:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			if b, ok := v.([]byte); ok {
				return assignBytes(dst, b, path)
			}
		}
		items, ok := seqItems(v)
		if !ok {
			return mismatch()
		}
		return assignSeq(dst, items, path)
	case reflect.Map:
		return assignMap(dst, v, path, mismatch)
	case reflect.Struct:
		m, ok := stringMap(v)
		if !ok {
			return mismatch()
		}
		return decodeStruct(m, dst, path)
	}
	return mismatch()
}

func assignBytes(dst reflect.Value, b []byte, path string) error {
	if dst.Kind() == reflect.Slice {
		dst.SetBytes(append([]byte{}, b...))
		return nil
	}
	if len(b) != dst.Len() {
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("got %d bytes for %s", len(b), dst.Type())}
	}
	reflect.Copy(dst, reflect.ValueOf(b))
	return nil
}

func assignSeq(dst reflect.Value, items []any, path string) error {
	if dst.Kind() == reflect.Array {
		if len(items) != dst.Len() {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("got %d items for %s", len(items), dst.Type())}
		}
	} else {
		dst.Set(reflect.MakeSlice(dst.Type(), len(items), len(items)))
	}
	for i, it := range items {
		if err := assign(dst.Index(i), it, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func assignMap(dst reflect.Value, v any, path string, mismatch func() error) error {
	mt := dst.Type()
	if set, ok := v.(*native.Set); ok && mt.Elem().Kind() == reflect.Struct && mt.Elem().NumField() == 0 {
		m := reflect.MakeMapWithSize(mt, set.Len())
		for i, it := range set.Items() {
			k := reflect.New(mt.Key()).Elem()
			if err := assign(k, it, fmt.Sprintf("%s{%d}", path, i)); err != nil {
				return err
			}
			m.SetMapIndex(k, reflect.New(mt.Elem()).Elem())
		}
		dst.Set(m)
		return nil
	}
	var keys, vals []any
	switch x := v.(type) {
	case *native.Dict:
		x.Range(func(k, v any) bool {
			keys = append(keys, k)
			vals = append(vals, v)
			return true
		})
	case map[string]any:
		for k, v := range x {
			keys = append(keys, k)
			vals = append(vals, v)
		}
	default:
		return mismatch()
	}
	m := reflect.MakeMapWithSize(mt, len(keys))
	for i := range keys {
		k := reflect.New(mt.Key()).Elem()
		kp := fmt.Sprintf("%s[%v]", path, keys[i])
		if err := assign(k, keys[i], kp); err != nil {
			return err
		}
		e := reflect.New(mt.Elem()).Elem()
		if err := assign(e, vals[i], kp); err != nil {
			return err
		}
		m.SetMapIndex(k, e)
	}
	dst.Set(m)
	return nil
}

func toBig(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case *big.Int:
		return x, true
	}
	return nil, false
}

func seqItems(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case native.Tuple:
		return x, true
	case *native.Set:
		return x.Items(), true
	}
	return nil, false
}

func stringMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case *native.Dict:
		return x.ToMap()
	}
	return nil, false
}
