package encode

import (
	"reflect"

	"github.com/signadot/serpent-format/go-serpent/gomap"
)

// Attr is a named attribute of an object.
type Attr struct {
	Name  string
	Value any
}

// AttributeFunc lists the attributes of a struct value. v is never a
// pointer.
type AttributeFunc func(v reflect.Value) ([]Attr, error)

// StructAttributes lists the exported fields of v as gomap.StructFields
// names them, leaving out zero valued omitempty fields.
func StructAttributes(v reflect.Value) ([]Attr, error) {
	fields := gomap.StructFields(v.Type())
	res := make([]Attr, 0, len(fields))
	for _, f := range fields {
		fv := gomap.FieldByIndex(v, f.Index)
		if !fv.IsValid() || !fv.CanInterface() {
			continue
		}
		if f.OmitEmpty && fv.IsZero() {
			continue
		}
		res = append(res, Attr{Name: f.Name, Value: fv.Interface()})
	}
	return res, nil
}
