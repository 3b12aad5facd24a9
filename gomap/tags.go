package gomap

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag consulted for field names.
const TagName = "serpent"

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Name is the attribute name, from the tag or else the field name.
	Name string

	// Index is the field index sequence for reflect.Value.FieldByIndex.
	Index []int

	// Type is the Go type of the field
	Type reflect.Type

	// OmitEmpty omits the attribute when the field holds its zero value.
	OmitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []FieldInfo

// StructFields returns the attributes of struct type typ: its exported
// fields, with fields of embedded structs promoted, honoring
// `serpent:"name,omitempty"` tags. A tag of "-" skips the field. When
// several fields share a name the shallowest wins.
func StructFields(typ reflect.Type) []FieldInfo {
	if fs, ok := fieldCache.Load(typ); ok {
		return fs.([]FieldInfo)
	}
	fs := structFields(typ, nil, map[reflect.Type]bool{})
	fs = dedupFields(fs)
	fieldCache.Store(typ, fs)
	return fs
}

func structFields(typ reflect.Type, index []int, seen map[reflect.Type]bool) []FieldInfo {
	if seen[typ] {
		return nil
	}
	seen[typ] = true
	defer delete(seen, typ)

	var res []FieldInfo
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		tag, hasTag := sf.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		idx := append(append([]int{}, index...), i)
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				res = append(res, structFields(ft, idx, seen)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		res = append(res, FieldInfo{
			Name:      name,
			Index:     idx,
			Type:      sf.Type,
			OmitEmpty: hasTag && hasOpt(opts, "omitempty"),
		})
	}
	return res
}

func hasOpt(opts, opt string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(o) == opt {
			return true
		}
	}
	return false
}

// dedupFields keeps, for each name, the field with the shortest index,
// and drops names which are ambiguous at that depth.
func dedupFields(fs []FieldInfo) []FieldInfo {
	best := map[string]int{}
	ambiguous := map[string]bool{}
	for i, f := range fs {
		j, ok := best[f.Name]
		switch {
		case !ok, len(f.Index) < len(fs[j].Index):
			best[f.Name] = i
			delete(ambiguous, f.Name)
		case len(f.Index) == len(fs[j].Index):
			ambiguous[f.Name] = true
		}
	}
	res := make([]FieldInfo, 0, len(best))
	for i, f := range fs {
		if best[f.Name] == i && !ambiguous[f.Name] {
			res = append(res, f)
		}
	}
	return res
}

// FieldByIndex is reflect.Value.FieldByIndex but returns an invalid
// value instead of panicking on a nil embedded pointer.
func FieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
