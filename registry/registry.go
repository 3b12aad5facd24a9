package registry

import (
	"reflect"
	"sync"
)

// Converter turns values of a registered type into attribute dicts and
// back.
//
// FromDict returns ok == false when it declines the dict, in which case
// the caller keeps the plain dict.
type Converter interface {
	ToDict(v any) (map[string]any, error)
	FromDict(d map[string]any) (v any, ok bool, err error)
}

// Funcs adapts a pair of functions to a Converter. Either may be nil.
type Funcs struct {
	To   func(v any) (map[string]any, error)
	From func(d map[string]any) (any, bool, error)
}

func (f Funcs) ToDict(v any) (map[string]any, error) {
	if f.To == nil {
		return nil, &ConversionError{Class: ClassName(reflect.TypeOf(v), true), Message: "no ToDict"}
	}
	return f.To(v)
}

func (f Funcs) FromDict(d map[string]any) (any, bool, error) {
	if f.From == nil {
		return nil, false, nil
	}
	return f.From(d)
}

type entry struct {
	typ  reflect.Type
	conv Converter
}

// Registry maps Go types to class converters.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *Registry {
	return &Registry{}
}

// Register adds or replaces the converter for t. t may be an interface
// type, in which case it applies to every type implementing it.
func (r *Registry) Register(t reflect.Type, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].typ == t {
			r.entries[i].conv = c
			return
		}
	}
	r.entries = append(r.entries, entry{typ: t, conv: c})
}

// Lookup finds the converter for t. An exact registration wins,
// otherwise the first registration in order to which t (or *t) is
// assignable.
func (r *Registry) Lookup(t reflect.Type) (Converter, bool) {
	if r == nil || t == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.typ == t {
			return e.conv, true
		}
	}
	pt := reflect.PointerTo(t)
	for _, e := range r.entries {
		if t.AssignableTo(e.typ) || pt.AssignableTo(e.typ) {
			return e.conv, true
		}
	}
	return nil, false
}

// LookupClass finds the converter whose registered type has the given
// class name, qualified or not.
func (r *Registry) LookupClass(name string) (Converter, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if ClassName(e.typ, true) == name {
			return e.conv, true
		}
	}
	for _, e := range r.entries {
		if ClassName(e.typ, false) == name {
			return e.conv, true
		}
	}
	return nil, false
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ClassName gives the class name written for values of t. Pointers are
// named after their element type. A qualified name is prefixed by the
// package path.
func ClassName(t reflect.Type, qualified bool) string {
	if t == nil {
		return "NoneType"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if qualified && t.PkgPath() != "" {
		return t.PkgPath() + "." + name
	}
	return name
}
