package native

// Tuple is a fixed size sequence. It is written as a tuple literal
// where a plain slice is written as a list.
type Tuple []any

// Set is a collection of distinct values. Values are distinct if their
// Key differs, so unhashable values such as slices may be members.
// Iteration follows insertion order.
type Set struct {
	items []any
	index map[string]int
}

func NewSet(items ...any) *Set {
	s := &Set{index: make(map[string]int, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add adds v and reports whether it was not already present.
func (s *Set) Add(v any) bool {
	if s.index == nil {
		s.index = map[string]int{}
	}
	k := Key(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *Set) Has(v any) bool {
	_, ok := s.index[Key(v)]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the members in insertion order.
func (s *Set) Items() []any {
	if s == nil {
		return nil
	}
	return append([]any(nil), s.items...)
}

// Equal reports whether s and o hold the same members.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, it := range o.Items() {
		if !s.Has(it) {
			return false
		}
	}
	return true
}

// Dict is a mapping whose keys may be any value, compared by Key.
// Iteration follows insertion order; replacing the value of a key keeps
// its position.
type Dict struct {
	keys  []any
	vals  []any
	index map[string]int
}

func NewDict() *Dict {
	return &Dict{index: map[string]int{}}
}

// DictOf returns a dict of alternating keys and values.
func DictOf(kvs ...any) *Dict {
	d := NewDict()
	for i := 0; i+1 < len(kvs); i += 2 {
		d.Set(kvs[i], kvs[i+1])
	}
	return d
}

func (d *Dict) Set(k, v any) {
	if d.index == nil {
		d.index = map[string]int{}
	}
	key := Key(k)
	if i, ok := d.index[key]; ok {
		d.vals[i] = v
		return
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, k)
	d.vals = append(d.vals, v)
}

func (d *Dict) Get(k any) (any, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[Key(k)]
	if !ok {
		return nil, false
	}
	return d.vals[i], true
}

func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []any {
	if d == nil {
		return nil
	}
	return append([]any(nil), d.keys...)
}

// Range calls f for each entry in insertion order until f returns
// false.
func (d *Dict) Range(f func(k, v any) bool) {
	if d == nil {
		return
	}
	for i, k := range d.keys {
		if !f(k, d.vals[i]) {
			return
		}
	}
}

// ToMap returns the entries as a map when every key is a string.
func (d *Dict) ToMap() (map[string]any, bool) {
	res := make(map[string]any, d.Len())
	ok := true
	d.Range(func(k, v any) bool {
		s, isStr := k.(string)
		if !isStr {
			ok = false
			return false
		}
		res[s] = v
		return true
	})
	if !ok {
		return nil, false
	}
	return res, true
}

// Equal reports whether d and o hold the same keys mapped to
// structurally equal values.
func (d *Dict) Equal(o *Dict) bool {
	if d.Len() != o.Len() {
		return false
	}
	eq := true
	o.Range(func(k, v any) bool {
		dv, ok := d.Get(k)
		if !ok || Key(dv) != Key(v) {
			eq = false
		}
		return eq
	})
	return eq
}
