package gomap

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/signadot/serpent-format/go-serpent/debug"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/native"
	"github.com/signadot/serpent-format/go-serpent/registry"
)

// ClassKey is the dict key naming the class of a serialized object.
const ClassKey = "__class__"

// FromIR reduces a node to plain Go values.
//
//	None     nil
//	Bool     bool
//	Int      int, int64 or *big.Int by band
//	Float    float64
//	Complex  complex128
//	String   string
//	Bytes    []byte
//	List     []any
//	Tuple    native.Tuple
//	Set      *native.Set
//	Dict     *native.Dict
//
// A dict with only string keys and a string __class__ entry is offered
// to the class hook and then to the registry; the first to accept it
// supplies the value.
func FromIR(node *ir.Node, opts ...UnmapOption) (any, error) {
	if node == nil {
		return nil, nil
	}
	return newUnmapConfig(opts).reduce(node)
}

func (c *unmapConfig) reduce(y *ir.Node) (any, error) {
	switch y.Type {
	case ir.NoneType:
		return nil, nil
	case ir.BoolType:
		return y.Bool, nil
	case ir.IntType:
		switch y.Band() {
		case ir.NarrowBand:
			if y.Int64 == nil {
				return 0, nil
			}
			return int(*y.Int64), nil
		case ir.WideBand:
			return *y.Int64, nil
		default:
			return new(big.Int).Set(y.Big), nil
		}
	case ir.FloatType:
		return y.Float64, nil
	case ir.ComplexType:
		return y.Complex, nil
	case ir.StringType:
		return y.String, nil
	case ir.BytesType:
		return append([]byte{}, y.Bytes...), nil
	case ir.ListType:
		return c.reduceSeq(y.Values)
	case ir.TupleType:
		vs, err := c.reduceSeq(y.Values)
		if err != nil {
			return nil, err
		}
		return native.Tuple(vs), nil
	case ir.SetType:
		vs, err := c.reduceSeq(y.Values)
		if err != nil {
			return nil, err
		}
		return native.NewSet(vs...), nil
	case ir.DictType:
		return c.reduceDict(y)
	}
	return nil, fmt.Errorf("cannot reduce node of type %s", y.Type)
}

func (c *unmapConfig) reduceSeq(ys []*ir.Node) ([]any, error) {
	res := make([]any, len(ys))
	for i, y := range ys {
		v, err := c.reduce(y)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (c *unmapConfig) reduceDict(y *ir.Node) (any, error) {
	d := native.NewDict()
	for i, f := range y.Fields {
		k, err := c.reduce(f)
		if err != nil {
			return nil, err
		}
		v, err := c.reduce(y.Values[i])
		if err != nil {
			return nil, err
		}
		d.Set(k, v)
	}
	if c.classHook == nil && c.registry == nil {
		return d, nil
	}
	cv, ok := d.Get(ClassKey)
	if !ok {
		return d, nil
	}
	class, ok := cv.(string)
	if !ok {
		return d, nil
	}
	m, ok := d.ToMap()
	if !ok {
		return d, nil
	}
	v, ok, err := c.applyClass(class, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		if debug.Reduce() {
			debug.Logf("no class hook accepted %q, keeping dict %v", class, y)
		}
		return d, nil
	}
	return v, nil
}

func (c *unmapConfig) applyClass(class string, m map[string]any) (any, bool, error) {
	if c.classHook != nil {
		v, ok, err := c.classHook(class, m)
		if err != nil {
			return nil, false, conversionError(class, err)
		}
		if ok {
			if debug.Reduce() {
				debug.Logf("class hook built %T from %q", v, class)
			}
			return v, true, nil
		}
	}
	conv, ok := c.registry.LookupClass(class)
	if !ok {
		return nil, false, nil
	}
	v, ok, err := conv.FromDict(m)
	if err != nil {
		return nil, false, conversionError(class, err)
	}
	if ok && debug.Reduce() {
		debug.Logf("registry built %T from %q", v, class)
	}
	return v, ok, nil
}

func conversionError(class string, err error) error {
	var ce *registry.ConversionError
	if errors.As(err, &ce) {
		return err
	}
	return &registry.ConversionError{Class: class, Err: err}
}
