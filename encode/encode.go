package encode

import (
	"encoding"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/serpent-format/go-serpent/debug"
	"github.com/signadot/serpent-format/go-serpent/format"
	"github.com/signadot/serpent-format/go-serpent/gomap"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/native"
	"github.com/signadot/serpent-format/go-serpent/registry"
	"github.com/signadot/serpent-format/go-serpent/token"
)

// DefaultMaxLevel is the default nesting limit.
const DefaultMaxLevel = 500

const indentString = "  "

type EncState struct {
	indent      bool
	setLiterals bool
	maxLevel    int
	qualified   bool
	bytesRepr   bool
	header      bool

	registry *registry.Registry
	attrs    AttributeFunc

	buf   strings.Builder
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v in serpent form to w, preceded by the dialect header
// unless EncodeHeader(false) is given. Nothing is written if v cannot
// be encoded.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		setLiterals: true,
		maxLevel:    DefaultMaxLevel,
		header:      true,
		attrs:       StructAttributes,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.attrs == nil {
		es.attrs = StructAttributes
	}
	if es.header {
		es.writeColored(ir.NoneType, CommentColor, format.DialectFor(es.setLiterals).Header())
	}
	if err := es.encode(reflect.ValueOf(v), 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, es.buf.String())
	return err
}

// Dialect returns the dialect the options select.
func Dialect(opts ...EncodeOption) format.Dialect {
	es := &EncState{setLiterals: true}
	for _, opt := range opts {
		opt(es)
	}
	return format.DialectFor(es.setLiterals)
}

func (es *EncState) write(s string) {
	es.buf.WriteString(s)
}

func (es *EncState) writeColored(t ir.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.buf.WriteString(s)
}

func (es *EncState) writeValue(t ir.Type, s string) {
	es.writeColored(t, ValueColor, s)
}

func (es *EncState) writeSep(t ir.Type, s string) {
	es.writeColored(t, SepColor, s)
}

func (es *EncState) newline(level int) {
	if !es.indent {
		return
	}
	es.write("\n")
	es.write(strings.Repeat(indentString, level))
}

func (es *EncState) encode(v reflect.Value, level int) error {
	if level > es.maxLevel {
		return fmt.Errorf("%w: level %d exceeds %d", ErrDepthExceeded, level, es.maxLevel)
	}
	v = deref(v)
	sh := classify(v)
	switch sh {
	case shapeNone:
		es.writeValue(ir.NoneType, "None")
	case shapeString:
		es.writeValue(ir.StringType, token.Quote(v.String()))
	case shapeBytes:
		return es.encodeBytes(bytesOf(v), level)
	case shapeBool:
		if v.Bool() {
			es.writeValue(ir.BoolType, "True")
		} else {
			es.writeValue(ir.BoolType, "False")
		}
	case shapeEnum:
		es.writeValue(ir.StringType, token.Quote(v.Interface().(fmt.Stringer).String()))
	case shapeDecimal:
		es.writeValue(ir.StringType, token.Quote(decimalText(v)))
	case shapeNumber:
		return es.encodeNumber(v)
	case shapeTime:
		es.writeValue(ir.StringType, token.Quote(timeOf(v).Format(time.RFC3339Nano)))
	case shapeUUID:
		es.writeValue(ir.StringType, token.Quote(v.Interface().(uuid.UUID).String()))
	case shapeSet:
		items := setItems(v)
		if v.Kind() == reflect.Map {
			items = sortValues(items)
		}
		return es.encodeSet(items, level)
	case shapeDict:
		return es.encodeDict(v, level)
	case shapeComplex:
		c := v.Complex()
		if math.IsNaN(real(c)) || math.IsNaN(imag(c)) {
			return &UnsupportedTypeError{Type: v.Type(), Reason: "complex with a NaN component"}
		}
		es.writeValue(ir.ComplexType, token.FormatComplex(c))
	case shapeError:
		return es.encodeError(v, level)
	case shapeTuple:
		return es.encodeTuple(seqItems(v), level)
	case shapeList:
		return es.encodeSeq(ir.ListType, "[", "]", seqItems(v), false, level)
	case shapeStruct:
		return es.encodeStruct(v, level)
	default:
		return &UnsupportedTypeError{Type: v.Type()}
	}
	return nil
}

func (es *EncState) encodeBytes(d []byte, level int) error {
	if es.bytesRepr {
		es.writeValue(ir.BytesType, token.QuoteBytes(d))
		return nil
	}
	return es.encodeNative(native.DictOf(
		"data", base64.StdEncoding.EncodeToString(d),
		"encoding", "base64"), level)
}

func (es *EncState) encodeNumber(v reflect.Value) error {
	var s string
	switch {
	case v.Type() == durationType:
		s = token.FormatFloat(time.Duration(v.Int()).Seconds())
	case v.Kind() == reflect.Float32:
		// the shortest text for the float32, read back as a float64
		f, _ := strconv.ParseFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32), 64)
		s = token.FormatFloat(f)
	case v.Kind() == reflect.Float64:
		s = token.FormatFloat(v.Float())
	case v.CanInt():
		s = strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		s = strconv.FormatUint(v.Uint(), 10)
	default:
		b := bigIntOf(v)
		if b == nil {
			es.writeValue(ir.NoneType, "None")
			return nil
		}
		s = b.String()
	}
	t := ir.IntType
	if isFloat(v.Kind()) || v.Type() == durationType {
		t = ir.FloatType
	}
	es.writeValue(t, s)
	return nil
}

func (es *EncState) encodeSet(items []reflect.Value, level int) error {
	if len(items) == 0 {
		es.writeSep(ir.TupleType, "()")
		return nil
	}
	if !es.setLiterals {
		return es.encodeTuple(items, level)
	}
	if es.indent {
		items = sortValues(items)
	}
	return es.encodeSeq(ir.SetType, "{", "}", items, false, level)
}

func (es *EncState) encodeTuple(items []reflect.Value, level int) error {
	return es.encodeSeq(ir.TupleType, "(", ")", items, len(items) == 1, level)
}

func (es *EncState) encodeSeq(t ir.Type, open, close string, items []reflect.Value, trailingComma bool, level int) error {
	es.writeSep(t, open)
	if len(items) == 0 {
		es.writeSep(t, close)
		return nil
	}
	for i, it := range items {
		es.newline(level + 1)
		if err := es.encode(it, level+1); err != nil {
			return err
		}
		if i < len(items)-1 || trailingComma {
			es.writeSep(t, ",")
		}
	}
	es.newline(level)
	es.writeSep(t, close)
	return nil
}

type entry struct {
	key, val reflect.Value
}

func (es *EncState) encodeDict(v reflect.Value, level int) error {
	if v.Kind() == reflect.Map {
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, entry{iter.Key(), iter.Value()})
		}
		return es.writeEntries(sortEntries(entries), level)
	}
	return es.encodeNative(dictOf(v), level)
}

// encodeNative writes a native dict, in insertion order unless
// indenting.
func (es *EncState) encodeNative(d *native.Dict, level int) error {
	entries := make([]entry, 0, d.Len())
	d.Range(func(k, v any) bool {
		entries = append(entries, entry{reflect.ValueOf(k), reflect.ValueOf(v)})
		return true
	})
	if es.indent {
		entries = sortEntries(entries)
	}
	return es.writeEntries(entries, level)
}

func (es *EncState) writeEntries(entries []entry, level int) error {
	es.writeSep(ir.DictType, "{")
	if len(entries) == 0 {
		es.writeSep(ir.DictType, "}")
		return nil
	}
	colon := ":"
	if es.indent {
		colon = ": "
	}
	for i, e := range entries {
		es.newline(level + 1)
		if err := es.encodeKey(e.key, level+1); err != nil {
			return err
		}
		es.writeSep(ir.DictType, colon)
		if err := es.encode(e.val, level+1); err != nil {
			return err
		}
		if i < len(entries)-1 {
			es.writeSep(ir.DictType, ",")
		}
	}
	es.newline(level)
	es.writeSep(ir.DictType, "}")
	return nil
}

func (es *EncState) encodeKey(k reflect.Value, level int) error {
	if d := deref(k); d.IsValid() && d.Kind() == reflect.String {
		es.writeColored(ir.DictType, FieldColor, token.Quote(d.String()))
		return nil
	}
	return es.encode(k, level)
}

func (es *EncState) encodeError(v reflect.Value, level int) error {
	if conv, cv, ok := es.lookup(v); ok {
		return es.encodeConverted(conv, cv, level)
	}
	err := v.Interface().(error)
	attrs := native.NewDict()
	if sv := structOf(v); sv.IsValid() {
		as, aErr := es.attrs(sv)
		if aErr != nil {
			return aErr
		}
		for _, a := range as {
			attrs.Set(a.Name, a.Value)
		}
	}
	return es.encodeNative(native.DictOf(
		gomap.ClassKey, registry.ClassName(v.Type(), es.qualified),
		"__exception__", true,
		"args", native.Tuple{err.Error()},
		"attributes", attrs,
	), level)
}

func (es *EncState) encodeStruct(v reflect.Value, level int) error {
	if conv, cv, ok := es.lookup(v); ok {
		return es.encodeConverted(conv, cv, level)
	}
	if tm, ok := textMarshaler(v); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return &UnsupportedTypeError{Type: v.Type(), Reason: err.Error()}
		}
		es.writeValue(ir.StringType, token.Quote(string(text)))
		return nil
	}
	sv := structOf(v)
	if !sv.IsValid() {
		return &UnsupportedTypeError{Type: v.Type()}
	}
	attrs, err := es.attrs(sv)
	if err != nil {
		return err
	}
	class := registry.ClassName(v.Type(), es.qualified)
	if debug.Encode() {
		debug.Logf("encoding %s as %d attributes of class %q", v.Type(), len(attrs), class)
	}
	d := native.NewDict()
	d.Set(gomap.ClassKey, class)
	for _, a := range attrs {
		d.Set(a.Name, a.Value)
	}
	return es.encodeNative(d, level)
}

// lookup finds a converter for v, or for the value v points to. It
// returns the value the converter expects.
func (es *EncState) lookup(v reflect.Value) (registry.Converter, reflect.Value, bool) {
	if conv, ok := es.registry.Lookup(v.Type()); ok {
		return conv, v, true
	}
	if v.Kind() == reflect.Pointer {
		if conv, ok := es.registry.Lookup(v.Type().Elem()); ok {
			return conv, v.Elem(), true
		}
	}
	return nil, v, false
}

func (es *EncState) encodeConverted(conv registry.Converter, v reflect.Value, level int) error {
	d, err := conv.ToDict(v.Interface())
	if err != nil {
		var ce *registry.ConversionError
		if errors.As(err, &ce) {
			return err
		}
		return &registry.ConversionError{Class: registry.ClassName(v.Type(), es.qualified), Err: err}
	}
	if debug.Encode() {
		debug.Logf("converter gave %d attributes for %s", len(d), v.Type())
	}
	return es.encode(reflect.ValueOf(d), level)
}

func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.Type().Implements(textMarshalerType) {
		return v.Interface().(encoding.TextMarshaler), true
	}
	if v.Kind() != reflect.Pointer && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p.Interface().(encoding.TextMarshaler), true
	}
	return nil, false
}

// structOf returns the struct v is or points to, or an invalid value.
func structOf(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v
}

func bytesOf(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	d := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(d), v)
	return d
}

func bigIntOf(v reflect.Value) *big.Int {
	if v.Kind() == reflect.Pointer {
		return v.Interface().(*big.Int)
	}
	x := v.Interface().(big.Int)
	return &x
}

func timeOf(v reflect.Value) time.Time {
	if v.Kind() == reflect.Pointer {
		return *v.Interface().(*time.Time)
	}
	return v.Interface().(time.Time)
}

func decimalText(v reflect.Value) string {
	switch x := v.Interface().(type) {
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		return x.String()
	case *big.Float:
		return x.Text('g', -1)
	case big.Float:
		return x.Text('g', -1)
	case *big.Rat:
		return x.RatString()
	case big.Rat:
		return x.RatString()
	}
	return fmt.Sprint(v.Interface())
}

func setItems(v reflect.Value) []reflect.Value {
	if v.Kind() == reflect.Map {
		return v.MapKeys()
	}
	var s *native.Set
	if v.Kind() == reflect.Pointer {
		s = v.Interface().(*native.Set)
	} else {
		x := v.Interface().(native.Set)
		s = &x
	}
	items := s.Items()
	res := make([]reflect.Value, len(items))
	for i, it := range items {
		res[i] = reflect.ValueOf(it)
	}
	return res
}

func dictOf(v reflect.Value) *native.Dict {
	if v.Kind() == reflect.Pointer {
		return v.Interface().(*native.Dict)
	}
	x := v.Interface().(native.Dict)
	return &x
}

func seqItems(v reflect.Value) []reflect.Value {
	res := make([]reflect.Value, v.Len())
	for i := range res {
		res[i] = v.Index(i)
	}
	return res
}
