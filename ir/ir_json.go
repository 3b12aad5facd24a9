package ir

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var ErrJSON = errors.New("json conversion error")

// ToJSON renders y as JSON. Tuples and sets become arrays, bytes become
// base64 strings, complex numbers become [re, im] and dict keys which
// are not strings are written as their serpent literal. Non finite
// floats are written as the strings "inf", "-inf" and "nan".
func ToJSON(y *Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NoneType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case IntType:
		buf.WriteString(y.Literal())
	case FloatType:
		writeJSONFloat(buf, y.Float64)
	case ComplexType:
		buf.WriteByte('[')
		writeJSONFloat(buf, real(y.Complex))
		buf.WriteByte(',')
		writeJSONFloat(buf, imag(y.Complex))
		buf.WriteByte(']')
	case StringType:
		writeJSONString(buf, y.String)
	case BytesType:
		writeJSONString(buf, base64.StdEncoding.EncodeToString(y.Bytes))
	case ListType, TupleType, SetType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case DictType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key := f.String
			if f.Type != StringType {
				key = f.Literal()
			}
			writeJSONString(buf, key)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown type %s", ErrJSON, y.Type)
	}
	return nil
}

func writeJSONFloat(buf *bytes.Buffer, f float64) {
	switch {
	case math.IsInf(f, 1):
		buf.WriteString(`"inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-inf"`)
	case math.IsNaN(f):
		buf.WriteString(`"nan"`)
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// FromJSON converts a JSON document into a node. Object key order is
// kept. Integral numbers become IntType nodes, others FloatType.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := fromJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrJSON)
	}
	return res, nil
}

func fromJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case nil:
		return None(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if bi, ok := new(big.Int).SetString(s, 10); ok {
				return FromBigInt(bi), nil
			}
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return FromFloat(f), nil
	case json.Delim:
		switch x {
		case '[':
			vals := []*Node{}
			for dec.More() {
				v, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromSlice(vals), nil
		case '{':
			kvs := []KeyVal{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: bad object key %v", ErrJSON, kt)
				}
				v, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KeyVal{Key: FromString(k), Val: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromKeyVals(kvs), nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}
