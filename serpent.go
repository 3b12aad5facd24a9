package serpent

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/serpent-format/go-serpent/encode"
	"github.com/signadot/serpent-format/go-serpent/gomap"
	"github.com/signadot/serpent-format/go-serpent/native"
	"github.com/signadot/serpent-format/go-serpent/parse"
)

var ErrNotBytes = errors.New("not a bytes value")

// Dumps returns v serialized with a dialect header.
func Dumps(v any, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump writes v serialized with a dialect header to w.
func Dump(w io.Writer, v any, opts ...encode.EncodeOption) error {
	return encode.Encode(v, w, opts...)
}

type LoadConfig struct {
	ParseOptions []parse.ParseOption
	UnmapOptions []gomap.UnmapOption
}

type LoadOpt func(*LoadConfig)

func LoadParseOptions(opts ...parse.ParseOption) LoadOpt {
	return func(c *LoadConfig) { c.ParseOptions = append(c.ParseOptions, opts...) }
}

func LoadUnmapOptions(opts ...gomap.UnmapOption) LoadOpt {
	return func(c *LoadConfig) { c.UnmapOptions = append(c.UnmapOptions, opts...) }
}

// Loads parses serialized data and reduces it to Go values as
// gomap.FromIR does. Empty input gives nil.
func Loads(d []byte, opts ...LoadOpt) (any, error) {
	cfg := &LoadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	node, err := parse.Parse(d, cfg.ParseOptions...)
	if err != nil {
		return nil, err
	}
	return gomap.FromIR(node, cfg.UnmapOptions...)
}

func Load(r io.Reader, opts ...LoadOpt) (any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Loads(d, opts...)
}

// ToBytes recovers the bytes of a loaded value: either a []byte, or the
// {'data': ..., 'encoding': 'base64'} dict bytes are written as by
// default.
func ToBytes(v any) ([]byte, error) {
	var m map[string]any
	switch x := v.(type) {
	case []byte:
		return x, nil
	case map[string]any:
		m = x
	case *native.Dict:
		var ok bool
		if m, ok = x.ToMap(); !ok {
			return nil, fmt.Errorf("%w: dict has non string keys", ErrNotBytes)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotBytes, v)
	}
	if enc, _ := m["encoding"].(string); enc != "base64" {
		return nil, fmt.Errorf("%w: encoding %v", ErrNotBytes, m["encoding"])
	}
	data, ok := m["data"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: data is %T", ErrNotBytes, m["data"])
	}
	res, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotBytes, err)
	}
	return res, nil
}
