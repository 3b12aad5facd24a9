// Package encode writes Go values as serpent text.
//
// # Usage
//
//	err := encode.Encode(map[string]any{"name": "alice", "age": 30}, w)
//
//	// indented, without sets, colored
//	err := encode.Encode(v, w,
//	    encode.Indent(true),
//	    encode.SetLiterals(false),
//	    encode.EncodeColors(encode.NewColors()))
//
// Each value is written according to the first rule it matches:
//
//   - nil, nil pointers and nil interfaces: None
//   - strings
//   - byte slices and unnamed byte arrays: a base64 dict, or b'...' with BytesRepr
//   - bools
//   - named integer types with a String method: the quoted name
//   - decimal.Decimal, big.Float and big.Rat: quoted text
//   - other numbers, big.Int, and time.Duration in seconds
//   - time.Time: quoted RFC 3339
//   - uuid.UUID: quoted
//   - *native.Set and map[K]struct{}: a set
//   - maps and *native.Dict: a dict
//   - complex numbers
//   - errors: an exception dict
//   - native.Tuple: a tuple, other slices and arrays: a list
//   - structs: a registered converter, then encoding.TextMarshaler,
//     then the struct attributes with a __class__ key
//
// Anything else, such as channels and funcs, is an UnsupportedTypeError.
//
// # Related Packages
//
//   - github.com/signadot/serpent-format/go-serpent/parse - Parse text to IR
//   - github.com/signadot/serpent-format/go-serpent/registry - class converters
package encode
