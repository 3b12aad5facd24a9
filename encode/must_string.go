package encode

import "strings"

// MustString returns the encoding of v without a header, panicking on
// error.
func MustString(v any, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	opts = append([]EncodeOption{EncodeHeader(false)}, opts...)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
