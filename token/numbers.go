package token

import (
	"math"
	"strconv"
	"strings"
)

const (
	// PosInfLiteral and NegInfLiteral overflow to infinity when read
	// back as a double.
	PosInfLiteral = "1e30000"
	NegInfLiteral = "-1e30000"

	// NaNLiteral is the dict form of a NaN float. The parser turns it
	// back into NaN.
	NaNLiteral = "{'__class__':'float','value':'nan'}"

	NumberChars = "-+.eE0123456789"
	IntChars    = "-0123456789"
	DigitChars  = "0123456789"
)

// FormatFloat formats f the way a float literal is written: the
// shortest representation that reads back to f, always with a decimal
// point or an exponent. Exponents are used below 1e-4 and from 1e16 up.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return PosInfLiteral
	case math.IsInf(f, -1):
		return NegInfLiteral
	case math.IsNaN(f):
		return NaNLiteral
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if i := strings.IndexByte(e, 'e'); i >= 0 {
		exp, _ = strconv.Atoi(e[i+1:])
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatComplex formats a complex literal, "(re+imj)".
func FormatComplex(c complex128) string {
	re, im := real(c), imag(c)
	b := &strings.Builder{}
	b.WriteByte('(')
	b.WriteString(FormatFloat(re))
	if !math.Signbit(im) {
		b.WriteByte('+')
	}
	b.WriteString(FormatFloat(im))
	b.WriteString("j)")
	return b.String()
}
