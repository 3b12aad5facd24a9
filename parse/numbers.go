package parse

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/token"
)

// int := ['-'] digit {digit}
func (p *parser) parseInt() (*ir.Node, error) {
	s := p.r.ReadWhile(token.IntChars)
	if s == "" {
		return nil, syntaxErr("invalid int character")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(v), nil
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, syntaxErr("invalid integer format %q", s)
	}
	return ir.FromBigInt(bi), nil
}

func (p *parser) parseFloat() (*ir.Node, error) {
	f, err := p.readFloat()
	if err != nil {
		return nil, err
	}
	return ir.FromFloat(f), nil
}

// readFloat reads a float token. Tokens without a decimal point or an
// exponent are rejected so that the caller can read them as integers.
func (p *parser) readFloat() (float64, error) {
	s := p.r.ReadWhile(token.NumberChars)
	if s == "" {
		return 0, syntaxErr("invalid float character")
	}
	if !strings.ContainsAny(s, ".eE") {
		return 0, syntaxErr("number is not a float (might be an integer though)")
	}
	return parseFloatText(s)
}

// parseFloatText accepts literals out of range, which overflow to
// infinity.
func parseFloatText(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, syntaxErr("invalid float format %q", s)
	}
	return f, nil
}

// complex   := imaginary | '(' (float | int) imaginary ')'
// imaginary := ['+' | '-'] (float | int) 'j'
func (p *parser) parseComplex() (*ir.Node, error) {
	if !p.r.PeekIs('(') {
		im, err := p.parseImaginary()
		if err != nil {
			return nil, err
		}
		return ir.FromComplex(complex(0, im)), nil
	}
	p.r.Read()
	var num string
	if p.r.PeekIs('-') || p.r.PeekIs('+') {
		sign, _ := p.r.ReadN(1)
		rest, err := p.r.ReadUntil('+', '-')
		if err != nil {
			return nil, wrapErr("complex real part", err)
		}
		num = sign + rest
	} else {
		s, err := p.r.ReadUntil('+', '-')
		if err != nil {
			return nil, wrapErr("complex real part", err)
		}
		num = s
	}
	p.r.Rewind(1)
	// the sign just found may belong to an exponent
	if strings.HasSuffix(num, "e") || strings.HasSuffix(num, "E") {
		if p.r.PeekIs('-') || p.r.PeekIs('+') {
			sign, _ := p.r.ReadN(1)
			num += sign
		}
		num += p.r.ReadWhile(token.DigitChars)
	}
	p.r.SkipWhitespace()
	re, err := parseFloatText(strings.TrimSpace(num))
	if err != nil {
		return nil, err
	}
	im, err := p.parseImaginary()
	if err != nil {
		return nil, err
	}
	if c, err := p.r.Read(); err != nil || c != ')' {
		return nil, syntaxErr("expected ) to end a complex number")
	}
	return ir.FromComplex(complex(re, im)), nil
}

func (p *parser) parseImaginary() (float64, error) {
	if !p.r.HasMore() {
		return 0, syntaxErr("unexpected end of input")
	}
	if p.r.PeekIs('+') {
		p.r.Read()
	}
	bm := p.r.Bookmark()
	v, err := p.readFloat()
	if err != nil {
		p.r.Restore(bm)
		n, ierr := p.parseInt()
		if ierr != nil {
			return 0, ierr
		}
		v, _ = new(big.Float).SetInt(n.BigInt()).Float64()
	}
	p.r.SkipWhitespace()
	if c, err := p.r.Read(); err != nil || c != 'j' {
		return 0, syntaxErr("not an imaginary part")
	}
	return v, nil
}
