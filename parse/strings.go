package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/token"
)

// parseString reads a quoted string. The cursor is on the opening
// quote.
func (p *parser) parseString() (string, error) {
	quote, _ := p.r.Read()
	b := &strings.Builder{}
	for p.r.HasMore() {
		c, _ := p.r.Read()
		switch c {
		case quote:
			return b.String(), nil
		case '\\':
			r, err := p.readEscape(false)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		default:
			b.WriteRune(c)
		}
	}
	return "", syntaxErr("unclosed string")
}

// parseBytes reads a bytes literal, b'...' or b"...". Unescaped
// characters must be below 256.
func (p *parser) parseBytes() (*ir.Node, error) {
	s, _ := p.r.PeekN(2)
	if s != "b'" && s != `b"` {
		return nil, syntaxErr("expected bytes literal")
	}
	p.r.Read()
	quote, _ := p.r.Read()
	res := []byte{}
	for p.r.HasMore() {
		c, _ := p.r.Read()
		switch {
		case c == quote:
			return ir.FromBytes(res), nil
		case c == '\\':
			r, err := p.readEscape(true)
			if err != nil {
				return nil, err
			}
			res = append(res, byte(r))
		case c < 256:
			res = append(res, byte(c))
		default:
			return nil, syntaxErr("bytes literal can only contain characters below 256, got %q", c)
		}
	}
	return nil, syntaxErr("unclosed bytes literal")
}

// readEscape decodes the escape sequence following a backslash. Unknown
// escapes stand for the escaped character itself. In bytes literals
// \u and \U are not escapes and the backslash is kept.
func (p *parser) readEscape(bytesLit bool) (rune, error) {
	c, err := p.r.Read()
	if err != nil {
		return 0, syntaxErr("unclosed string")
	}
	switch c {
	case '\\', '\'', '"':
		return c, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		return p.readHex(2)
	case 'u':
		if bytesLit {
			p.r.Rewind(1)
			return '\\', nil
		}
		r, err := p.readHex(4)
		if err != nil {
			return 0, err
		}
		if utf16.IsSurrogate(r) {
			r = p.lowSurrogate(r)
		}
		return r, nil
	case 'U':
		if bytesLit {
			p.r.Rewind(1)
			return '\\', nil
		}
		return p.readHex(8)
	default:
		return c, nil
	}
}

// lowSurrogate combines the high surrogate hi with an immediately
// following \uXXXX low surrogate. Lone surrogates become U+FFFD.
func (p *parser) lowSurrogate(hi rune) rune {
	bm := p.r.Bookmark()
	s, err := p.r.ReadN(2)
	if err == nil && s == `\u` {
		if lo, err := p.readHex(4); err == nil {
			if r := utf16.DecodeRune(hi, lo); r != unicode.ReplacementChar {
				return r
			}
		}
	}
	p.r.Restore(bm)
	return unicode.ReplacementChar
}

func (p *parser) readHex(n int) (rune, error) {
	s, err := p.r.ReadN(n)
	if err != nil {
		return 0, wrapErr("escape", err)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, wrapErr("escape", token.ErrBadEscape)
	}
	if v > 0x10FFFF {
		return 0, wrapErr("escape", token.ErrBadUnicode)
	}
	return rune(v), nil
}
