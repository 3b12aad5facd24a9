package parse

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/signadot/serpent-format/go-serpent/debug"
	"github.com/signadot/serpent-format/go-serpent/format"
	"github.com/signadot/serpent-format/go-serpent/ir"
	"github.com/signadot/serpent-format/go-serpent/token"
)

const contextWidth = 20

type parser struct {
	r *token.Reader
}

// Parse parses a serpent document. The header line, if present, is read
// as a comment. Empty input gives a nil node and no error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxLength > 0 && len(d) > pOpts.maxLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(d), pOpts.maxLength)
	}
	if pOpts.requireHeader {
		if _, ok := format.ParseHeader(d); !ok {
			return nil, ErrNoHeader
		}
	}
	if len(d) == 0 {
		return nil, nil
	}
	if !utf8.Valid(d) {
		return nil, ErrEncoding
	}
	p := &parser{r: token.NewReader(string(d))}
	res, err := p.parseExpr()
	if err == nil {
		p.r.SkipWhitespace()
		if p.r.HasMore() {
			err = syntaxErr("garbage at end of expression")
		}
	}
	if err != nil {
		return nil, p.syntaxError(err)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Header returns the dialect named in the header line of d.
func Header(d []byte) (format.Dialect, bool) {
	return format.ParseHeader(d)
}

func (p *parser) syntaxError(err error) *SyntaxError {
	off := p.r.Pos()
	left, right := p.r.Context(off, contextWidth)
	pos := p.r.Doc().Pos(off)
	return &SyntaxError{
		Msg:    err.Error(),
		Offset: off,
		Line:   pos.Line(),
		Col:    pos.Col(),
		Left:   left,
		Right:  right,
		Err:    err,
	}
}

// expr := [ws] (compound | single) [ws]
func (p *parser) parseExpr() (*ir.Node, error) {
	p.r.SkipWhitespace()
	c, err := p.r.Peek()
	if err != nil {
		return nil, syntaxErr("unexpected end of input, missing expression or close/open character")
	}
	var node *ir.Node
	switch c {
	case '{', '[', '(':
		node, err = p.parseCompound(c)
	default:
		node, err = p.parseSingle(c)
	}
	if err != nil {
		return nil, err
	}
	p.r.SkipWhitespace()
	return node, nil
}

func (p *parser) parseCompound(c rune) (*ir.Node, error) {
	switch c {
	case '[':
		return p.parseList()
	case '{':
		bm := p.r.Bookmark()
		res, err := p.parseSet()
		if err == nil {
			return res, nil
		}
		if debug.Parse() {
			debug.Logf("not a set at %d (%v), trying dict", bm, err)
		}
		p.r.Restore(bm)
		return p.parseDict()
	default:
		// a complex number if the text up to the matching paren or end
		// of line ends with 'j', else a tuple.
		between, ok := p.parenBody()
		if ok && strings.HasSuffix(strings.TrimSpace(between), "j") {
			return p.parseComplex()
		}
		return p.parseTuple()
	}
}

// parenBody returns the text following the '(' under the cursor up to
// its matching ')' or the end of the line. Nested brackets and quoted
// strings are skipped over and a comment ends the text early. The
// cursor does not move; ok is false when the input ends first.
func (p *parser) parenBody() (string, bool) {
	bm := p.r.Bookmark()
	defer p.r.Restore(bm)
	p.r.Read()
	var (
		b     strings.Builder
		depth int
		quote rune
	)
	for {
		c, err := p.r.Read()
		if err != nil {
			return "", false
		}
		if c == '\n' {
			return b.String(), true
		}
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else if c == '\\' {
				b.WriteRune(c)
				if c, err = p.r.Read(); err != nil {
					return "", false
				}
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return b.String(), true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			if depth == 0 {
				return b.String(), true
			}
			depth--
		}
		b.WriteRune(c)
	}
}

// tuple := '()' | '(' expr ',' [ws] ')' | '(' exprlist [','] ')'
func (p *parser) parseTuple() (*ir.Node, error) {
	p.r.Read()
	p.r.SkipWhitespace()
	if p.r.PeekIs(')') {
		p.r.Read()
		return ir.FromTuple(nil), nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.r.PeekIs(',') {
		return nil, syntaxErr("expected ',' in tuple")
	}
	p.r.Read()
	p.r.SkipWhitespace()
	if p.r.PeekIs(')') {
		p.r.Read()
		return ir.FromTuple([]*ir.Node{first}), nil
	}
	rest, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.closeSeq(')'); err != nil {
		return nil, err
	}
	return ir.FromTuple(append([]*ir.Node{first}, rest...)), nil
}

// list := '[]' | '[' exprlist [','] ']'
func (p *parser) parseList() (*ir.Node, error) {
	p.r.Read()
	p.r.SkipWhitespace()
	if p.r.PeekIs(']') {
		p.r.Read()
		return ir.FromSlice(nil), nil
	}
	elts, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.closeSeq(']'); err != nil {
		return nil, err
	}
	return ir.FromSlice(elts), nil
}

// set := '{' exprlist [','] '}'
func (p *parser) parseSet() (*ir.Node, error) {
	p.r.Read()
	p.r.SkipWhitespace()
	elts, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.closeSeq('}'); err != nil {
		return nil, err
	}
	return ir.FromSet(elts), nil
}

// dict := '{}' | '{' keyvalue (',' keyvalue)* [','] '}'
func (p *parser) parseDict() (*ir.Node, error) {
	p.r.Read()
	p.r.SkipWhitespace()
	if p.r.PeekIs('}') {
		p.r.Read()
		return ir.FromKeyVals(nil), nil
	}
	kv, err := p.parseKeyValue()
	if err != nil {
		return nil, err
	}
	kvs := []ir.KeyVal{kv}
	for p.r.PeekIs(',') {
		bm := p.r.Bookmark()
		p.r.Read()
		kv, err := p.parseKeyValue()
		if err != nil {
			p.r.Restore(bm)
			break
		}
		kvs = append(kvs, kv)
	}
	if err := p.closeSeq('}'); err != nil {
		return nil, err
	}
	res := ir.FromKeyVals(kvs)
	if isNaNDict(res) {
		return ir.FromFloat(math.NaN()), nil
	}
	return res, nil
}

func (p *parser) parseKeyValue() (ir.KeyVal, error) {
	key, err := p.parseExpr()
	if err != nil {
		return ir.KeyVal{}, err
	}
	if !p.r.PeekIs(':') {
		return ir.KeyVal{}, syntaxErr("expected ':'")
	}
	p.r.Read()
	val, err := p.parseExpr()
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: key, Val: val}, nil
}

// exprlist := expr (',' expr)*
//
// A comma followed by something that is not an expression ends the
// list; the comma is left for the caller.
func (p *parser) parseExprList() ([]*ir.Node, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	res := []*ir.Node{first}
	for p.r.PeekIs(',') {
		bm := p.r.Bookmark()
		p.r.Read()
		e, err := p.parseExpr()
		if err != nil {
			if debug.Parse() {
				debug.Logf("dangling comma at %d: %v", bm, err)
			}
			p.r.Restore(bm)
			break
		}
		res = append(res, e)
	}
	return res, nil
}

// closeSeq consumes an optional trailing comma and the close rune.
func (p *parser) closeSeq(close rune) error {
	p.r.SkipWhitespace()
	if !p.r.HasMore() {
		return syntaxErr("missing '%c'", close)
	}
	if p.r.PeekIs(',') {
		p.r.Read()
		p.r.SkipWhitespace()
	}
	c, err := p.r.Read()
	if err != nil {
		return syntaxErr("missing '%c'", close)
	}
	if c != close {
		return syntaxErr("expected '%c'", close)
	}
	return nil
}

// single := none | bool | string | bytes | number
func (p *parser) parseSingle(c rune) (*ir.Node, error) {
	switch c {
	case 'N':
		return p.parseKeyword("None", ir.None())
	case 'T':
		return p.parseKeyword("True", ir.FromBool(true))
	case 'F':
		return p.parseKeyword("False", ir.FromBool(false))
	case '\'', '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case 'b':
		return p.parseBytes()
	}
	bm := p.r.Bookmark()
	res, err := p.parseComplex()
	if err == nil {
		return res, nil
	}
	p.r.Restore(bm)
	res, err = p.parseFloat()
	if err == nil {
		return res, nil
	}
	p.r.Restore(bm)
	return p.parseInt()
}

func (p *parser) parseKeyword(kw string, res *ir.Node) (*ir.Node, error) {
	s, _ := p.r.PeekN(len(kw))
	if s != kw {
		return nil, syntaxErr("expected %s", kw)
	}
	p.r.ReadN(len(kw))
	return res, nil
}

func isNaNDict(y *ir.Node) bool {
	if len(y.Fields) != 2 {
		return false
	}
	cls := ir.Get(y, "__class__")
	val := ir.Get(y, "value")
	return cls != nil && val != nil &&
		cls.Type == ir.StringType && cls.String == "float" &&
		val.Type == ir.StringType && val.String == "nan"
}
