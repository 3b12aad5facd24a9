package token

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Reader is a cursor over an immutable rune slice. Positions are rune
// offsets. A Reader may be rewound to any earlier position, which is
// what the parser uses to try one grammar rule and fall back to
// another.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	d   []rune
	i   int
	doc *PosDoc
}

// Bookmark is a saved cursor position.
type Bookmark int

func NewReader(s string) *Reader {
	return &Reader{d: []rune(s)}
}

func (r *Reader) HasMore() bool {
	return r.i < len(r.d)
}

func (r *Reader) Len() int {
	return len(r.d)
}

// Pos returns the current offset.
func (r *Reader) Pos() int {
	return r.i
}

// Doc returns the line index of the underlying text.
func (r *Reader) Doc() *PosDoc {
	if r.doc == nil {
		r.doc = NewPosDoc(r.d)
	}
	return r.doc
}

func (r *Reader) Peek() (rune, error) {
	if r.i >= len(r.d) {
		return 0, ErrEOF
	}
	return r.d[r.i], nil
}

// PeekIs reports whether the next rune is c.
func (r *Reader) PeekIs(c rune) bool {
	return r.i < len(r.d) && r.d[r.i] == c
}

// PeekN returns up to n runes without consuming them. It fails only if
// there is no input left at all.
func (r *Reader) PeekN(n int) (string, error) {
	if r.i >= len(r.d) && n > 0 {
		return "", ErrEOF
	}
	end := min(r.i+n, len(r.d))
	return string(r.d[r.i:end]), nil
}

func (r *Reader) Read() (rune, error) {
	if r.i >= len(r.d) {
		return 0, ErrEOF
	}
	c := r.d[r.i]
	r.i++
	return c, nil
}

// ReadN consumes exactly n runes.
func (r *Reader) ReadN(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: use Rewind to move back", ErrRewind)
	}
	if r.i+n > len(r.d) {
		return "", fmt.Errorf("%w: wanted %d runes, have %d", ErrEOF, n, len(r.d)-r.i)
	}
	res := string(r.d[r.i : r.i+n])
	r.i += n
	return res, nil
}

// ReadUntil consumes up to and including the first rune in sentinels
// and returns the text before it. If no sentinel occurs the cursor does
// not move.
func (r *Reader) ReadUntil(sentinels ...rune) (string, error) {
	for j := r.i; j < len(r.d); j++ {
		if slices.Contains(sentinels, r.d[j]) {
			res := string(r.d[r.i:j])
			r.i = j + 1
			return res, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoTerminator, string(sentinels))
}

// ReadWhile consumes runes contained in accepted. It may consume
// nothing.
func (r *Reader) ReadWhile(accepted string) string {
	start := r.i
	for r.i < len(r.d) && strings.ContainsRune(accepted, r.d[r.i]) {
		r.i++
	}
	return string(r.d[start:r.i])
}

// Rest consumes the remaining input.
func (r *Reader) Rest() string {
	res := string(r.d[r.i:])
	r.i = len(r.d)
	return res
}

// Rewind moves the cursor n runes back, stopping at the start.
func (r *Reader) Rewind(n int) {
	r.i = max(0, r.i-n)
}

func (r *Reader) Bookmark() Bookmark {
	return Bookmark(r.i)
}

func (r *Reader) Restore(b Bookmark) {
	r.i = min(max(0, int(b)), len(r.d))
}

// SkipWhitespace skips whitespace and any number of comments. A comment
// runs from '#' to the end of the line or of the input.
func (r *Reader) SkipWhitespace() {
	for r.i < len(r.d) {
		c := r.d[r.i]
		switch {
		case c == '#':
			for r.i < len(r.d) && r.d[r.i] != '\n' {
				r.i++
			}
		case unicode.IsSpace(c):
			r.i++
		default:
			return
		}
	}
}

// Context returns up to width runes on each side of pos. A negative pos
// means the current offset.
func (r *Reader) Context(pos, width int) (string, string) {
	if pos < 0 {
		pos = r.i
	}
	pos = min(pos, len(r.d))
	lo := max(0, pos-width)
	hi := min(len(r.d), pos+width)
	return string(r.d[lo:pos]), string(r.d[pos:hi])
}
